package oxml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/godeck/godeck/pkg/opc"
)

// NotesPart is the typed view over a ppt/notesSlides/notesSlideN.xml part.
// Speaker text lives in the body placeholder; the slide-image placeholder
// is structural furniture PowerPoint expects.
type NotesPart struct {
	doc  *etree.Document
	root *etree.Element
	tree *ShapeTree
}

// ParseNotes parses a notes slide part's bytes.
func ParseNotes(data []byte) (*NotesPart, error) {
	doc, err := parsePartDoc(data, "notes")
	if err != nil {
		return nil, err
	}
	return &NotesPart{doc: doc, root: doc.Root()}, nil
}

// NewNotesPart creates an empty notes slide: a slide-image placeholder and
// an empty body placeholder at index 1.
func NewNotesPart() *NotesPart {
	root := newPartRoot("p:notes")
	cSld := root.CreateElement("p:cSld")

	tree := NewShapeTree()
	tree.Add(&Shape{
		Name:        "Slide Image Placeholder 1",
		Placeholder: &PlaceholderInfo{Type: "sldImg", Idx: -1},
	})
	tree.Add(&Shape{
		Name:        "Notes Placeholder 2",
		Placeholder: &PlaceholderInfo{Type: "body", Idx: 1},
		Text:        &TextBody{},
	})
	cSld.AddChild(tree.toElement())

	clrMapOvr := root.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")

	n := &NotesPart{root: root, tree: tree}
	n.doc = wrapPartDoc(root)
	return n
}

func (n *NotesPart) shapeTree() (*ShapeTree, error) {
	if n.tree != nil {
		return n.tree, nil
	}
	cSld := n.root.SelectElement("p:cSld")
	if cSld == nil {
		return nil, fmt.Errorf("notes part: missing p:cSld")
	}
	spTree := cSld.SelectElement("p:spTree")
	if spTree == nil {
		n.tree = NewShapeTree()
		return n.tree, nil
	}
	n.tree = parseShapeTree(spTree)
	return n.tree, nil
}

func (n *NotesPart) body() (*Shape, error) {
	tree, err := n.shapeTree()
	if err != nil {
		return nil, err
	}
	for _, phType := range []string{"body", "obj"} {
		if sp := tree.lowestIndexPlaceholder(phType, -1); sp != nil {
			return sp, nil
		}
	}
	return nil, nil
}

// Text returns the speaker notes text, paragraphs joined by newlines.
func (n *NotesPart) Text() (string, error) {
	sp, err := n.body()
	if err != nil || sp == nil || sp.Text == nil {
		return "", err
	}
	return sp.Text.Text(), nil
}

// SetText replaces the speaker notes, one paragraph per input line. A notes
// slide without a body placeholder gains one.
func (n *NotesPart) SetText(text string) error {
	sp, err := n.body()
	if err != nil {
		return err
	}
	if sp == nil {
		tree, err := n.shapeTree()
		if err != nil {
			return err
		}
		sp = &Shape{
			Name:        "Notes Placeholder",
			Placeholder: &PlaceholderInfo{Type: "body", Idx: 1},
			Text:        &TextBody{},
		}
		tree.Add(sp)
	}
	if sp.Text == nil {
		sp.Text = &TextBody{}
	}
	sp.Text.SetText(text)
	return nil
}

// AppendText adds a paragraph to the speaker notes.
func (n *NotesPart) AppendText(text string) error {
	sp, err := n.body()
	if err != nil {
		return err
	}
	if sp == nil {
		return n.SetText(text)
	}
	if sp.Text == nil {
		sp.Text = &TextBody{}
	}
	sp.Text.AddParagraph(text, 0, RunProps{})
	return nil
}

// Bytes serializes the part.
func (n *NotesPart) Bytes() ([]byte, error) {
	if n.tree != nil {
		cSld := n.root.SelectElement("p:cSld")
		if cSld == nil {
			return nil, fmt.Errorf("notes part: missing p:cSld")
		}
		fresh := n.tree.toElement()
		if old := cSld.SelectElement("p:spTree"); old != nil {
			cSld.InsertChildAt(old.Index(), fresh)
			cSld.RemoveChild(old)
		} else {
			cSld.AddChild(fresh)
		}
	}
	return n.doc.WriteToBytes()
}

// NotesForSlide returns the notes part attached to a slide, following the
// slide's notesSlide relationship. The bool reports whether one exists.
func NotesForSlide(pkg *opc.Package, slideName string) (*NotesPart, string, bool, error) {
	rels, err := pkg.Rels(slideName)
	if err != nil {
		return nil, "", false, err
	}
	found := rels.FindByType(opc.RelTypeNotesSlide)
	if len(found) == 0 {
		return nil, "", false, nil
	}
	notesName := opc.ResolveTarget(slideName, found[0].Target)
	data, ok := pkg.Part(notesName)
	if !ok {
		return nil, "", false, fmt.Errorf("notes part %s: %w", notesName, opc.ErrPartNotFound)
	}
	notes, err := ParseNotes(data)
	if err != nil {
		return nil, "", false, err
	}
	return notes, notesName, true, nil
}

// EnsureNotes returns the slide's notes part, creating and wiring a fresh
// one when the slide has none. New notes parts are numbered by the
// allocator, registered in the content-type manifest, and related back to
// their slide; the notes master is linked too when the package has one.
func EnsureNotes(pkg *opc.Package, alloc *NameAllocator, slideName string) (*NotesPart, string, error) {
	notes, notesName, ok, err := NotesForSlide(pkg, slideName)
	if err != nil {
		return nil, "", err
	}
	if ok {
		return notes, notesName, nil
	}

	num := alloc.Next(pkg, "ppt/notesSlides", "notesSlide")
	notesName = fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", num)
	notes = NewNotesPart()
	if err := PutNotes(pkg, notesName, notes); err != nil {
		return nil, "", err
	}

	slideRels, err := pkg.Rels(slideName)
	if err != nil {
		return nil, "", err
	}
	slideRels.Add(opc.RelTypeNotesSlide, RelativeTarget(slideName, notesName))
	pkg.SetRels(slideName, slideRels)

	notesRels := opc.NewRelationships()
	notesRels.Add(opc.RelTypeSlide, RelativeTarget(notesName, slideName))
	if entries, err := pkg.PartsMatching("ppt/notesMasters/*.xml"); err == nil && len(entries) > 0 {
		notesRels.Add(opc.RelTypeNotesMaster, RelativeTarget(notesName, entries[0].Name))
	}
	pkg.SetRels(notesName, notesRels)

	return notes, notesName, nil
}

// PutNotes serializes a notes part into the package with its content type.
func PutNotes(pkg *opc.Package, name string, notes *NotesPart) error {
	data, err := notes.Bytes()
	if err != nil {
		return err
	}
	pkg.SetPart(name, data, opc.ContentTypeNotesSlide)
	return nil
}
