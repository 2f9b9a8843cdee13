package oxml

import (
	"fmt"

	"github.com/beevik/etree"
)

// SlidePart is the typed view over one ppt/slides/slideN.xml part. The
// shape tree is parsed lazily on first access and re-embedded under
// p:cSld on serialization, so read-only walks never pay the parse.
type SlidePart struct {
	doc  *etree.Document
	root *etree.Element
	tree *ShapeTree
}

// ParseSlide parses a slide part's bytes.
func ParseSlide(data []byte) (*SlidePart, error) {
	doc, err := parsePartDoc(data, "sld")
	if err != nil {
		return nil, err
	}
	return &SlidePart{doc: doc, root: doc.Root()}, nil
}

// NewSlidePart creates an empty slide: a bare shape tree and a color map
// override deferring to the master's scheme.
func NewSlidePart() *SlidePart {
	root := newPartRoot("p:sld")
	cSld := root.CreateElement("p:cSld")
	cSld.AddChild(NewShapeTree().toElement())
	clrMapOvr := root.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")
	return &SlidePart{doc: wrapPartDoc(root), root: root}
}

// ShapeTree returns the slide's shape tree, parsing it on first use.
func (s *SlidePart) ShapeTree() (*ShapeTree, error) {
	if s.tree != nil {
		return s.tree, nil
	}
	cSld := s.root.SelectElement("p:cSld")
	if cSld == nil {
		return nil, fmt.Errorf("slide part: missing p:cSld")
	}
	spTree := cSld.SelectElement("p:spTree")
	if spTree == nil {
		s.tree = NewShapeTree()
		return s.tree, nil
	}
	s.tree = parseShapeTree(spTree)
	return s.tree, nil
}

// AddShape appends a shape to the slide's tree, allocating its id.
func (s *SlidePart) AddShape(sp TreeShape) error {
	tree, err := s.ShapeTree()
	if err != nil {
		return err
	}
	tree.Add(sp)
	return nil
}

// Placeholder resolves a friendly placeholder name against the slide.
func (s *SlidePart) Placeholder(name string) (*Shape, error) {
	tree, err := s.ShapeTree()
	if err != nil {
		return nil, err
	}
	return tree.ResolvePlaceholder(name)
}

// Title returns the slide's title placeholder, covering both the plain and
// the centered variant. Nil when the slide has none.
func (s *SlidePart) Title() (*Shape, error) {
	return s.firstOfTypes("title", "ctrTitle")
}

// Body returns the slide's lowest-index body placeholder. Nil when the
// slide has none.
func (s *SlidePart) Body() (*Shape, error) {
	return s.firstOfTypes("body", "obj")
}

// Subtitle returns the slide's subtitle placeholder. Nil when absent.
func (s *SlidePart) Subtitle() (*Shape, error) {
	return s.firstOfTypes("subTitle")
}

func (s *SlidePart) firstOfTypes(types ...string) (*Shape, error) {
	tree, err := s.ShapeTree()
	if err != nil {
		return nil, err
	}
	for _, phType := range types {
		if sp := tree.lowestIndexPlaceholder(phType, -1); sp != nil {
			return sp, nil
		}
	}
	return nil, nil
}

// Bytes serializes the slide. A materialized shape tree replaces whatever
// p:spTree the document held; an untouched slide writes back verbatim.
func (s *SlidePart) Bytes() ([]byte, error) {
	if s.tree != nil {
		cSld := s.root.SelectElement("p:cSld")
		if cSld == nil {
			return nil, fmt.Errorf("slide part: missing p:cSld")
		}
		fresh := s.tree.toElement()
		if old := cSld.SelectElement("p:spTree"); old != nil {
			cSld.InsertChildAt(old.Index(), fresh)
			cSld.RemoveChild(old)
		} else {
			cSld.AddChild(fresh)
		}
	}
	return s.doc.WriteToBytes()
}
