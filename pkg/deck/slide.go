package deck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/godeck/godeck/pkg/opc"
	"github.com/godeck/godeck/pkg/oxml"
)

// Slide is a handle on one slide. It stays valid across reorders because it
// holds the slide's part name, not its position; it dies when the slide is
// removed.
type Slide struct {
	pres *Presentation
	part *oxml.SlidePart
	name string
}

// Name returns the slide's part name within the package.
func (s *Slide) Name() string {
	return s.name
}

// flush writes the slide part back into the package.
func (s *Slide) flush() error {
	return oxml.PutSlide(s.pres.pkg, s.name, s.part)
}

// Placeholders lists the slide's placeholders by friendly name, index
// qualified where two share a name.
func (s *Slide) Placeholders() ([]string, error) {
	tree, err := s.part.ShapeTree()
	if err != nil {
		return nil, err
	}
	phs := tree.Placeholders()
	counts := make(map[string]int, len(phs))
	for _, sp := range phs {
		counts[oxml.FriendlyPlaceholderName(sp.Placeholder.Type, -1, false)]++
	}
	names := make([]string, 0, len(phs))
	for _, sp := range phs {
		base := oxml.FriendlyPlaceholderName(sp.Placeholder.Type, -1, false)
		names = append(names, oxml.FriendlyPlaceholderName(sp.Placeholder.Type, sp.Placeholder.Idx, counts[base] > 1))
	}
	return names, nil
}

// Title returns the slide's title text, "" when the slide has no title
// placeholder.
func (s *Slide) Title() (string, error) {
	sp, err := s.part.Title()
	if err != nil || sp == nil || sp.Text == nil {
		return "", err
	}
	return sp.Text.Text(), nil
}

// SetTitle sets the title placeholder's text.
func (s *Slide) SetTitle(text string) error {
	return s.SetPlaceholderText("title", text)
}

// PlaceholderText returns the text of the named placeholder.
func (s *Slide) PlaceholderText(name string) (string, error) {
	sp, err := s.part.Placeholder(name)
	if err != nil {
		return "", err
	}
	if sp.Text == nil {
		return "", nil
	}
	return sp.Text.Text(), nil
}

// SetPlaceholderText replaces the named placeholder's text, one paragraph
// per input line. A failed lookup reports the placeholders the slide does
// have.
func (s *Slide) SetPlaceholderText(name, text string) error {
	sp, err := s.part.Placeholder(name)
	if err != nil {
		return err
	}
	if sp.Text == nil {
		sp.Text = &oxml.TextBody{}
	}
	sp.Text.SetText(text)
	return s.flush()
}

// SetBullets fills the named placeholder with one bulleted paragraph per
// item, indented by the matching entry of levels.
func (s *Slide) SetBullets(name string, items []string, levels []int) error {
	sp, err := s.part.Placeholder(name)
	if err != nil {
		return err
	}
	sp.Text = &oxml.TextBody{}
	for i, item := range items {
		level := 0
		if i < len(levels) {
			level = levels[i]
		}
		sp.Text.AddParagraph(item, level, oxml.RunProps{})
	}
	return s.flush()
}

// AddTextBox places a free-form text box on the slide.
func (s *Slide) AddTextBox(text string, pos oxml.Position, props oxml.RunProps) error {
	if err := s.part.AddShape(oxml.NewTextBox(0, text, pos, props)); err != nil {
		return err
	}
	return s.flush()
}

// AddTable places a table on the slide with equal column widths.
func (s *Slide) AddTable(rows [][]string, pos oxml.Position) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("table needs at least one row and column")
	}
	cols := len(rows[0])
	widths := make([]int64, cols)
	for i := range widths {
		widths[i] = pos.CX / int64(cols)
	}
	tbl := &oxml.Table{
		Name:      "Table",
		Position:  pos,
		ColWidths: widths,
	}
	for _, row := range rows {
		cells := make([]oxml.TableCell, 0, len(row))
		for _, text := range row {
			cells = append(cells, oxml.TableCell{Text: text, RowSpan: 1, ColSpan: 1})
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	if err := s.part.AddShape(tbl); err != nil {
		return err
	}
	return s.flush()
}

// imageContentTypes maps image file extensions to their content types.
var imageContentTypes = map[string]string{
	"png":  opc.ContentTypePNG,
	"jpg":  opc.ContentTypeJPEG,
	"jpeg": opc.ContentTypeJPEG,
	"gif":  opc.ContentTypeGIF,
	"bmp":  opc.ContentTypeBMP,
	"tif":  opc.ContentTypeTIFF,
	"tiff": opc.ContentTypeTIFF,
	"svg":  opc.ContentTypeSVG,
	"emf":  opc.ContentTypeEMF,
	"wmf":  opc.ContentTypeWMF,
}

// AddPicture stores the image bytes as a media part and places a picture
// shape referencing it. ext is the image's file extension without the dot.
func (s *Slide) AddPicture(data []byte, ext string, pos oxml.Position) error {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return fmt.Errorf("unsupported image extension %q", ext)
	}
	s.pres.pkg.ContentTypes().AddDefault(ext, contentType)

	mediaName := fmt.Sprintf("ppt/media/image%d.%s", s.nextMediaNum(), ext)
	s.pres.pkg.SetPart(mediaName, data, "")

	relID, err := s.Link(opc.RelTypeImage, mediaName)
	if err != nil {
		return err
	}
	pic := &oxml.Picture{
		Name:     "Picture",
		Position: pos,
		RelID:    relID,
	}
	if err := s.part.AddShape(pic); err != nil {
		return err
	}
	return s.flush()
}

func (s *Slide) nextMediaNum() int {
	high := 0
	entries, err := s.pres.pkg.PartsMatching("ppt/media/*")
	if err != nil {
		return 1
	}
	for _, entry := range entries {
		base := entry.Name[strings.LastIndex(entry.Name, "/")+1:]
		if i := strings.LastIndex(base, "."); i >= 0 {
			base = base[:i]
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(base, "image")); err == nil && n > high {
			high = n
		}
	}
	return high + 1
}

// Link adds a relationship from this slide to another part in the package
// and returns the relationship id. Use it together with
// Presentation.AttachPart to reference parts the engine does not model.
func (s *Slide) Link(relType, partName string) (string, error) {
	rels, err := s.pres.pkg.Rels(s.name)
	if err != nil {
		return "", err
	}
	relID := rels.Add(relType, oxml.RelativeTarget(s.name, partName))
	s.pres.pkg.SetRels(s.name, rels)
	return relID, nil
}

// Notes returns the slide's speaker notes, "" when it has none.
func (s *Slide) Notes() (string, error) {
	notes, _, ok, err := oxml.NotesForSlide(s.pres.pkg, s.name)
	if err != nil || !ok {
		return "", err
	}
	return notes.Text()
}

// SetNotes replaces the slide's speaker notes, creating the notes part on
// first use.
func (s *Slide) SetNotes(text string) error {
	notes, notesName, err := oxml.EnsureNotes(s.pres.pkg, s.pres.alloc, s.name)
	if err != nil {
		return err
	}
	if err := notes.SetText(text); err != nil {
		return err
	}
	return oxml.PutNotes(s.pres.pkg, notesName, notes)
}

// AppendNotes adds a paragraph to the slide's speaker notes.
func (s *Slide) AppendNotes(text string) error {
	notes, notesName, err := oxml.EnsureNotes(s.pres.pkg, s.pres.alloc, s.name)
	if err != nil {
		return err
	}
	if err := notes.AppendText(text); err != nil {
		return err
	}
	return oxml.PutNotes(s.pres.pkg, notesName, notes)
}
