package oxml

import (
	"strconv"

	"github.com/beevik/etree"
)

// Position is a shape's offset and extent in EMUs (914400 per inch).
type Position struct {
	X  int64
	Y  int64
	CX int64
	CY int64
}

func (p Position) applyTo(xfrm *etree.Element) {
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.FormatInt(p.X, 10))
	off.CreateAttr("y", strconv.FormatInt(p.Y, 10))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(p.CX, 10))
	ext.CreateAttr("cy", strconv.FormatInt(p.CY, 10))
}

func positionFrom(xfrm *etree.Element) Position {
	var p Position
	if xfrm == nil {
		return p
	}
	if off := xfrm.SelectElement("a:off"); off != nil {
		p.X, _ = strconv.ParseInt(off.SelectAttrValue("x", "0"), 10, 64)
		p.Y, _ = strconv.ParseInt(off.SelectAttrValue("y", "0"), 10, 64)
	}
	if ext := xfrm.SelectElement("a:ext"); ext != nil {
		p.CX, _ = strconv.ParseInt(ext.SelectAttrValue("cx", "0"), 10, 64)
		p.CY, _ = strconv.ParseInt(ext.SelectAttrValue("cy", "0"), 10, 64)
	}
	return p
}

// PlaceholderInfo is the p:ph metadata of a placeholder shape. Idx is -1
// when the attribute is absent.
type PlaceholderInfo struct {
	Type   string
	Idx    int
	Size   string // "full", "half", "quarter"
	Orient string // "horz", "vert"
}

func (ph *PlaceholderInfo) toElement() *etree.Element {
	e := etree.NewElement("p:ph")
	if ph.Type != "" {
		e.CreateAttr("type", ph.Type)
	}
	if ph.Idx >= 0 {
		e.CreateAttr("idx", strconv.Itoa(ph.Idx))
	}
	if ph.Size != "" {
		e.CreateAttr("sz", ph.Size)
	}
	if ph.Orient != "" {
		e.CreateAttr("orient", ph.Orient)
	}
	return e
}

func placeholderFrom(el *etree.Element) *PlaceholderInfo {
	if el == nil {
		return nil
	}
	ph := &PlaceholderInfo{
		Type:   el.SelectAttrValue("type", ""),
		Idx:    -1,
		Size:   el.SelectAttrValue("sz", ""),
		Orient: el.SelectAttrValue("orient", ""),
	}
	if v := el.SelectAttrValue("idx", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ph.Idx = n
		}
	}
	return ph
}

// TreeShape is anything that can sit in a shape tree.
type TreeShape interface {
	ShapeID() int
	ShapeName() string

	setID(id int)
	toElement() *etree.Element
}

// Shape is a p:sp element: a text box or placeholder.
type Shape struct {
	ID          int
	Name        string
	Position    Position
	Placeholder *PlaceholderInfo
	Text        *TextBody
	Geometry    string // preset geometry, e.g. "rect"
}

func (s *Shape) ShapeID() int      { return s.ID }
func (s *Shape) ShapeName() string { return s.Name }
func (s *Shape) setID(id int)      { s.ID = id }

func (s *Shape) toElement() *etree.Element {
	sp := etree.NewElement("p:sp")

	nvSpPr := sp.CreateElement("p:nvSpPr")
	cNvPr := nvSpPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(s.ID))
	cNvPr.CreateAttr("name", s.Name)
	cNvSpPr := nvSpPr.CreateElement("p:cNvSpPr")
	if s.Placeholder != nil {
		cNvSpPr.CreateAttr("txBox", "1")
	}
	nvPr := nvSpPr.CreateElement("p:nvPr")
	if s.Placeholder != nil {
		nvPr.AddChild(s.Placeholder.toElement())
	}

	spPr := sp.CreateElement("p:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	s.Position.applyTo(xfrm)
	if s.Geometry != "" {
		geom := spPr.CreateElement("a:prstGeom")
		geom.CreateAttr("prst", s.Geometry)
		geom.CreateElement("a:avLst")
	}

	if s.Text != nil {
		sp.AddChild(s.Text.toElement("p:txBody"))
	}
	return sp
}

func parseShape(el *etree.Element) *Shape {
	s := &Shape{}
	if cNvPr := el.FindElement(".//p:cNvPr"); cNvPr != nil {
		s.ID, _ = strconv.Atoi(cNvPr.SelectAttrValue("id", "0"))
		s.Name = cNvPr.SelectAttrValue("name", "")
	}
	s.Placeholder = placeholderFrom(el.FindElement(".//p:ph"))
	s.Position = positionFrom(el.FindElement(".//a:xfrm"))
	if geom := el.FindElement(".//a:prstGeom"); geom != nil {
		s.Geometry = geom.SelectAttrValue("prst", "")
	}
	if body := el.SelectElement("p:txBody"); body != nil {
		s.Text = parseTextBody(body)
	}
	return s
}

// Picture is a p:pic element referencing an image part by relationship id.
type Picture struct {
	ID          int
	Name        string
	Position    Position
	RelID       string
	Placeholder *PlaceholderInfo
}

func (p *Picture) ShapeID() int      { return p.ID }
func (p *Picture) ShapeName() string { return p.Name }
func (p *Picture) setID(id int)      { p.ID = id }

func (p *Picture) toElement() *etree.Element {
	pic := etree.NewElement("p:pic")

	nvPicPr := pic.CreateElement("p:nvPicPr")
	cNvPr := nvPicPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(p.ID))
	cNvPr.CreateAttr("name", p.Name)
	nvPicPr.CreateElement("p:cNvPicPr")
	nvPr := nvPicPr.CreateElement("p:nvPr")
	if p.Placeholder != nil {
		nvPr.AddChild(p.Placeholder.toElement())
	}

	blipFill := pic.CreateElement("p:blipFill")
	blip := blipFill.CreateElement("a:blip")
	blip.CreateAttr("r:embed", p.RelID)
	blipFill.CreateElement("a:stretch")

	spPr := pic.CreateElement("p:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	p.Position.applyTo(xfrm)
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")

	return pic
}

func parsePicture(el *etree.Element) *Picture {
	p := &Picture{}
	if cNvPr := el.FindElement(".//p:cNvPr"); cNvPr != nil {
		p.ID, _ = strconv.Atoi(cNvPr.SelectAttrValue("id", "0"))
		p.Name = cNvPr.SelectAttrValue("name", "")
	}
	p.Placeholder = placeholderFrom(el.FindElement(".//p:ph"))
	p.Position = positionFrom(el.FindElement(".//a:xfrm"))
	if blip := el.FindElement(".//a:blip"); blip != nil {
		p.RelID = blip.SelectAttrValue("r:embed", "")
	}
	return p
}

// TableCell is one cell of a Table.
type TableCell struct {
	Text    string
	RowSpan int
	ColSpan int
}

func (c TableCell) toElement() *etree.Element {
	tc := etree.NewElement("a:tc")
	if c.RowSpan > 1 {
		tc.CreateAttr("rowSpan", strconv.Itoa(c.RowSpan))
	}
	if c.ColSpan > 1 {
		tc.CreateAttr("gridSpan", strconv.Itoa(c.ColSpan))
	}

	body := tc.CreateElement("a:txBody")
	body.CreateElement("a:bodyPr")
	body.CreateElement("a:lstStyle")
	p := body.CreateElement("a:p")
	r := p.CreateElement("a:r")
	t := r.CreateElement("a:t")
	t.SetText(c.Text)
	p.CreateElement("a:endParaRPr")

	tc.CreateElement("a:tcPr")
	return tc
}

const defaultRowHeight = 370840

// Table is a p:graphicFrame holding an a:tbl.
type Table struct {
	ID         int
	Name       string
	Position   Position
	Rows       [][]TableCell
	ColWidths  []int64
	RowHeights []int64
}

func (t *Table) ShapeID() int      { return t.ID }
func (t *Table) ShapeName() string { return t.Name }
func (t *Table) setID(id int)      { t.ID = id }

func (t *Table) toElement() *etree.Element {
	gf := etree.NewElement("p:graphicFrame")

	nvGfPr := gf.CreateElement("p:nvGraphicFramePr")
	cNvPr := nvGfPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(t.ID))
	cNvPr.CreateAttr("name", t.Name)
	nvGfPr.CreateElement("p:cNvGraphicFramePr")
	nvGfPr.CreateElement("p:nvPr")

	xfrm := gf.CreateElement("p:xfrm")
	t.Position.applyTo(xfrm)

	graphic := gf.CreateElement("a:graphic")
	data := graphic.CreateElement("a:graphicData")
	data.CreateAttr("uri", "http://schemas.openxmlformats.org/drawingml/2006/table")

	tbl := data.CreateElement("a:tbl")
	tblPr := tbl.CreateElement("a:tblPr")
	tblPr.CreateAttr("firstRow", "1")
	tblPr.CreateAttr("bandRow", "1")

	grid := tbl.CreateElement("a:tblGrid")
	for _, w := range t.ColWidths {
		gc := grid.CreateElement("a:gridCol")
		gc.CreateAttr("w", strconv.FormatInt(w, 10))
	}

	for i, row := range t.Rows {
		tr := tbl.CreateElement("a:tr")
		height := int64(defaultRowHeight)
		if i < len(t.RowHeights) {
			height = t.RowHeights[i]
		}
		tr.CreateAttr("h", strconv.FormatInt(height, 10))
		for _, cell := range row {
			tr.AddChild(cell.toElement())
		}
	}
	return gf
}

// parseTable returns nil for graphic frames that hold something other than
// a table (charts, diagrams); those round-trip as raw XML elsewhere.
func parseTable(el *etree.Element) *Table {
	tbl := el.FindElement(".//a:tbl")
	if tbl == nil {
		return nil
	}

	t := &Table{}
	if cNvPr := el.FindElement(".//p:cNvPr"); cNvPr != nil {
		t.ID, _ = strconv.Atoi(cNvPr.SelectAttrValue("id", "0"))
		t.Name = cNvPr.SelectAttrValue("name", "")
	}
	t.Position = positionFrom(el.FindElement(".//p:xfrm"))

	for _, gc := range tbl.FindElements(".//a:gridCol") {
		w, _ := strconv.ParseInt(gc.SelectAttrValue("w", "0"), 10, 64)
		t.ColWidths = append(t.ColWidths, w)
	}
	for _, tr := range tbl.SelectElements("a:tr") {
		h, _ := strconv.ParseInt(tr.SelectAttrValue("h", strconv.Itoa(defaultRowHeight)), 10, 64)
		t.RowHeights = append(t.RowHeights, h)
		var row []TableCell
		for _, tc := range tr.SelectElements("a:tc") {
			cell := TableCell{RowSpan: 1, ColSpan: 1}
			if tEl := tc.FindElement(".//a:t"); tEl != nil {
				cell.Text = tEl.Text()
			}
			cell.RowSpan, _ = strconv.Atoi(tc.SelectAttrValue("rowSpan", "1"))
			cell.ColSpan, _ = strconv.Atoi(tc.SelectAttrValue("gridSpan", "1"))
			row = append(row, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ShapeTree is the ordered collection of shapes on one slide, layout or
// master. Shape ids are unique within one tree; the allocator is a
// high-water mark over every id ever seen, parsed ids included, so new
// shapes never collide with existing ones.
type ShapeTree struct {
	shapes []TreeShape
	nextID int
}

// NewShapeTree returns an empty tree. Id 1 belongs to the tree's own group
// shape, so allocation starts at 2.
func NewShapeTree() *ShapeTree {
	return &ShapeTree{nextID: 2}
}

// Shapes returns the shapes in document order.
func (t *ShapeTree) Shapes() []TreeShape {
	return t.shapes
}

// Add appends a shape. A zero id gets the next unused id; an explicit id
// advances the allocator past itself.
func (t *ShapeTree) Add(s TreeShape) {
	if s.ShapeID() == 0 {
		s.setID(t.nextID)
		t.nextID++
	} else if s.ShapeID() >= t.nextID {
		t.nextID = s.ShapeID() + 1
	}
	t.shapes = append(t.shapes, s)
}

// Remove deletes a shape from the tree. Its id is not reissued.
func (t *ShapeTree) Remove(s TreeShape) bool {
	for i, existing := range t.shapes {
		if existing == s {
			t.shapes = append(t.shapes[:i], t.shapes[i+1:]...)
			return true
		}
	}
	return false
}

// ByID finds a shape by id.
func (t *ShapeTree) ByID(id int) TreeShape {
	for _, s := range t.shapes {
		if s.ShapeID() == id {
			return s
		}
	}
	return nil
}

// ByName finds a shape by exact name.
func (t *ShapeTree) ByName(name string) TreeShape {
	for _, s := range t.shapes {
		if s.ShapeName() == name {
			return s
		}
	}
	return nil
}

// Placeholders returns the placeholder shapes in document order.
func (t *ShapeTree) Placeholders() []*Shape {
	var out []*Shape
	for _, s := range t.shapes {
		if sh, ok := s.(*Shape); ok && sh.Placeholder != nil {
			out = append(out, sh)
		}
	}
	return out
}

// FindPlaceholder returns the first placeholder matching the given type and
// index. An empty type matches any type; idx -1 matches any index.
func (t *ShapeTree) FindPlaceholder(phType string, idx int) *Shape {
	for _, sh := range t.Placeholders() {
		if phType != "" && sh.Placeholder.Type != phType {
			continue
		}
		if idx >= 0 && sh.Placeholder.Idx != idx {
			continue
		}
		return sh
	}
	return nil
}

// toElement renders the full p:spTree element, group shape header included.
func (t *ShapeTree) toElement() *etree.Element {
	spTree := etree.NewElement("p:spTree")

	nvGrpSpPr := spTree.CreateElement("p:nvGrpSpPr")
	cNvPr := nvGrpSpPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nvGrpSpPr.CreateElement("p:cNvGrpSpPr")
	nvGrpSpPr.CreateElement("p:nvPr")

	grpSpPr := spTree.CreateElement("p:grpSpPr")
	xfrm := grpSpPr.CreateElement("a:xfrm")
	Position{}.applyTo(xfrm)
	chOff := xfrm.CreateElement("a:chOff")
	chOff.CreateAttr("x", "0")
	chOff.CreateAttr("y", "0")
	chExt := xfrm.CreateElement("a:chExt")
	chExt.CreateAttr("cx", "0")
	chExt.CreateAttr("cy", "0")

	for _, s := range t.shapes {
		spTree.AddChild(s.toElement())
	}
	return spTree
}

// parseShapeTree reads a p:spTree element, preserving document order across
// shape kinds. Graphic frames that are not tables are skipped here and kept
// verbatim by the owning part.
func parseShapeTree(el *etree.Element) *ShapeTree {
	tree := NewShapeTree()
	for _, child := range el.ChildElements() {
		switch child.FullTag() {
		case "p:sp":
			tree.Add(parseShape(child))
		case "p:pic":
			tree.Add(parsePicture(child))
		case "p:graphicFrame":
			if tbl := parseTable(child); tbl != nil {
				tree.Add(tbl)
			}
		}
	}
	return tree
}
