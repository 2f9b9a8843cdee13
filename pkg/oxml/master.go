package oxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/godeck/godeck/pkg/opc"
)

// layoutIDBase is the first numeric id PowerPoint assigns in a master's
// layout list.
const layoutIDBase = 2147483649

// LayoutRef is one entry of a master's slide layout list.
type LayoutRef struct {
	RelID    string
	LayoutID int64
}

// MasterPart is the typed view over a ppt/slideMasters/slideMasterN.xml
// part: the layout list, the color map, and the master's own shape tree.
type MasterPart struct {
	// Name is the part path within the package, set by the loaders.
	Name string

	doc  *etree.Document
	root *etree.Element
	tree *ShapeTree
}

// ParseMaster parses a slide master part's bytes.
func ParseMaster(data []byte) (*MasterPart, error) {
	doc, err := parsePartDoc(data, "sldMaster")
	if err != nil {
		return nil, err
	}
	return &MasterPart{doc: doc, root: doc.Root()}, nil
}

// NewMinimalMaster creates a bare slide master: an empty shape tree, the
// standard color map, and an empty layout list.
func NewMinimalMaster() *MasterPart {
	root := newPartRoot("p:sldMaster")
	cSld := root.CreateElement("p:cSld")
	cSld.AddChild(NewShapeTree().toElement())

	clrMap := root.CreateElement("p:clrMap")
	for _, kv := range [][2]string{
		{"bg1", "lt1"}, {"tx1", "dk1"}, {"bg2", "lt2"}, {"tx2", "dk2"},
		{"accent1", "accent1"}, {"accent2", "accent2"}, {"accent3", "accent3"},
		{"accent4", "accent4"}, {"accent5", "accent5"}, {"accent6", "accent6"},
		{"hlink", "hlink"}, {"folHlink", "folHlink"},
	} {
		clrMap.CreateAttr(kv[0], kv[1])
	}

	root.CreateElement("p:sldLayoutIdLst")
	return &MasterPart{doc: wrapPartDoc(root), root: root}
}

// LayoutRefs returns the master's layout references in list order.
func (m *MasterPart) LayoutRefs() []LayoutRef {
	var refs []LayoutRef
	lst := m.root.SelectElement("p:sldLayoutIdLst")
	if lst == nil {
		return refs
	}
	for _, el := range lst.SelectElements("p:sldLayoutId") {
		id, _ := strconv.ParseInt(el.SelectAttrValue("id", "0"), 10, 64)
		refs = append(refs, LayoutRef{
			RelID:    el.SelectAttrValue("r:id", ""),
			LayoutID: id,
		})
	}
	return refs
}

// AddLayoutRef appends a layout reference, allocating the next numeric id
// past whatever the list already carries.
func (m *MasterPart) AddLayoutRef(relID string) int64 {
	lst := m.root.SelectElement("p:sldLayoutIdLst")
	if lst == nil {
		lst = m.root.CreateElement("p:sldLayoutIdLst")
	}
	var next int64 = layoutIDBase
	for _, ref := range m.LayoutRefs() {
		if ref.LayoutID >= next {
			next = ref.LayoutID + 1
		}
	}
	el := lst.CreateElement("p:sldLayoutId")
	el.CreateAttr("id", strconv.FormatInt(next, 10))
	el.CreateAttr("r:id", relID)
	return next
}

// ColorMap returns the master's scheme-slot assignments, keyed by slot
// (bg1, tx1, accent1, ...).
func (m *MasterPart) ColorMap() map[string]string {
	cm := make(map[string]string)
	clrMap := m.root.SelectElement("p:clrMap")
	if clrMap == nil {
		return cm
	}
	for _, attr := range clrMap.Attr {
		if attr.Space == "" {
			cm[attr.Key] = attr.Value
		}
	}
	return cm
}

// ShapeTree returns the master's shape tree, parsing it on first use.
func (m *MasterPart) ShapeTree() (*ShapeTree, error) {
	if m.tree != nil {
		return m.tree, nil
	}
	cSld := m.root.SelectElement("p:cSld")
	if cSld == nil {
		return nil, fmt.Errorf("master part: missing p:cSld")
	}
	spTree := cSld.SelectElement("p:spTree")
	if spTree == nil {
		m.tree = NewShapeTree()
		return m.tree, nil
	}
	m.tree = parseShapeTree(spTree)
	return m.tree, nil
}

// Bytes serializes the part.
func (m *MasterPart) Bytes() ([]byte, error) {
	if m.tree != nil {
		cSld := m.root.SelectElement("p:cSld")
		if cSld == nil {
			return nil, fmt.Errorf("master part: missing p:cSld")
		}
		fresh := m.tree.toElement()
		if old := cSld.SelectElement("p:spTree"); old != nil {
			cSld.InsertChildAt(old.Index(), fresh)
			cSld.RemoveChild(old)
		} else {
			cSld.AddChild(fresh)
		}
	}
	return m.doc.WriteToBytes()
}

// MasterParts loads every slide master in the package, in part-name order.
func MasterParts(pkg *opc.Package) ([]*MasterPart, error) {
	entries, err := pkg.PartsMatching("ppt/slideMasters/*.xml")
	if err != nil {
		return nil, err
	}
	var masters []*MasterPart
	for _, entry := range entries {
		m, err := ParseMaster(entry.Data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name, err)
		}
		m.Name = entry.Name
		masters = append(masters, m)
	}
	return masters, nil
}

// PrimaryMaster returns the first slide master in the package.
func PrimaryMaster(pkg *opc.Package) (*MasterPart, error) {
	masters, err := MasterParts(pkg)
	if err != nil {
		return nil, err
	}
	if len(masters) == 0 {
		return nil, fmt.Errorf("slide master: %w", opc.ErrPartNotFound)
	}
	return masters[0], nil
}

// MasterForLayout finds the master whose layout list references the layout
// part with the given number, walking each master's relationships.
func MasterForLayout(pkg *opc.Package, layoutNum int) (*MasterPart, error) {
	masters, err := MasterParts(pkg)
	if err != nil {
		return nil, err
	}
	want := fmt.Sprintf("slideLayout%d.xml", layoutNum)
	for _, m := range masters {
		rels, err := pkg.Rels(m.Name)
		if err != nil {
			return nil, err
		}
		for _, ref := range m.LayoutRefs() {
			rel, ok := rels.Get(ref.RelID)
			if !ok || rel.Type != opc.RelTypeSlideLayout {
				continue
			}
			if strings.HasSuffix(rel.Target, want) {
				return m, nil
			}
		}
	}
	return nil, fmt.Errorf("master for layout %d: %w", layoutNum, opc.ErrPartNotFound)
}
