package oxml

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/godeck/godeck/pkg/opc"
)

// LayoutPlaceholder summarizes one placeholder a layout offers, as reported
// by layout listings and inherited by slides built from it.
type LayoutPlaceholder struct {
	Type string
	Idx  int
	Name string
}

// LayoutPart is the typed view over a ppt/slideLayouts/slideLayoutN.xml
// part.
type LayoutPart struct {
	// PartName is the part path within the package, set by the loaders.
	PartName string

	doc  *etree.Document
	root *etree.Element
}

// ParseLayout parses a slide layout part's bytes.
func ParseLayout(data []byte) (*LayoutPart, error) {
	doc, err := parsePartDoc(data, "sldLayout")
	if err != nil {
		return nil, err
	}
	return &LayoutPart{doc: doc, root: doc.Root()}, nil
}

// NewLayoutPart creates a bare layout with the given display name and type
// token, carrying an empty shape tree.
func NewLayoutPart(name, layoutType string) *LayoutPart {
	root := newPartRoot("p:sldLayout")
	if layoutType != "" {
		root.CreateAttr("type", layoutType)
	}
	cSld := root.CreateElement("p:cSld")
	if name != "" {
		cSld.CreateAttr("name", name)
	}
	cSld.AddChild(NewShapeTree().toElement())
	clrMapOvr := root.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")
	return &LayoutPart{doc: wrapPartDoc(root), root: root}
}

// Name returns the layout's display name from p:cSld/@name.
func (l *LayoutPart) Name() string {
	if cSld := l.root.SelectElement("p:cSld"); cSld != nil {
		return cSld.SelectAttrValue("name", "")
	}
	return ""
}

// Type returns the layout's type token (e.g. "title", "obj"), or "" when
// the layout does not declare one.
func (l *LayoutPart) Type() string {
	return l.root.SelectAttrValue("type", "")
}

// Placeholders lists the layout's placeholders in shape-tree order.
func (l *LayoutPart) Placeholders() ([]LayoutPlaceholder, error) {
	cSld := l.root.SelectElement("p:cSld")
	if cSld == nil {
		return nil, fmt.Errorf("layout part: missing p:cSld")
	}
	spTree := cSld.SelectElement("p:spTree")
	if spTree == nil {
		return nil, nil
	}
	tree := parseShapeTree(spTree)
	var phs []LayoutPlaceholder
	for _, sp := range tree.Placeholders() {
		phs = append(phs, LayoutPlaceholder{
			Type: sp.Placeholder.Type,
			Idx:  sp.Placeholder.Idx,
			Name: sp.Name,
		})
	}
	return phs, nil
}

// Bytes serializes the part.
func (l *LayoutPart) Bytes() ([]byte, error) {
	return l.doc.WriteToBytes()
}

// BytesWithTree serializes the layout with the given shape tree in place of
// whatever p:spTree it held.
func (l *LayoutPart) BytesWithTree(tree *ShapeTree) ([]byte, error) {
	cSld := l.root.SelectElement("p:cSld")
	if cSld == nil {
		return nil, fmt.Errorf("layout part: missing p:cSld")
	}
	fresh := tree.toElement()
	if old := cSld.SelectElement("p:spTree"); old != nil {
		cSld.InsertChildAt(old.Index(), fresh)
		cSld.RemoveChild(old)
	} else {
		cSld.AddChild(fresh)
	}
	return l.doc.WriteToBytes()
}

// Num extracts the numeric suffix from the layout's part name, 0 when the
// name does not follow the slideLayoutN.xml convention.
func (l *LayoutPart) Num() int {
	return extractPartNum(l.PartName, "slideLayout")
}

// extractPartNum pulls N out of .../"<stem>N.xml". Returns 0 on any
// mismatch.
func extractPartNum(partName, stem string) int {
	base := partName
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".xml")
	digits := strings.TrimPrefix(base, stem)
	if digits == base {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// LayoutParts loads every slide layout in the package, ordered by numeric
// suffix so slideLayout10 sorts after slideLayout9.
func LayoutParts(pkg *opc.Package) ([]*LayoutPart, error) {
	entries, err := pkg.PartsMatching("ppt/slideLayouts/*.xml")
	if err != nil {
		return nil, err
	}
	var layouts []*LayoutPart
	for _, entry := range entries {
		l, err := ParseLayout(entry.Data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name, err)
		}
		l.PartName = entry.Name
		layouts = append(layouts, l)
	}
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].Num() < layouts[j].Num()
	})
	return layouts, nil
}

// LayoutByName resolves a layout by display name. Matching is forgiving:
// case folds, underscores and dashes count as spaces, and an exact match is
// preferred over a substring match.
func LayoutByName(pkg *opc.Package, name string) (*LayoutPart, error) {
	layouts, err := LayoutParts(pkg)
	if err != nil {
		return nil, err
	}
	want := looseLayoutName(name)

	for _, l := range layouts {
		if looseLayoutName(l.Name()) == want {
			return l, nil
		}
	}
	for _, l := range layouts {
		if strings.Contains(looseLayoutName(l.Name()), want) {
			return l, nil
		}
	}

	available := make([]string, 0, len(layouts))
	for _, l := range layouts {
		available = append(available, l.Name())
	}
	return nil, fmt.Errorf("no layout %q: available layouts are %s",
		name, strings.Join(available, ", "))
}

// LayoutByIndex resolves a layout by its 0-indexed position in numeric
// part order.
func LayoutByIndex(pkg *opc.Package, index int) (*LayoutPart, error) {
	layouts, err := LayoutParts(pkg)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(layouts) {
		return nil, fmt.Errorf("layout index %d out of range [0, %d)", index, len(layouts))
	}
	return layouts[index], nil
}

func looseLayoutName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}
