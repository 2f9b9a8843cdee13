package oxml

import (
	"errors"
	"fmt"
	"testing"

	"github.com/godeck/godeck/pkg/opc"
)

func TestMaster_AddLayoutRefHighWater(t *testing.T) {
	m := NewMinimalMaster()

	first := m.AddLayoutRef("rId1")
	if first != layoutIDBase {
		t.Fatalf("first layout id = %d, want %d", first, int64(layoutIDBase))
	}
	second := m.AddLayoutRef("rId2")
	if second != layoutIDBase+1 {
		t.Fatalf("second layout id = %d, want %d", second, int64(layoutIDBase+1))
	}

	refs := m.LayoutRefs()
	if len(refs) != 2 {
		t.Fatalf("got %d layout refs, want 2", len(refs))
	}
	if refs[0].RelID != "rId1" || refs[0].LayoutID != first {
		t.Errorf("first ref = %+v", refs[0])
	}
}

func TestMaster_LayoutRefsSurviveReparse(t *testing.T) {
	m := NewMinimalMaster()
	m.AddLayoutRef("rId1")
	m.AddLayoutRef("rId2")

	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	parsed, err := ParseMaster(data)
	if err != nil {
		t.Fatalf("ParseMaster failed: %v", err)
	}

	// Ids parsed back seed the high-water mark past the existing ones.
	next := parsed.AddLayoutRef("rId3")
	if next != layoutIDBase+2 {
		t.Errorf("id after reparse = %d, want %d", next, int64(layoutIDBase+2))
	}
}

func TestMaster_ColorMap(t *testing.T) {
	m := NewMinimalMaster()
	cm := m.ColorMap()
	if cm["bg1"] != "lt1" {
		t.Errorf(`ColorMap["bg1"] = %q, want "lt1"`, cm["bg1"])
	}
	if cm["tx1"] != "dk1" {
		t.Errorf(`ColorMap["tx1"] = %q, want "dk1"`, cm["tx1"])
	}
}

func masterFixture(t *testing.T, layoutNums ...int) *opc.Package {
	t.Helper()
	pkg := opc.NewBlank()

	m := NewMinimalMaster()
	rels := opc.NewRelationships()
	for _, num := range layoutNums {
		relID := rels.Add(opc.RelTypeSlideLayout,
			fmt.Sprintf("../slideLayouts/slideLayout%d.xml", num))
		m.AddLayoutRef(relID)
	}
	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("serialize master: %v", err)
	}
	masterName := "ppt/slideMasters/slideMaster1.xml"
	pkg.SetPart(masterName, data, opc.ContentTypeSlideMaster)
	pkg.SetRels(masterName, rels)
	return pkg
}

func TestMasterForLayout(t *testing.T) {
	pkg := masterFixture(t, 1, 2, 3)

	m, err := MasterForLayout(pkg, 2)
	if err != nil {
		t.Fatalf("MasterForLayout failed: %v", err)
	}
	if m.Name != "ppt/slideMasters/slideMaster1.xml" {
		t.Errorf("master name = %q", m.Name)
	}

	_, err = MasterForLayout(pkg, 9)
	if !errors.Is(err, opc.ErrPartNotFound) {
		t.Errorf("unreferenced layout: got %v, want ErrPartNotFound", err)
	}
}

func TestPrimaryMaster_Empty(t *testing.T) {
	pkg := opc.NewBlank()
	_, err := PrimaryMaster(pkg)
	if !errors.Is(err, opc.ErrPartNotFound) {
		t.Errorf("got %v, want ErrPartNotFound", err)
	}
}
