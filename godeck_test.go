package godeck_test

import (
	"path/filepath"
	"testing"

	"github.com/godeck/godeck"
)

func TestFacade_BuildAndReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facade.pptx")

	pres, err := godeck.New(godeck.WithCreator("facade-test"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	slide, err := pres.AddSlide("Title Slide")
	if err != nil {
		t.Fatalf("AddSlide failed: %v", err)
	}
	if err := slide.SetTitle("Hello"); err != nil {
		t.Fatalf("SetTitle failed: %v", err)
	}
	if err := pres.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := godeck.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := reloaded.SlideCount(); got != 1 {
		t.Fatalf("SlideCount = %d, want 1", got)
	}
	got, err := reloaded.Slide(1)
	if err != nil {
		t.Fatalf("Slide failed: %v", err)
	}
	title, err := got.Title()
	if err != nil {
		t.Fatalf("Title failed: %v", err)
	}
	if title != "Hello" {
		t.Errorf("Title = %q, want %q", title, "Hello")
	}
}

func TestFacade_OpenPackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.pptx")

	pres, err := godeck.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := pres.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	pkg, err := godeck.OpenPackage(path)
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}
	if _, ok := pkg.Part("ppt/presentation.xml"); !ok {
		t.Error("package is missing ppt/presentation.xml")
	}
}

func TestUnitConversions(t *testing.T) {
	cases := []struct {
		name string
		got  int64
		want int64
	}{
		{"one inch", godeck.Inches(1), 914400},
		{"half inch", godeck.Inches(0.5), 457200},
		{"one cm", godeck.Cm(1), 360000},
		{"twelve points", godeck.Points(12), 152400},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}
