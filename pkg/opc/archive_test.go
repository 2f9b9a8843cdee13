package opc

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func buildTestPackage(t *testing.T) *Package {
	t.Helper()
	pkg := NewBlank()
	pkg.SetPart("ppt/presentation.xml", []byte(`<p:presentation xmlns:p="x"/>`), ContentTypePresentation)
	pkg.SetPart("ppt/slides/slide1.xml", []byte(`<p:sld xmlns:p="x"/>`), ContentTypeSlide)

	rels := NewRelationships()
	rels.Add(RelTypeSlide, "slides/slide1.xml")
	pkg.SetRels("ppt/presentation.xml", rels)
	return pkg
}

func TestSaveRejectsUntypedParts(t *testing.T) {
	pkg := buildTestPackage(t)
	pkg.SetPart("ppt/media/blob.bin", []byte{1, 2, 3}, "")

	_, err := pkg.Bytes()
	if !errors.Is(err, ErrMissingContentType) {
		t.Fatalf("Expected ErrMissingContentType, got %v", err)
	}
}

func TestArchiveLayout(t *testing.T) {
	pkg := buildTestPackage(t)
	data, err := pkg.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Output is not a zip: %v", err)
	}

	if zr.File[0].Name != "[Content_Types].xml" {
		t.Errorf("Manifest is not the first member, got %s", zr.File[0].Name)
	}

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slides/slide1.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		if !names[want] {
			t.Errorf("Archive missing %s", want)
		}
	}
}

func TestRoundTripFixedPoint(t *testing.T) {
	pkg := buildTestPackage(t)
	b1, err := pkg.Bytes()
	if err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	p2, err := FromBytes(b1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b2, err := p2.Bytes()
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	p3, err := FromBytes(b2)
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}
	b3, err := p3.Bytes()
	if err != nil {
		t.Fatalf("Third save failed: %v", err)
	}

	if !bytes.Equal(b2, b3) {
		t.Errorf("Save/load did not reach a fixed point")
	}
}

func TestRoundTripPreservesUnknownParts(t *testing.T) {
	pkg := buildTestPackage(t)
	chart := []byte(`<c:chartSpace xmlns:c="x"><c:chart/></c:chartSpace>`)
	pkg.SetPart("ppt/charts/chart1.xml", chart, "application/vnd.openxmlformats-officedocument.drawingml.chart+xml")

	data, err := pkg.Bytes()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := FromBytes(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, ok := loaded.Part("ppt/charts/chart1.xml")
	if !ok {
		t.Fatalf("Unknown part lost")
	}
	if !bytes.Equal(got, chart) {
		t.Errorf("Unknown part bytes changed on round trip")
	}
}

func TestEmptiedRelsSuppressedOnSave(t *testing.T) {
	pkg := buildTestPackage(t)
	data, err := pkg.Bytes()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := FromBytes(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rels, err := loaded.Rels("ppt/presentation.xml")
	if err != nil {
		t.Fatalf("Rels failed: %v", err)
	}
	for _, rel := range rels.All() {
		rels.Remove(rel.ID)
	}
	loaded.SetRels("ppt/presentation.xml", rels)

	again, err := loaded.Bytes()
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(again), int64(len(again)))
	if err != nil {
		t.Fatalf("Output is not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == "ppt/_rels/presentation.xml.rels" {
			t.Errorf("Emptied relationship table still written")
		}
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pptx")

	pkg := buildTestPackage(t)
	if err := pkg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Saved file missing: %v", err)
	}

	loaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := loaded.Part("ppt/slides/slide1.xml"); !ok {
		t.Errorf("Slide part missing after open")
	}
	if got := loaded.ContentTypes().Resolve("ppt/presentation.xml"); got != ContentTypePresentation {
		t.Errorf("Content type lost, got %q", got)
	}
}
