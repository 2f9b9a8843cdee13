package opc

import (
	"testing"
)

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		target string
		want   string
	}{
		{
			name:   "Sibling Directory",
			base:   "ppt/slides/slide1.xml",
			target: "../slideLayouts/slideLayout1.xml",
			want:   "ppt/slideLayouts/slideLayout1.xml",
		},
		{
			name:   "Child Directory",
			base:   "ppt/presentation.xml",
			target: "slides/slide1.xml",
			want:   "ppt/slides/slide1.xml",
		},
		{
			name:   "Absolute Target",
			base:   "ppt/slides/slide1.xml",
			target: "/docProps/thumbnail.jpeg",
			want:   "docProps/thumbnail.jpeg",
		},
		{
			name:   "Root Base",
			base:   "presentation.xml",
			target: "media/image1.png",
			want:   "media/image1.png",
		},
		{
			// Some producers write presentation-relative targets without
			// the leading segments. Those resolve strictly against the
			// referencing part's directory, so a bare "slides/slide1.xml"
			// from a slide part lands in the wrong place on purpose.
			name:   "No Prefix Guessing",
			base:   "ppt/slides/slide2.xml",
			target: "slides/slide1.xml",
			want:   "ppt/slides/slides/slide1.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTarget(tt.base, tt.target); got != tt.want {
				t.Errorf("ResolveTarget(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
			}
		})
	}
}

func TestRelsPathDerivation(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"ppt/presentation.xml", "ppt/_rels/presentation.xml.rels"},
		{"ppt/slides/slide1.xml", "ppt/slides/_rels/slide1.xml.rels"},
		{"rootpart.xml", "_rels/rootpart.xml.rels"},
	}
	for _, tt := range tests {
		if got := relsPath(tt.part); got != tt.want {
			t.Errorf("relsPath(%q) = %q, want %q", tt.part, got, tt.want)
		}
	}
}

func TestSetAndRemovePart(t *testing.T) {
	pkg := NewPackage()
	pkg.SetPart("ppt/slides/slide1.xml", []byte("<sld/>"), ContentTypeSlide)

	rels, err := pkg.Rels("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("Rels failed: %v", err)
	}
	rels.Add(RelTypeSlideLayout, "../slideLayouts/slideLayout1.xml")
	pkg.SetRels("ppt/slides/slide1.xml", rels)

	pkg.RemovePart("ppt/slides/slide1.xml")

	if _, ok := pkg.Part("ppt/slides/slide1.xml"); ok {
		t.Errorf("Part still present after removal")
	}
	if got := pkg.ContentTypes().Resolve("ppt/slides/slide1.xml"); got != ContentTypeXML {
		t.Errorf("Override not removed, resolves to %q", got)
	}
	fresh, err := pkg.Rels("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("Rels after removal failed: %v", err)
	}
	if fresh.Len() != 0 {
		t.Errorf("Stale relationship table survived removal")
	}
}

func TestRelsLazyParseAndCache(t *testing.T) {
	pkg := NewPackage()
	pkg.SetPart("ppt/slides/slide1.xml", []byte("<sld/>"), ContentTypeSlide)
	raw := `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="t" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`
	pkg.SetPart("ppt/slides/_rels/slide1.xml.rels", []byte(raw), "")

	rels, err := pkg.Rels("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("Rels failed: %v", err)
	}
	if rels.Len() != 1 {
		t.Fatalf("Expected 1 parsed relationship, got %d", rels.Len())
	}

	// The cached table is live: a second access sees mutations.
	rels.Add("t2", "other.xml")
	again, err := pkg.Rels("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("Second Rels failed: %v", err)
	}
	if again.Len() != 2 {
		t.Errorf("Cache not shared, got %d relationships", again.Len())
	}
}

func TestPartsMatching(t *testing.T) {
	pkg := NewPackage()
	pkg.SetPart("ppt/slides/slide2.xml", []byte("b"), ContentTypeSlide)
	pkg.SetPart("ppt/slides/slide1.xml", []byte("a"), ContentTypeSlide)
	pkg.SetPart("ppt/slideLayouts/slideLayout1.xml", []byte("c"), ContentTypeSlideLayout)
	pkg.SetPart("ppt/media/image1.png", []byte("d"), "")

	entries, err := pkg.PartsMatching("ppt/slides/*.xml")
	if err != nil {
		t.Fatalf("PartsMatching failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 slides, got %d", len(entries))
	}
	if entries[0].Name != "ppt/slides/slide1.xml" || entries[1].Name != "ppt/slides/slide2.xml" {
		t.Errorf("Entries not in sorted order: %v", entries)
	}

	all, err := pkg.PartsMatching("**/*.png")
	if err != nil {
		t.Fatalf("Doublestar match failed: %v", err)
	}
	if len(all) != 1 || all[0].Name != "ppt/media/image1.png" {
		t.Errorf("Doublestar pattern missed media part: %v", all)
	}
}
