package opc

import (
	"strings"
	"testing"
)

func TestRelationshipIDAllocation(t *testing.T) {
	t.Run("Sequential IDs", func(t *testing.T) {
		rs := NewRelationships()
		if id := rs.Add(RelTypeSlide, "slides/slide1.xml"); id != "rId1" {
			t.Errorf("Expected rId1, got %s", id)
		}
		if id := rs.Add(RelTypeSlide, "slides/slide2.xml"); id != "rId2" {
			t.Errorf("Expected rId2, got %s", id)
		}
	})

	t.Run("Explicit ID Advances Counter", func(t *testing.T) {
		rs := NewRelationships()
		rs.Put(Relationship{ID: "rId5", Type: RelTypeSlide, Target: "slides/slide1.xml"})
		if id := rs.Add(RelTypeSlide, "slides/slide2.xml"); id != "rId6" {
			t.Errorf("Expected rId6 after explicit rId5, got %s", id)
		}
	})

	t.Run("Removed IDs Are Not Reused", func(t *testing.T) {
		rs := NewRelationships()
		rs.Add(RelTypeSlide, "slides/slide1.xml")
		id2 := rs.Add(RelTypeSlide, "slides/slide2.xml")
		rs.Remove(id2)
		if id := rs.Add(RelTypeSlide, "slides/slide3.xml"); id != "rId3" {
			t.Errorf("Expected rId3 after removing rId2, got %s", id)
		}
		if _, ok := rs.Get(id2); ok {
			t.Errorf("Removed relationship still present")
		}
	})

	t.Run("Non-Numeric IDs Ignored By Counter", func(t *testing.T) {
		rs := NewRelationships()
		rs.Put(Relationship{ID: "layoutRef", Type: RelTypeSlideLayout, Target: "x.xml"})
		if id := rs.Add(RelTypeSlide, "slides/slide1.xml"); id != "rId1" {
			t.Errorf("Expected rId1, got %s", id)
		}
	})

	t.Run("Parsed Table Recomputes High Water", func(t *testing.T) {
		xml := `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2" Type="t" Target="a.xml"/>
  <Relationship Id="rId7" Type="t" Target="b.xml"/>
</Relationships>`
		rs, err := ParseRelationships([]byte(xml))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if id := rs.Add(RelTypeSlide, "c.xml"); id != "rId8" {
			t.Errorf("Expected rId8, got %s", id)
		}
	})
}

func TestRelationshipOrder(t *testing.T) {
	rs := NewRelationships()
	rs.Add("typeA", "a.xml")
	rs.Add("typeB", "b.xml")
	rs.Add("typeA", "c.xml")

	all := rs.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 relationships, got %d", len(all))
	}
	wantTargets := []string{"a.xml", "b.xml", "c.xml"}
	for i, rel := range all {
		if rel.Target != wantTargets[i] {
			t.Errorf("Position %d: expected %s, got %s", i, wantTargets[i], rel.Target)
		}
	}

	byType := rs.FindByType("typeA")
	if len(byType) != 2 || byType[0].Target != "a.xml" || byType[1].Target != "c.xml" {
		t.Errorf("FindByType order wrong: %+v", byType)
	}
}

func TestRelationshipTargetMode(t *testing.T) {
	rs := NewRelationships()
	rs.Add(RelTypeImage, "../media/image1.png")
	rs.AddExternal(RelTypeHyperlink, "https://example.com/")

	data, err := rs.MarshalXML()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	xml := string(data)
	if strings.Count(xml, `TargetMode="External"`) != 1 {
		t.Errorf("Expected exactly one External TargetMode, got:\n%s", xml)
	}

	parsed, err := ParseRelationships(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	links := parsed.FindByType(RelTypeHyperlink)
	if len(links) != 1 || !links[0].External() {
		t.Errorf("External relationship lost on round trip")
	}
	images := parsed.FindByType(RelTypeImage)
	if len(images) != 1 || images[0].External() {
		t.Errorf("Internal relationship gained External mode")
	}
}

func TestRelationshipCloneAndEqual(t *testing.T) {
	rs := NewRelationships()
	rs.Add(RelTypeSlide, "slides/slide1.xml")
	rs.AddExternal(RelTypeHyperlink, "https://example.com/")

	clone := rs.Clone()
	if !rs.Equal(clone) {
		t.Errorf("Clone not equal to original")
	}

	clone.Add(RelTypeSlide, "slides/slide2.xml")
	if rs.Equal(clone) {
		t.Errorf("Mutated clone still equal")
	}
	if rs.Len() != 2 {
		t.Errorf("Mutating clone changed original")
	}
}
