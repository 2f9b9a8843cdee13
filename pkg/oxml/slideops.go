package oxml

import (
	"fmt"
	"path"
	"strings"

	"github.com/godeck/godeck/pkg/opc"
)

// NameAllocator hands out part-name numbers per directory. Numbers start one
// past the highest existing part in the directory and only move forward, so
// a number freed by deletion is never handed out again in the same session.
type NameAllocator struct {
	next map[string]int
}

// NewNameAllocator creates an empty allocator.
func NewNameAllocator() *NameAllocator {
	return &NameAllocator{next: make(map[string]int)}
}

// Next returns the next part number for dir/<stem>N.xml, seeding from the
// package on a directory's first use.
func (a *NameAllocator) Next(pkg *opc.Package, dir, stem string) int {
	key := dir + "/" + stem
	if _, ok := a.next[key]; !ok {
		high := 0
		if entries, err := pkg.PartsMatching(dir + "/*.xml"); err == nil {
			for _, entry := range entries {
				if n := extractPartNum(entry.Name, stem); n > high {
					high = n
				}
			}
		}
		a.next[key] = high + 1
	}
	n := a.next[key]
	a.next[key]++
	return n
}

// RelativeTarget computes the relationship target that reaches target from
// base's companion .rels, i.e. relative to base's directory. It is the
// inverse of opc.ResolveTarget.
func RelativeTarget(base, target string) string {
	baseDir := path.Dir(base)
	if baseDir == "." {
		return target
	}
	baseParts := strings.Split(baseDir, "/")
	targetParts := strings.Split(target, "/")

	common := 0
	for common < len(baseParts) && common < len(targetParts)-1 &&
		baseParts[common] == targetParts[common] {
		common++
	}

	var segs []string
	for i := common; i < len(baseParts); i++ {
		segs = append(segs, "..")
	}
	segs = append(segs, targetParts[common:]...)
	return strings.Join(segs, "/")
}

// SlideNameAt resolves the part name of the slide at 1-indexed position n.
// The walk is presentation list entry, presentation relationship, resolved
// target; a slide's number is its position and nothing else.
func SlideNameAt(pkg *opc.Package, pres *PresentationPart, n int) (string, error) {
	refs := pres.SlideRefs()
	if n < 1 || n > len(refs) {
		return "", fmt.Errorf("slide %d out of range [1, %d]", n, len(refs))
	}
	rels, err := pkg.Rels(PresentationPartName)
	if err != nil {
		return "", err
	}
	rel, ok := rels.Get(refs[n-1].RelID)
	if !ok {
		return "", fmt.Errorf("slide %d: relationship %s: %w", n, refs[n-1].RelID, opc.ErrRelationshipNotFound)
	}
	return opc.ResolveTarget(PresentationPartName, rel.Target), nil
}

// SlideAt loads the slide at 1-indexed position n.
func SlideAt(pkg *opc.Package, pres *PresentationPart, n int) (*SlidePart, string, error) {
	name, err := SlideNameAt(pkg, pres, n)
	if err != nil {
		return nil, "", err
	}
	data, ok := pkg.Part(name)
	if !ok {
		return nil, "", fmt.Errorf("slide part %s: %w", name, opc.ErrPartNotFound)
	}
	slide, err := ParseSlide(data)
	if err != nil {
		return nil, "", err
	}
	return slide, name, nil
}

// inheritedPlaceholderSkip marks the layout placeholder types not cloned
// onto a new slide. Date, footer, slide-number and header placeholders
// render from the layout.
var inheritedPlaceholderSkip = map[string]bool{
	"dt":     true,
	"ftr":    true,
	"sldNum": true,
	"hdr":    true,
	"sldImg": true,
}

// AddSlide creates a slide from a layout and splices it into the
// presentation at the given 0-indexed position (negative appends). The
// slide inherits the layout's content placeholders with empty text, gets
// the next part number for its directory, and is wired into both the
// content-type manifest and the relationship graph.
//
// The caller owns the PresentationPart for the whole session; its slide id
// counter must not be reset by reparsing between operations.
func AddSlide(pkg *opc.Package, pres *PresentationPart, alloc *NameAllocator, layout *LayoutPart, position int) (*SlidePart, string, error) {
	num := alloc.Next(pkg, "ppt/slides", "slide")
	name := fmt.Sprintf("ppt/slides/slide%d.xml", num)

	slide := NewSlidePart()
	layoutPhs, err := layout.Placeholders()
	if err != nil {
		return nil, "", err
	}
	for _, ph := range layoutPhs {
		if inheritedPlaceholderSkip[ph.Type] {
			continue
		}
		if err := slide.AddShape(&Shape{
			Name:        ph.Name,
			Placeholder: &PlaceholderInfo{Type: ph.Type, Idx: ph.Idx},
			Text:        &TextBody{},
		}); err != nil {
			return nil, "", err
		}
	}
	if err := PutSlide(pkg, name, slide); err != nil {
		return nil, "", err
	}

	slideRels := opc.NewRelationships()
	slideRels.Add(opc.RelTypeSlideLayout, RelativeTarget(name, layout.PartName))
	pkg.SetRels(name, slideRels)

	presRels, err := pkg.Rels(PresentationPartName)
	if err != nil {
		return nil, "", err
	}
	relID := presRels.Add(opc.RelTypeSlide, RelativeTarget(PresentationPartName, name))
	pkg.SetRels(PresentationPartName, presRels)

	pres.AddSlideRef(relID, position)
	if err := PutPresentation(pkg, pres); err != nil {
		return nil, "", err
	}
	return slide, name, nil
}

// PutSlide serializes a slide part back into the package with its content
// type.
func PutSlide(pkg *opc.Package, name string, slide *SlidePart) error {
	data, err := slide.Bytes()
	if err != nil {
		return err
	}
	pkg.SetPart(name, data, opc.ContentTypeSlide)
	return nil
}

// RemoveSlide deletes the slide at 1-indexed position n: its list entry,
// its presentation relationship, its part and companion relationships, and
// any attached notes part. Slides after it shift down one position. The
// numeric id it carried stays retired.
func RemoveSlide(pkg *opc.Package, pres *PresentationPart, n int) error {
	refs := pres.SlideRefs()
	if n < 1 || n > len(refs) {
		return fmt.Errorf("slide %d out of range [1, %d]", n, len(refs))
	}
	relID := refs[n-1].RelID

	presRels, err := pkg.Rels(PresentationPartName)
	if err != nil {
		return err
	}
	rel, ok := presRels.Get(relID)
	if !ok {
		return fmt.Errorf("slide %d: relationship %s: %w", n, relID, opc.ErrRelationshipNotFound)
	}
	slideName := opc.ResolveTarget(PresentationPartName, rel.Target)

	if _, notesName, ok, err := NotesForSlide(pkg, slideName); err == nil && ok {
		pkg.RemovePart(notesName)
	}

	pres.RemoveSlideRef(relID)
	if err := PutPresentation(pkg, pres); err != nil {
		return err
	}
	presRels.Remove(relID)
	pkg.SetRels(PresentationPartName, presRels)
	pkg.RemovePart(slideName)
	return nil
}

// MoveSlide moves the slide at 1-indexed position from to 1-indexed
// position to, shifting the slides in between.
func MoveSlide(pkg *opc.Package, pres *PresentationPart, from, to int) error {
	refs := pres.SlideRefs()
	if from < 1 || from > len(refs) {
		return fmt.Errorf("slide %d out of range [1, %d]", from, len(refs))
	}
	if to < 1 || to > len(refs) {
		return fmt.Errorf("slide %d out of range [1, %d]", to, len(refs))
	}
	order := make([]string, 0, len(refs))
	for _, ref := range refs {
		order = append(order, ref.RelID)
	}
	moved := order[from-1]
	order = append(order[:from-1], order[from:]...)
	order = append(order[:to-1], append([]string{moved}, order[to-1:]...)...)
	pres.Reorder(order)
	return PutPresentation(pkg, pres)
}
