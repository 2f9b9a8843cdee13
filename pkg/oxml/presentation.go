package oxml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/godeck/godeck/pkg/opc"
)

// PresentationPartName is the fixed path of the presentation root part.
const PresentationPartName = "ppt/presentation.xml"

// slideIDBase is the first numeric slide id PowerPoint hands out.
const slideIDBase = 256

// Default slide and notes sizes in EMUs (10" x 7.5" and its portrait twin).
const (
	defaultSlideCX = 9144000
	defaultSlideCY = 6858000
)

// SlideRef binds a stable numeric slide identity to the relationship id
// pointing at the slide's part. The numeric id is the structural identity;
// the slide's "number" is nothing but its 1-indexed position in the list.
type SlideRef struct {
	RelID   string
	SlideID int
}

// MasterRef is one entry of the slide master list.
type MasterRef struct {
	RelID    string
	MasterID int64
}

// PresentationPart is the typed view over ppt/presentation.xml: the ordered
// slide list, the master list, and the slide geometry.
//
// Numeric slide ids are allocated from a high-water mark seeded by whatever
// the parsed list already contains, starting at 256. Ids are never reused,
// even after a slide is removed.
type PresentationPart struct {
	doc         *etree.Document
	root        *etree.Element
	nextSlideID int
}

// ParsePresentation parses the presentation part's bytes.
func ParsePresentation(data []byte) (*PresentationPart, error) {
	doc, err := parsePartDoc(data, "presentation")
	if err != nil {
		return nil, err
	}
	p := &PresentationPart{doc: doc, root: doc.Root(), nextSlideID: slideIDBase}
	for _, ref := range p.SlideRefs() {
		if ref.SlideID >= p.nextSlideID {
			p.nextSlideID = ref.SlideID + 1
		}
	}
	return p, nil
}

// NewPresentationPart creates a blank presentation part: empty master and
// slide lists, default 4:3 slide size, portrait notes size.
func NewPresentationPart() *PresentationPart {
	root := newPartRoot("p:presentation")
	root.CreateElement("p:sldMasterIdLst")
	root.CreateElement("p:sldIdLst")

	sldSz := root.CreateElement("p:sldSz")
	sldSz.CreateAttr("cx", strconv.Itoa(defaultSlideCX))
	sldSz.CreateAttr("cy", strconv.Itoa(defaultSlideCY))
	sldSz.CreateAttr("type", "screen4x3")

	notesSz := root.CreateElement("p:notesSz")
	notesSz.CreateAttr("cx", strconv.Itoa(defaultSlideCY))
	notesSz.CreateAttr("cy", strconv.Itoa(defaultSlideCX))

	return &PresentationPart{doc: wrapPartDoc(root), root: root, nextSlideID: slideIDBase}
}

// SlideRefs returns the slide references in list order.
func (p *PresentationPart) SlideRefs() []SlideRef {
	var refs []SlideRef
	lst := p.root.SelectElement("p:sldIdLst")
	if lst == nil {
		return refs
	}
	for _, el := range lst.SelectElements("p:sldId") {
		id, _ := strconv.Atoi(el.SelectAttrValue("id", "0"))
		refs = append(refs, SlideRef{
			RelID:   el.SelectAttrValue("r:id", ""),
			SlideID: id,
		})
	}
	return refs
}

// MasterRefs returns the slide master references in list order.
func (p *PresentationPart) MasterRefs() []MasterRef {
	var refs []MasterRef
	lst := p.root.SelectElement("p:sldMasterIdLst")
	if lst == nil {
		return refs
	}
	for _, el := range lst.SelectElements("p:sldMasterId") {
		id, _ := strconv.ParseInt(el.SelectAttrValue("id", "0"), 10, 64)
		refs = append(refs, MasterRef{
			RelID:    el.SelectAttrValue("r:id", ""),
			MasterID: id,
		})
	}
	return refs
}

// AddMasterRef appends a master reference with the given numeric id.
func (p *PresentationPart) AddMasterRef(relID string, masterID int64) {
	lst := p.root.SelectElement("p:sldMasterIdLst")
	if lst == nil {
		lst = etree.NewElement("p:sldMasterIdLst")
		p.root.InsertChildAt(0, lst)
	}
	el := lst.CreateElement("p:sldMasterId")
	el.CreateAttr("id", strconv.FormatInt(masterID, 10))
	el.CreateAttr("r:id", relID)
}

// AddSlideRef inserts a slide reference at the given 0-indexed position
// (negative or out-of-range appends) and returns the allocated numeric
// slide id.
func (p *PresentationPart) AddSlideRef(relID string, position int) int {
	lst := p.root.SelectElement("p:sldIdLst")
	if lst == nil {
		lst = etree.NewElement("p:sldIdLst")
		if masterLst := p.root.SelectElement("p:sldMasterIdLst"); masterLst != nil {
			p.root.InsertChildAt(masterLst.Index()+1, lst)
		} else {
			p.root.InsertChildAt(0, lst)
		}
	}

	slideID := p.nextSlideID
	p.nextSlideID++

	el := etree.NewElement("p:sldId")
	el.CreateAttr("id", strconv.Itoa(slideID))
	el.CreateAttr("r:id", relID)

	existing := lst.SelectElements("p:sldId")
	if position >= 0 && position < len(existing) {
		lst.InsertChildAt(existing[position].Index(), el)
	} else {
		lst.AddChild(el)
	}
	return slideID
}

// RemoveSlideRef removes the reference with the given relationship id. The
// numeric id it carried is retired for the rest of the session.
func (p *PresentationPart) RemoveSlideRef(relID string) bool {
	lst := p.root.SelectElement("p:sldIdLst")
	if lst == nil {
		return false
	}
	for _, el := range lst.SelectElements("p:sldId") {
		if el.SelectAttrValue("r:id", "") == relID {
			lst.RemoveChild(el)
			return true
		}
	}
	return false
}

// Reorder rebuilds the slide list in the given relationship-id order.
// Unknown ids are skipped; entries missing from the order are dropped.
// Numeric slide ids travel with their entries untouched; only positions
// change.
func (p *PresentationPart) Reorder(relIDOrder []string) {
	lst := p.root.SelectElement("p:sldIdLst")
	if lst == nil {
		return
	}

	byRelID := make(map[string]*etree.Element)
	for _, el := range lst.SelectElements("p:sldId") {
		byRelID[el.SelectAttrValue("r:id", "")] = el
		lst.RemoveChild(el)
	}
	for _, relID := range relIDOrder {
		if el, ok := byRelID[relID]; ok {
			lst.AddChild(el)
		}
	}
}

// SlideSize returns the slide dimensions in EMUs.
func (p *PresentationPart) SlideSize() (cx, cy int64) {
	sldSz := p.root.SelectElement("p:sldSz")
	if sldSz == nil {
		return defaultSlideCX, defaultSlideCY
	}
	cx, _ = strconv.ParseInt(sldSz.SelectAttrValue("cx", strconv.Itoa(defaultSlideCX)), 10, 64)
	cy, _ = strconv.ParseInt(sldSz.SelectAttrValue("cy", strconv.Itoa(defaultSlideCY)), 10, 64)
	return cx, cy
}

// SetSlideSize sets the slide dimensions in EMUs.
func (p *PresentationPart) SetSlideSize(cx, cy int64) {
	sldSz := p.root.SelectElement("p:sldSz")
	if sldSz == nil {
		sldSz = p.root.CreateElement("p:sldSz")
	}
	sldSz.RemoveAttr("type")
	sldSz.CreateAttr("cx", strconv.FormatInt(cx, 10))
	sldSz.CreateAttr("cy", strconv.FormatInt(cy, 10))
	sldSz.CreateAttr("type", "custom")
}

// Bytes serializes the part.
func (p *PresentationPart) Bytes() ([]byte, error) {
	return p.doc.WriteToBytes()
}

// GetPresentation loads the presentation part from a package. A package
// without one is not a presentation.
func GetPresentation(pkg *opc.Package) (*PresentationPart, error) {
	data, ok := pkg.Part(PresentationPartName)
	if !ok {
		return nil, fmt.Errorf("presentation part: %w", opc.ErrPartNotFound)
	}
	return ParsePresentation(data)
}

// PutPresentation serializes a presentation part back into the package with
// its content type.
func PutPresentation(pkg *opc.Package, part *PresentationPart) error {
	data, err := part.Bytes()
	if err != nil {
		return err
	}
	pkg.SetPart(PresentationPartName, data, opc.ContentTypePresentation)
	return nil
}
