// Package deck is the high-level API for building and editing
// presentations. It wraps the package graph in pkg/opc and the typed part
// models in pkg/oxml behind position-based slide handles.
package deck

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/godeck/godeck/pkg/opc"
	"github.com/godeck/godeck/pkg/oxml"
)

// Presentation is an in-memory presentation. It owns the package graph and
// the per-directory part-name allocator; neither is safe for concurrent
// use.
type Presentation struct {
	pkg    *opc.Package
	pres   *oxml.PresentationPart
	alloc  *oxml.NameAllocator
	logger *slog.Logger
}

// New creates a fresh presentation from the built-in template: one master,
// its stock layouts, the default theme, and no slides.
func New(opts ...Option) (*Presentation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	pkg := opc.NewBlank()
	pkg.SetCompression(o.compression)
	if err := scaffold(pkg); err != nil {
		return nil, fmt.Errorf("scaffold presentation: %w", err)
	}
	if o.creator != "" {
		if err := setCreator(pkg, o.creator); err != nil {
			return nil, err
		}
	}
	pres, err := oxml.GetPresentation(pkg)
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("created blank presentation")
	}
	return &Presentation{pkg: pkg, pres: pres, alloc: oxml.NewNameAllocator(), logger: o.logger}, nil
}

// Open loads a presentation from a .pptx file.
func Open(path string, opts ...Option) (*Presentation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	pkg, err := opc.Open(path)
	if err != nil {
		return nil, err
	}
	pkg.SetCompression(o.compression)
	pres, err := oxml.GetPresentation(pkg)
	if err != nil {
		return nil, fmt.Errorf("%s is not a presentation: %w", path, err)
	}
	if o.logger != nil {
		o.logger.Debug("opened presentation", "path", path)
	}
	return &Presentation{pkg: pkg, pres: pres, alloc: oxml.NewNameAllocator(), logger: o.logger}, nil
}

// FromBytes loads a presentation from in-memory .pptx bytes.
func FromBytes(data []byte, opts ...Option) (*Presentation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	pkg, err := opc.FromBytes(data)
	if err != nil {
		return nil, err
	}
	pkg.SetCompression(o.compression)
	pres, err := oxml.GetPresentation(pkg)
	if err != nil {
		return nil, fmt.Errorf("not a presentation: %w", err)
	}
	return &Presentation{pkg: pkg, pres: pres, alloc: oxml.NewNameAllocator(), logger: o.logger}, nil
}

// Package exposes the underlying package graph for callers that need to go
// below the facade.
func (p *Presentation) Package() *opc.Package {
	return p.pkg
}

// Bytes serializes the presentation to .pptx bytes.
func (p *Presentation) Bytes() ([]byte, error) {
	return p.pkg.Bytes()
}

// Save writes the presentation to a .pptx file atomically.
func (p *Presentation) Save(path string) error {
	if p.logger != nil {
		p.logger.Debug("saving presentation", "path", path)
	}
	return p.pkg.Save(path)
}

// SlideCount returns the number of slides.
func (p *Presentation) SlideCount() int {
	return len(p.pres.SlideRefs())
}

// Slide returns a handle on the slide at 1-indexed position n.
func (p *Presentation) Slide(n int) (*Slide, error) {
	part, name, err := oxml.SlideAt(p.pkg, p.pres, n)
	if err != nil {
		return nil, err
	}
	return &Slide{pres: p, part: part, name: name}, nil
}

// AddSlide appends a slide built from the named layout and returns its
// handle. Layout names are matched loosely, so "title_slide" finds "Title
// Slide".
func (p *Presentation) AddSlide(layoutName string) (*Slide, error) {
	return p.AddSlideAt(layoutName, -1)
}

// AddSlideAt inserts a slide built from the named layout at the given
// 0-indexed position; negative appends.
func (p *Presentation) AddSlideAt(layoutName string, position int) (*Slide, error) {
	layout, err := oxml.LayoutByName(p.pkg, layoutName)
	if err != nil {
		return nil, err
	}
	part, name, err := oxml.AddSlide(p.pkg, p.pres, p.alloc, layout, position)
	if err != nil {
		return nil, err
	}
	if p.logger != nil {
		p.logger.Debug("added slide", "part", name, "layout", layout.Name())
	}
	return &Slide{pres: p, part: part, name: name}, nil
}

// RemoveSlide deletes the slide at 1-indexed position n. Handles on the
// removed slide are dead; later slides shift down one position.
func (p *Presentation) RemoveSlide(n int) error {
	return oxml.RemoveSlide(p.pkg, p.pres, n)
}

// MoveSlide moves the slide at position from to position to, both
// 1-indexed.
func (p *Presentation) MoveSlide(from, to int) error {
	return oxml.MoveSlide(p.pkg, p.pres, from, to)
}

// LayoutInfo summarizes one available layout.
type LayoutInfo struct {
	Index        int
	Name         string
	Type         string
	Placeholders []oxml.LayoutPlaceholder
}

// Layouts lists the layouts the presentation's masters offer.
func (p *Presentation) Layouts() ([]LayoutInfo, error) {
	layouts, err := oxml.LayoutParts(p.pkg)
	if err != nil {
		return nil, err
	}
	infos := make([]LayoutInfo, 0, len(layouts))
	for i, l := range layouts {
		phs, err := l.Placeholders()
		if err != nil {
			return nil, err
		}
		infos = append(infos, LayoutInfo{
			Index:        i,
			Name:         l.Name(),
			Type:         l.Type(),
			Placeholders: phs,
		})
	}
	return infos, nil
}

// AttachPart stores an opaque part (chart XML, embedded media, anything the
// engine does not model) under the given name with the given content type.
func (p *Presentation) AttachPart(name string, data []byte, contentType string) {
	p.pkg.SetPart(name, data, contentType)
}

// LinkFromSlide relates the slide at 1-indexed position n to an attached
// part and returns the allocated relationship id.
func (p *Presentation) LinkFromSlide(n int, relType, partName string) (string, error) {
	slide, err := p.Slide(n)
	if err != nil {
		return "", err
	}
	return slide.Link(relType, partName)
}

// setCreator rewrites dc:creator in the core properties part.
func setCreator(pkg *opc.Package, creator string) error {
	data, ok := pkg.Part("docProps/core.xml")
	if !ok {
		return nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("malformed core properties: %w", err)
	}
	if el := doc.FindElement("//dc:creator"); el != nil {
		el.SetText(creator)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return err
	}
	pkg.SetPart("docProps/core.xml", out, "")
	return nil
}
