package godeck

import (
	"log/slog"

	"github.com/godeck/godeck/pkg/deck"
	"github.com/godeck/godeck/pkg/opc"
	"github.com/godeck/godeck/pkg/oxml"
)

// --- Types ---

// Presentation is a public alias for the high-level presentation handle.
type Presentation = deck.Presentation

// Slide is a public alias for the slide handle.
type Slide = deck.Slide

// LayoutInfo is a public alias for the layout summary.
type LayoutInfo = deck.LayoutInfo

// Outline is a public alias for the YAML outline model.
type Outline = deck.Outline

// Position is a public alias for the EMU geometry of a shape.
type Position = oxml.Position

// RunProps is a public alias for run-level text formatting.
type RunProps = oxml.RunProps

// Package is a public alias for the low-level package graph.
type Package = opc.Package

// --- Configuration ---

// Option defines a functional option for configuring a Presentation.
type Option = deck.Option

// WithLogger sets the logger for the presentation.
func WithLogger(logger *slog.Logger) Option {
	return deck.WithLogger(logger)
}

// WithCreator sets the author recorded in fresh presentations.
func WithCreator(creator string) Option {
	return deck.WithCreator(creator)
}

// WithCompression sets the deflate level used when saving.
func WithCompression(level int) Option {
	return deck.WithCompression(level)
}

// --- Factory ---

// New creates a fresh presentation from the built-in template.
func New(opts ...Option) (*Presentation, error) {
	return deck.New(opts...)
}

// Open loads a presentation from a .pptx file.
func Open(path string, opts ...Option) (*Presentation, error) {
	return deck.Open(path, opts...)
}

// FromBytes loads a presentation from in-memory .pptx bytes.
func FromBytes(data []byte, opts ...Option) (*Presentation, error) {
	return deck.FromBytes(data, opts...)
}

// --- Outlines ---

// ParseOutline decodes a YAML outline.
func ParseOutline(data []byte) (*Outline, error) {
	return deck.ParseOutline(data)
}

// Build creates a presentation from an outline.
func Build(o *Outline, opts ...Option) (*Presentation, error) {
	return deck.Build(o, opts...)
}

// --- Low level ---

// OpenPackage loads the raw package graph from a file without interpreting
// it as a presentation.
func OpenPackage(path string) (*Package, error) {
	return opc.Open(path)
}

// EMU conversions. OOXML geometry is in English Metric Units.
const (
	EMUPerInch  = 914400
	EMUPerCm    = 360000
	EMUPerPoint = 12700
)

// Inches converts inches to EMUs.
func Inches(v float64) int64 {
	return int64(v * EMUPerInch)
}

// Cm converts centimeters to EMUs.
func Cm(v float64) int64 {
	return int64(v * EMUPerCm)
}

// Points converts typographic points to EMUs.
func Points(v float64) int64 {
	return int64(v * EMUPerPoint)
}
