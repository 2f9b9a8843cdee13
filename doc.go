// Package godeck builds and edits PresentationML (.pptx) files.
//
// It is organized in three layers:
//
//   - pkg/opc: the package graph. Zip archive handling, the content-type
//     manifest, and relationship tables. It knows nothing about slides.
//   - pkg/oxml: typed views over the XML parts. The presentation root,
//     slides, layouts, masters, notes, shape trees and placeholder lookup.
//   - pkg/deck: the high-level API. Position-based slide handles, the
//     built-in template, and YAML outlines.
//
// This root package re-exports the deck layer for the common case.
//
// Philosophy:
//
// godeck edits packages conservatively. Parts it does not model round-trip
// byte for byte; only parts that were actually touched are re-serialized.
// A file opened and saved without edits stays semantically identical, so
// godeck can sit in a pipeline between tools that care about content it
// does not understand.
//
// Usage:
//
//	pres, err := godeck.New()
//	if err != nil { ... }
//
//	slide, err := pres.AddSlide("Title and Content")
//	if err != nil { ... }
//	_ = slide.SetTitle("Quarterly Review")
//	_ = slide.SetBullets("body", []string{"Revenue", "Costs"}, nil)
//	_ = slide.SetNotes("Keep this one short.")
//
//	err = pres.Save("review.pptx")
package godeck
