// Package oxml provides typed views over the XML parts of a presentation
// package: the presentation root, slides, layouts, masters and notes, plus
// the shape trees and placeholder lookups inside them.
//
// A part model owns the element tree it parsed; nothing here holds a live
// pointer into another part's tree. Cross-part navigation always goes back
// through the package graph by path and relationship id.
package oxml

import (
	"fmt"

	"github.com/beevik/etree"
)

// Namespace URIs for the vocabularies this package touches. Prefixes are
// fixed to the conventional p/a/r triple; that is what every mainstream
// producer emits and what the element selectors below assume.
const (
	nsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// newPartRoot creates a prefixed root element carrying the standard
// namespace declarations.
func newPartRoot(tag string) *etree.Element {
	root := etree.NewElement(tag)
	root.CreateAttr("xmlns:a", nsDrawing)
	root.CreateAttr("xmlns:r", nsRelationships)
	root.CreateAttr("xmlns:p", nsPresentation)
	return root
}

// wrapPartDoc puts a root element into a document with the XML declaration
// every part carries.
func wrapPartDoc(root *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	doc.SetRoot(root)
	return doc
}

// parsePartDoc parses part bytes and checks the root's local name. A part
// that does not parse, or parses to the wrong kind of root, is fatal for
// this access; there is no partial parse.
func parsePartDoc(data []byte, localName string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("malformed %s part: %w", localName, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("malformed %s part: empty document", localName)
	}
	if root.Tag != localName {
		return nil, fmt.Errorf("malformed %s part: unexpected root element %s", localName, root.FullTag())
	}
	return doc, nil
}
