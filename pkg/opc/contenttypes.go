package opc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

const (
	contentTypesNS       = "http://schemas.openxmlformats.org/package/2006/content-types"
	contentTypesPartName = "[Content_Types].xml"
)

// ContentTypes resolves a part's declared type for the archive manifest.
// Resolution is override-first, then extension default.
type ContentTypes struct {
	defaults  map[string]string
	overrides map[string]string
}

// NewContentTypes returns a registry seeded with the two defaults every
// package needs to be readable at all.
func NewContentTypes() *ContentTypes {
	return &ContentTypes{
		defaults: map[string]string{
			"rels": ContentTypeRels,
			"xml":  ContentTypeXML,
		},
		overrides: make(map[string]string),
	}
}

// AddDefault registers a content type for a file extension.
func (ct *ContentTypes) AddDefault(extension, contentType string) {
	ct.defaults[strings.TrimPrefix(extension, ".")] = contentType
}

// AddOverride registers a content type for one specific part.
func (ct *ContentTypes) AddOverride(partName, contentType string) {
	ct.overrides[partKey(partName)] = contentType
}

// RemoveOverride drops the per-part override, leaving any extension default
// in place.
func (ct *ContentTypes) RemoveOverride(partName string) {
	delete(ct.overrides, partKey(partName))
}

// Resolve returns the content type for a part, or "" when neither an
// override nor an extension default applies.
func (ct *ContentTypes) Resolve(partName string) string {
	key := partKey(partName)
	if t, ok := ct.overrides[key]; ok {
		return t
	}
	if i := strings.LastIndex(key, "."); i >= 0 {
		return ct.defaults[key[i+1:]]
	}
	return ""
}

// MarshalXML serializes the registry to the [Content_Types].xml manifest.
// Entries are emitted in sorted order so output is deterministic.
func (ct *ContentTypes) MarshalXML() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("Types")
	root.CreateAttr("xmlns", contentTypesNS)

	for _, ext := range sortedKeys(ct.defaults) {
		e := root.CreateElement("Default")
		e.CreateAttr("Extension", ext)
		e.CreateAttr("ContentType", ct.defaults[ext])
	}
	for _, part := range sortedKeys(ct.overrides) {
		e := root.CreateElement("Override")
		e.CreateAttr("PartName", part)
		e.CreateAttr("ContentType", ct.overrides[part])
	}
	return doc.WriteToBytes()
}

// ParseContentTypes parses a [Content_Types].xml manifest. Parsed registries
// start empty: the seeded defaults come from the manifest itself.
func ParseContentTypes(data []byte) (*ContentTypes, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("malformed content types manifest: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "Types" {
		return nil, fmt.Errorf("malformed content types manifest: missing Types root")
	}

	ct := &ContentTypes{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
	for _, e := range root.SelectElements("Default") {
		ext := e.SelectAttrValue("Extension", "")
		typ := e.SelectAttrValue("ContentType", "")
		if ext != "" && typ != "" {
			ct.defaults[ext] = typ
		}
	}
	for _, e := range root.SelectElements("Override") {
		part := e.SelectAttrValue("PartName", "")
		typ := e.SelectAttrValue("ContentType", "")
		if part != "" && typ != "" {
			ct.overrides[part] = typ
		}
	}
	return ct, nil
}

// partKey normalizes a part name to the manifest's leading-slash form.
func partKey(partName string) string {
	return "/" + strings.TrimPrefix(partName, "/")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
