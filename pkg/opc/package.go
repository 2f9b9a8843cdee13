package opc

import (
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PartEntry is one (name, bytes) pair from the part map.
type PartEntry struct {
	Name string
	Data []byte
}

// Package is the single source of truth for which parts exist, what type
// they declare, and what they point to. Parts are raw byte blobs addressed
// by archive-internal path; interpretation is left to the part models.
//
// Relationship tables are parsed lazily from their .rels companion on first
// access and cached until RemovePart or SetRels replaces them, never by
// time or by unrelated mutations. The part map is owned by exactly one
// in-progress edit sequence at a time; concurrent read-modify-write of the
// same part from two call sites loses one writer's changes (last SetPart
// wins).
type Package struct {
	contentTypes *ContentTypes
	pkgRels      *Relationships
	parts        map[string][]byte
	partRels     map[string]*Relationships
	compression  int
}

// NewPackage returns an empty package with seeded content-type defaults.
func NewPackage() *Package {
	return &Package{
		contentTypes: NewContentTypes(),
		pkgRels:      NewRelationships(),
		parts:        make(map[string][]byte),
		partRels:     make(map[string]*Relationships),
		compression:  DefaultCompression,
	}
}

// SetCompression sets the deflate level used when the package is
// serialized. Levels follow compress/flate: 0 stores, 1 is fastest, 9 is
// best, -1 is the default.
func (p *Package) SetCompression(level int) {
	p.compression = level
}

// ContentTypes returns the manifest registry.
func (p *Package) ContentTypes() *ContentTypes {
	return p.contentTypes
}

// PackageRels returns the package-level relationship table (_rels/.rels).
func (p *Package) PackageRels() *Relationships {
	return p.pkgRels
}

// Part returns the raw bytes of a part, or false when absent.
func (p *Package) Part(name string) ([]byte, bool) {
	data, ok := p.parts[normalize(name)]
	return data, ok
}

// SetPart stores or overwrites a part. A non-empty contentType is recorded
// as an override for the part's path. The bytes are not validated here; that
// is the part model's job.
func (p *Package) SetPart(name string, data []byte, contentType string) {
	name = normalize(name)
	p.parts[name] = data
	if contentType != "" {
		p.contentTypes.AddOverride(name, contentType)
	}
}

// RemovePart deletes a part together with its content-type override, its
// cached relationship table, and its .rels companion entry. Relationships
// held by other parts that point at this path are left alone; cleaning those
// up is the caller's responsibility.
func (p *Package) RemovePart(name string) {
	name = normalize(name)
	delete(p.parts, name)
	p.contentTypes.RemoveOverride(name)
	delete(p.parts, relsPath(name))
	delete(p.partRels, name)
}

// Rels returns the relationship table of a part, parsing the .rels companion
// on first access. A part without a companion gets a fresh empty table; the
// two cases are not distinguishable from the outside. The returned table is
// the cached one, so mutations on it are live until SetRels or a reload.
func (p *Package) Rels(name string) (*Relationships, error) {
	name = normalize(name)
	if rs, ok := p.partRels[name]; ok {
		return rs, nil
	}

	if raw, ok := p.parts[relsPath(name)]; ok {
		rs, err := ParseRelationships(raw)
		if err != nil {
			return nil, err
		}
		p.partRels[name] = rs
		return rs, nil
	}

	rs := NewRelationships()
	p.partRels[name] = rs
	return rs, nil
}

// SetRels replaces the cached relationship table of a part. It is written
// out at save time in place of any raw companion blob.
func (p *Package) SetRels(name string, rs *Relationships) {
	p.partRels[normalize(name)] = rs
}

// Parts returns every part as (name, bytes) pairs in sorted name order. The
// content-types manifest and the package-level rels are not parts.
func (p *Package) Parts() []PartEntry {
	names := make([]string, 0, len(p.parts))
	for name := range p.parts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]PartEntry, 0, len(names))
	for _, name := range names {
		out = append(out, PartEntry{Name: name, Data: p.parts[name]})
	}
	return out
}

// PartsMatching returns the parts whose name matches a doublestar glob, in
// sorted name order.
func (p *Package) PartsMatching(pattern string) ([]PartEntry, error) {
	var out []PartEntry
	for _, entry := range p.Parts() {
		ok, err := doublestar.Match(pattern, entry.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, entry)
		}
	}
	return out, nil
}

// ResolveTarget resolves a relationship target against the directory of the
// part that declares it. Absolute targets are archive-root relative. There
// is no ppt/-prefix fallback: targets in well-formed packages are relative
// to the referencing part.
func ResolveTarget(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return normalize(target)
	}
	return path.Join(path.Dir(normalize(base)), target)
}

// relsPath derives the .rels companion path for a part. The derivation is
// pure and shared by load and save.
func relsPath(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i] + "/_rels/" + name[i+1:] + ".rels"
	}
	return "_rels/" + name + ".rels"
}

func isRelsPart(name string) bool {
	return strings.HasSuffix(name, ".rels") &&
		(strings.HasPrefix(name, "_rels/") || strings.Contains(name, "/_rels/"))
}

func normalize(name string) string {
	return strings.TrimPrefix(name, "/")
}
