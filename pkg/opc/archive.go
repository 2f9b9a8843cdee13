package opc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/flate"
)

const packageRelsPath = "_rels/.rels"

// DefaultCompression is the deflate level packages serialize with unless
// SetCompression overrides it.
const DefaultCompression = flate.DefaultCompression

// FromBytes loads a package from zip archive bytes. Every member is read
// into the part map; the content-types manifest and the package-level rels
// are lifted out and parsed. Part-level .rels companions stay raw until a
// table is first requested.
func FromBytes(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	pkg := NewPackage()
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open archive member %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read archive member %s: %w", f.Name, err)
		}
		pkg.parts[f.Name] = content
	}

	if raw, ok := pkg.parts[contentTypesPartName]; ok {
		ct, err := ParseContentTypes(raw)
		if err != nil {
			return nil, err
		}
		pkg.contentTypes = ct
		delete(pkg.parts, contentTypesPartName)
	}

	if raw, ok := pkg.parts[packageRelsPath]; ok {
		rels, err := ParseRelationships(raw)
		if err != nil {
			return nil, err
		}
		pkg.pkgRels = rels
		delete(pkg.parts, packageRelsPath)
	}

	return pkg, nil
}

// Open loads a package from a zip file on disk.
func Open(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FromBytes(data)
}

// Bytes serializes the package to zip archive bytes: manifest first, then
// package rels, then per-part relationship tables, then raw parts. The
// operation is all-or-nothing: a part without a resolvable content type
// fails the save before any bytes are produced.
func (p *Package) Bytes() ([]byte, error) {
	for _, entry := range p.Parts() {
		if p.contentTypes.Resolve(entry.Name) == "" {
			return nil, fmt.Errorf("%w for part %q", ErrMissingContentType, entry.Name)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, p.compression)
	})

	write := func(name string, data []byte) error {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create archive member %s: %w", name, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write archive member %s: %w", name, err)
		}
		return nil
	}

	manifest, err := p.contentTypes.MarshalXML()
	if err != nil {
		return nil, err
	}
	if err := write(contentTypesPartName, manifest); err != nil {
		return nil, err
	}

	if p.pkgRels.Len() > 0 {
		data, err := p.pkgRels.MarshalXML()
		if err != nil {
			return nil, err
		}
		if err := write(packageRelsPath, data); err != nil {
			return nil, err
		}
	}

	// Materialized tables supersede any raw .rels blob for the same part,
	// including the case where the table has been emptied.
	covered := make(map[string]bool)
	for name, rels := range p.partRels {
		covered[relsPath(name)] = true
		if rels.Len() == 0 {
			continue
		}
		data, err := rels.MarshalXML()
		if err != nil {
			return nil, err
		}
		if err := write(relsPath(name), data); err != nil {
			return nil, err
		}
	}

	for _, entry := range p.Parts() {
		if isRelsPart(entry.Name) && covered[entry.Name] {
			continue
		}
		if err := write(entry.Name, entry.Data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the package to disk atomically: the archive is fully
// assembled in memory, written to a temp file, and renamed into place.
func (p *Package) Save(path string) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0644)
}
