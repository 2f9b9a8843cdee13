package opc

// Seed XML for the document property parts of a blank package.
var (
	corePropsXML = []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
    xmlns:dc="http://purl.org/dc/elements/1.1/"
    xmlns:dcterms="http://purl.org/dc/terms/"
    xmlns:dcmitype="http://purl.org/dc/dcmitype/"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
    <dc:creator>godeck</dc:creator>
    <cp:lastModifiedBy>godeck</cp:lastModifiedBy>
</cp:coreProperties>`)

	extPropsXML = []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
    xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
    <Application>godeck</Application>
    <Slides>0</Slides>
</Properties>`)
)

// NewBlank creates a minimal blank package: image content-type defaults,
// package-level relationships to the presentation root and the document
// property parts, and the property parts themselves. The presentation part
// itself is the part model's business.
func NewBlank() *Package {
	pkg := NewPackage()

	pkg.contentTypes.AddDefault("jpeg", ContentTypeJPEG)
	pkg.contentTypes.AddDefault("png", ContentTypePNG)
	pkg.contentTypes.AddDefault("gif", ContentTypeGIF)
	pkg.contentTypes.AddDefault("emf", ContentTypeEMF)

	pkg.pkgRels.Put(Relationship{ID: "rId1", Type: RelTypeOfficeDocument, Target: "ppt/presentation.xml"})
	pkg.pkgRels.Put(Relationship{ID: "rId2", Type: RelTypeCoreProps, Target: "docProps/core.xml"})
	pkg.pkgRels.Put(Relationship{ID: "rId3", Type: RelTypeExtProps, Target: "docProps/app.xml"})

	pkg.SetPart("docProps/core.xml", corePropsXML, ContentTypeCoreProps)
	pkg.SetPart("docProps/app.xml", extPropsXML, ContentTypeExtProps)

	return pkg
}
