package opc

// Relationship type URIs used in .rels files.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelTypeSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelTypeSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelTypeTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelTypeNotesSlide     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	RelTypeNotesMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	RelTypeHandoutMaster  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/handoutMaster"
	RelTypePresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	RelTypeViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	RelTypeTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	RelTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelTypeChart          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
	RelTypeTags           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tags"
)

// Content type strings for [Content_Types].xml.
const (
	ContentTypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ContentTypeTemplate     = "application/vnd.openxmlformats-officedocument.presentationml.template.main+xml"
	ContentTypeSlideshow    = "application/vnd.openxmlformats-officedocument.presentationml.slideshow.main+xml"

	ContentTypeSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ContentTypeSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ContentTypeSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ContentTypeNotesSlide    = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ContentTypeNotesMaster   = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	ContentTypeHandoutMaster = "application/vnd.openxmlformats-officedocument.presentationml.handoutMaster+xml"

	ContentTypeTheme       = "application/vnd.openxmlformats-officedocument.theme+xml"
	ContentTypePresProps   = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ContentTypeViewProps   = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ContentTypeTableStyles = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"

	ContentTypeCoreProps = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtProps  = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	ContentTypeRels = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML  = "application/xml"

	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
	ContentTypeGIF  = "image/gif"
	ContentTypeBMP  = "image/bmp"
	ContentTypeTIFF = "image/tiff"
	ContentTypeSVG  = "image/svg+xml"
	ContentTypeEMF  = "image/x-emf"
	ContentTypeWMF  = "image/x-wmf"
)
