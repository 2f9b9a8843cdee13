package deck

import (
	"fmt"

	"github.com/godeck/godeck/pkg/opc"
	"github.com/godeck/godeck/pkg/oxml"
)

// masterIDBase is the first numeric id of the presentation's master list.
const masterIDBase = 2147483648

// defaultThemeXML is the built-in Office-compatible theme. Fresh
// presentations carry it at ppt/theme/theme1.xml; opened packages keep
// whatever theme they came with.
const defaultThemeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">
  <a:themeElements>
    <a:clrScheme name="Office">
      <a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
      <a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="44546A"/></a:dk2>
      <a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>
      <a:accent1><a:srgbClr val="4472C4"/></a:accent1>
      <a:accent2><a:srgbClr val="ED7D31"/></a:accent2>
      <a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>
      <a:accent4><a:srgbClr val="FFC000"/></a:accent4>
      <a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>
      <a:accent6><a:srgbClr val="70AD47"/></a:accent6>
      <a:hlink><a:srgbClr val="0563C1"/></a:hlink>
      <a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
    </a:clrScheme>
    <a:fontScheme name="Office">
      <a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>
      <a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>
    </a:fontScheme>
    <a:fmtScheme name="Office">
      <a:fillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:tint val="50000"/></a:schemeClr></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:shade val="75000"/></a:schemeClr></a:solidFill>
      </a:fillStyleLst>
      <a:lnStyleLst>
        <a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
      </a:lnStyleLst>
      <a:effectStyleLst>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
      </a:effectStyleLst>
      <a:bgFillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:tint val="95000"/></a:schemeClr></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:shade val="85000"/></a:schemeClr></a:solidFill>
      </a:bgFillStyleLst>
    </a:fmtScheme>
  </a:themeElements>
</a:theme>
`

// builtinLayout describes one layout of the built-in template.
type builtinLayout struct {
	name       string
	layoutType string
	shapes     []*oxml.Shape
}

func builtinLayouts() []builtinLayout {
	centerTitle := func() *oxml.Shape {
		s := oxml.NewTitleShape("")
		s.Placeholder.Type = "ctrTitle"
		s.Position = oxml.Position{X: 685800, Y: 2130425, CX: 7772400, CY: 1470025}
		return s
	}
	body := func(idx int) *oxml.Shape {
		s := oxml.NewBodyShape(nil, nil)
		s.Placeholder.Idx = idx
		return s
	}
	halfBody := func(idx int, left bool) *oxml.Shape {
		s := body(idx)
		s.Position = oxml.Position{X: 457200, Y: 1600200, CX: 4038600, CY: 4525963}
		if !left {
			s.Position.X = 4648200
		}
		return s
	}

	return []builtinLayout{
		{
			name:       "Title Slide",
			layoutType: "title",
			shapes:     []*oxml.Shape{centerTitle(), oxml.NewSubtitleShape("")},
		},
		{
			name:       "Title and Content",
			layoutType: "obj",
			shapes:     []*oxml.Shape{oxml.NewTitleShape(""), body(1)},
		},
		{
			name:       "Section Header",
			layoutType: "secHead",
			shapes:     []*oxml.Shape{oxml.NewTitleShape(""), body(1)},
		},
		{
			name:       "Two Content",
			layoutType: "twoObj",
			shapes:     []*oxml.Shape{oxml.NewTitleShape(""), halfBody(1, true), halfBody(2, false)},
		},
		{
			name:       "Blank",
			layoutType: "blank",
			shapes:     nil,
		},
	}
}

// scaffold fills a blank package with the built-in template: one theme, one
// master, its layouts, and an empty presentation part wired together.
func scaffold(pkg *opc.Package) error {
	pkg.SetPart("ppt/theme/theme1.xml", []byte(defaultThemeXML), opc.ContentTypeTheme)

	master := oxml.NewMinimalMaster()
	masterName := "ppt/slideMasters/slideMaster1.xml"
	masterRels := opc.NewRelationships()

	for i, bl := range builtinLayouts() {
		layout := oxml.NewLayoutPart(bl.name, bl.layoutType)
		layoutName := fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i+1)

		tree := oxml.NewShapeTree()
		for _, sp := range bl.shapes {
			tree.Add(sp)
		}
		data, err := layout.BytesWithTree(tree)
		if err != nil {
			return err
		}
		pkg.SetPart(layoutName, data, opc.ContentTypeSlideLayout)

		layoutRels := opc.NewRelationships()
		layoutRels.Add(opc.RelTypeSlideMaster, "../slideMasters/slideMaster1.xml")
		pkg.SetRels(layoutName, layoutRels)

		relID := masterRels.Add(opc.RelTypeSlideLayout, fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i+1))
		master.AddLayoutRef(relID)
	}
	masterRels.Add(opc.RelTypeTheme, "../theme/theme1.xml")
	pkg.SetRels(masterName, masterRels)

	masterData, err := master.Bytes()
	if err != nil {
		return err
	}
	pkg.SetPart(masterName, masterData, opc.ContentTypeSlideMaster)

	pres := oxml.NewPresentationPart()
	presRels := opc.NewRelationships()
	masterRelID := presRels.Add(opc.RelTypeSlideMaster, "slideMasters/slideMaster1.xml")
	presRels.Add(opc.RelTypeTheme, "theme/theme1.xml")
	pkg.SetRels(oxml.PresentationPartName, presRels)

	pres.AddMasterRef(masterRelID, masterIDBase)
	return oxml.PutPresentation(pkg, pres)
}
