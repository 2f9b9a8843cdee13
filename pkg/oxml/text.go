package oxml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// RunProps carries the run-level formatting subset the engine understands.
// Zero values mean "inherit from the layout/master".
type RunProps struct {
	FontSize int // centipoints; 1800 is 18pt
	Bold     bool
	Italic   bool
	Color    string // hex without '#', e.g. "FF0000"
}

// Run is one formatted stretch of text.
type Run struct {
	Text  string
	Props RunProps
}

// Paragraph is an ordered list of runs at an indent level.
type Paragraph struct {
	Level int
	Runs  []Run
}

// Text concatenates the paragraph's runs.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TextBody is the text content of a shape or table cell.
type TextBody struct {
	Paragraphs []Paragraph
}

// Text returns paragraphs joined with newlines.
func (tb *TextBody) Text() string {
	lines := make([]string, 0, len(tb.Paragraphs))
	for _, p := range tb.Paragraphs {
		lines = append(lines, p.Text())
	}
	return strings.Join(lines, "\n")
}

// SetText replaces all content with plain paragraphs, one per line.
func (tb *TextBody) SetText(text string) {
	tb.Paragraphs = nil
	for _, line := range strings.Split(text, "\n") {
		tb.Paragraphs = append(tb.Paragraphs, Paragraph{Runs: []Run{{Text: line}}})
	}
}

// AddParagraph appends a paragraph with a single run.
func (tb *TextBody) AddParagraph(text string, level int, props RunProps) {
	tb.Paragraphs = append(tb.Paragraphs, Paragraph{
		Level: level,
		Runs:  []Run{{Text: text, Props: props}},
	})
}

// toElement renders the body under the given tag ("p:txBody" on shapes,
// "a:txBody" in table cells).
func (tb *TextBody) toElement(tag string) *etree.Element {
	body := etree.NewElement(tag)
	body.CreateElement("a:bodyPr")
	body.CreateElement("a:lstStyle")

	for _, para := range tb.Paragraphs {
		p := body.CreateElement("a:p")
		if para.Level > 0 {
			pPr := p.CreateElement("a:pPr")
			pPr.CreateAttr("lvl", strconv.Itoa(para.Level))
		}
		for _, run := range para.Runs {
			r := p.CreateElement("a:r")
			if rPr := runPropsElement(run.Props); rPr != nil {
				r.AddChild(rPr)
			}
			t := r.CreateElement("a:t")
			t.SetText(run.Text)
		}
	}
	if len(tb.Paragraphs) == 0 {
		p := body.CreateElement("a:p")
		p.CreateElement("a:endParaRPr")
	}
	return body
}

func runPropsElement(props RunProps) *etree.Element {
	if props == (RunProps{}) {
		return nil
	}
	rPr := etree.NewElement("a:rPr")
	if props.FontSize > 0 {
		rPr.CreateAttr("sz", strconv.Itoa(props.FontSize))
	}
	if props.Bold {
		rPr.CreateAttr("b", "1")
	}
	if props.Italic {
		rPr.CreateAttr("i", "1")
	}
	if props.Color != "" {
		fill := rPr.CreateElement("a:solidFill")
		clr := fill.CreateElement("a:srgbClr")
		clr.CreateAttr("val", strings.ToUpper(strings.TrimPrefix(props.Color, "#")))
	}
	return rPr
}

// parseTextBody reads a txBody element back into the model. Formatting the
// engine does not understand is dropped; text and structure survive.
func parseTextBody(el *etree.Element) *TextBody {
	tb := &TextBody{}
	for _, p := range el.SelectElements("a:p") {
		para := Paragraph{}
		if pPr := p.SelectElement("a:pPr"); pPr != nil {
			para.Level, _ = strconv.Atoi(pPr.SelectAttrValue("lvl", "0"))
		}
		for _, r := range p.SelectElements("a:r") {
			run := Run{}
			if t := r.SelectElement("a:t"); t != nil {
				run.Text = t.Text()
			}
			if rPr := r.SelectElement("a:rPr"); rPr != nil {
				run.Props.FontSize, _ = strconv.Atoi(rPr.SelectAttrValue("sz", "0"))
				run.Props.Bold = rPr.SelectAttrValue("b", "") == "1"
				run.Props.Italic = rPr.SelectAttrValue("i", "") == "1"
				if clr := rPr.FindElement("a:solidFill/a:srgbClr"); clr != nil {
					run.Props.Color = clr.SelectAttrValue("val", "")
				}
			}
			para.Runs = append(para.Runs, run)
		}
		// Keep empty paragraphs as blank lines.
		if len(para.Runs) == 0 {
			para.Runs = []Run{{}}
		}
		tb.Paragraphs = append(tb.Paragraphs, para)
	}
	return tb
}
