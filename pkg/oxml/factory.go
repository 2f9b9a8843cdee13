package oxml

import "fmt"

// Stock shape constructors. Positions are the conventional 4:3 defaults in
// EMUs; pass a zero id to let the tree's allocator assign one on Add.

// NewTitleShape creates a title placeholder shape.
func NewTitleShape(text string) *Shape {
	s := &Shape{
		Name:        "Title",
		Position:    Position{X: 457200, Y: 274638, CX: 8229600, CY: 1143000},
		Placeholder: &PlaceholderInfo{Type: "title", Idx: -1},
		Text:        &TextBody{},
		Geometry:    "rect",
	}
	if text != "" {
		s.Text.SetText(text)
	}
	return s
}

// NewBodyShape creates a body placeholder shape with one paragraph per item.
func NewBodyShape(items []string, levels []int) *Shape {
	s := &Shape{
		Name:        "Content Placeholder",
		Position:    Position{X: 457200, Y: 1600200, CX: 8229600, CY: 4525963},
		Placeholder: &PlaceholderInfo{Type: "body", Idx: 1},
		Text:        &TextBody{},
		Geometry:    "rect",
	}
	for i, item := range items {
		level := 0
		if i < len(levels) {
			level = levels[i]
		}
		s.Text.AddParagraph(item, level, RunProps{})
	}
	return s
}

// NewSubtitleShape creates a subtitle placeholder shape.
func NewSubtitleShape(text string) *Shape {
	s := &Shape{
		Name:        "Subtitle",
		Position:    Position{X: 1371600, Y: 3886200, CX: 6400800, CY: 1752600},
		Placeholder: &PlaceholderInfo{Type: "subTitle", Idx: -1},
		Text:        &TextBody{},
		Geometry:    "rect",
	}
	if text != "" {
		s.Text.SetText(text)
	}
	return s
}

// NewTextBox creates a plain (non-placeholder) text box at the given
// position.
func NewTextBox(id int, text string, pos Position, props RunProps) *Shape {
	s := &Shape{
		ID:       id,
		Name:     fmt.Sprintf("TextBox %d", id),
		Position: pos,
		Text:     &TextBody{},
		Geometry: "rect",
	}
	s.Text.AddParagraph(text, 0, props)
	return s
}
