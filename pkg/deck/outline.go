package deck

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/godeck/godeck/pkg/oxml"
)

// Outline is the YAML description of a presentation: an optional title
// slide followed by content slides.
type Outline struct {
	Title    string         `yaml:"title,omitempty"`
	Subtitle string         `yaml:"subtitle,omitempty"`
	Creator  string         `yaml:"creator,omitempty"`
	Slides   []OutlineSlide `yaml:"slides"`
}

// OutlineSlide is one slide of an outline.
type OutlineSlide struct {
	Layout   string   `yaml:"layout,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Bullets  []Bullet `yaml:"bullets,omitempty"`
	Notes    string   `yaml:"notes,omitempty"`
}

// Bullet is one bulleted line. In YAML it is either a plain string or a
// mapping with text and level keys.
type Bullet struct {
	Text  string `yaml:"text"`
	Level int    `yaml:"level,omitempty"`
}

// UnmarshalYAML accepts both scalar and mapping forms.
func (b *Bullet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		b.Text = node.Value
		b.Level = 0
		return nil
	}
	type plain Bullet
	return node.Decode((*plain)(b))
}

// ParseOutline decodes a YAML outline.
func ParseOutline(data []byte) (*Outline, error) {
	var o Outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse outline: %w", err)
	}
	return &o, nil
}

// Build creates a presentation from an outline using the built-in
// template. An outline title becomes a leading title slide; each content
// slide defaults to the "Title and Content" layout.
func Build(o *Outline, opts ...Option) (*Presentation, error) {
	if o.Creator != "" {
		opts = append(opts, WithCreator(o.Creator))
	}
	pres, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if o.Title != "" {
		slide, err := pres.AddSlide("Title Slide")
		if err != nil {
			return nil, err
		}
		if err := slide.SetTitle(o.Title); err != nil {
			return nil, err
		}
		if o.Subtitle != "" {
			if err := slide.SetPlaceholderText("subtitle", o.Subtitle); err != nil {
				return nil, err
			}
		}
	}

	for i, os := range o.Slides {
		layout := os.Layout
		if layout == "" {
			layout = "Title and Content"
		}
		slide, err := pres.AddSlide(layout)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		if err := applyOutlineSlide(slide, os); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return pres, nil
}

func applyOutlineSlide(slide *Slide, os OutlineSlide) error {
	if os.Title != "" {
		if err := slide.SetTitle(os.Title); err != nil {
			return err
		}
	}
	if os.Subtitle != "" {
		if err := slide.SetPlaceholderText("subtitle", os.Subtitle); err != nil {
			return err
		}
	}
	if len(os.Bullets) > 0 {
		items := make([]string, len(os.Bullets))
		levels := make([]int, len(os.Bullets))
		for i, b := range os.Bullets {
			items[i] = b.Text
			levels[i] = b.Level
		}
		if err := slide.SetBullets("body", items, levels); err != nil {
			// A layout without a body placeholder gets a plain text box
			// instead of failing the build.
			var phErr *oxml.PlaceholderError
			if !errors.As(err, &phErr) {
				return err
			}
			text := ""
			for i, item := range items {
				if i > 0 {
					text += "\n"
				}
				text += item
			}
			if err := slide.AddTextBox(text, oxml.Position{X: 457200, Y: 1600200, CX: 8229600, CY: 4525963}, oxml.RunProps{}); err != nil {
				return err
			}
		}
	}
	if os.Notes != "" {
		if err := slide.SetNotes(os.Notes); err != nil {
			return err
		}
	}
	return nil
}
