package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutline = `
title: Project Kickoff
subtitle: Q3 Planning
creator: avery
slides:
  - title: Agenda
    bullets:
      - Goals
      - text: Timeline
        level: 1
      - text: Risks
        level: 1
    notes: Keep this one short.
  - layout: Section Header
    title: Deep Dive
  - layout: Blank
    bullets:
      - Orphaned bullet
`

func TestParseOutline(t *testing.T) {
	o, err := ParseOutline([]byte(sampleOutline))
	require.NoError(t, err)

	assert.Equal(t, "Project Kickoff", o.Title)
	assert.Equal(t, "Q3 Planning", o.Subtitle)
	assert.Equal(t, "avery", o.Creator)
	require.Len(t, o.Slides, 3)

	// Scalar and mapping bullet forms decode to the same type.
	require.Len(t, o.Slides[0].Bullets, 3)
	assert.Equal(t, Bullet{Text: "Goals", Level: 0}, o.Slides[0].Bullets[0])
	assert.Equal(t, Bullet{Text: "Timeline", Level: 1}, o.Slides[0].Bullets[1])
	assert.Equal(t, "Keep this one short.", o.Slides[0].Notes)
	assert.Equal(t, "Section Header", o.Slides[1].Layout)
}

func TestParseOutline_Invalid(t *testing.T) {
	_, err := ParseOutline([]byte("slides: not-a-list"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	o, err := ParseOutline([]byte(sampleOutline))
	require.NoError(t, err)

	pres, err := Build(o)
	require.NoError(t, err)

	// Leading title slide plus the three content slides.
	assert.Equal(t, 4, pres.SlideCount())
	assert.Equal(t,
		[]string{"Project Kickoff", "Agenda", "Deep Dive", ""},
		slideTitles(t, pres))

	titleSlide, err := pres.Slide(1)
	require.NoError(t, err)
	subtitle, err := titleSlide.PlaceholderText("subtitle")
	require.NoError(t, err)
	assert.Equal(t, "Q3 Planning", subtitle)

	agenda, err := pres.Slide(2)
	require.NoError(t, err)
	body, err := agenda.PlaceholderText("body")
	require.NoError(t, err)
	assert.Equal(t, "Goals\nTimeline\nRisks", body)
	notes, err := agenda.Notes()
	require.NoError(t, err)
	assert.Equal(t, "Keep this one short.", notes)
}

func TestBuild_NoTitleSkipsTitleSlide(t *testing.T) {
	o := &Outline{Slides: []OutlineSlide{{Title: "Only"}}}
	pres, err := Build(o)
	require.NoError(t, err)
	assert.Equal(t, 1, pres.SlideCount())
}

func TestBuild_BulletsWithoutBodyBecomeTextBox(t *testing.T) {
	o := &Outline{
		Slides: []OutlineSlide{{
			Layout:  "Blank",
			Bullets: []Bullet{{Text: "left"}, {Text: "over"}},
		}},
	}
	pres, err := Build(o)
	require.NoError(t, err)

	// The blank layout has no body placeholder, so the bullets land in a
	// plain text box instead of failing the build.
	slide, err := pres.Slide(1)
	require.NoError(t, err)
	names, err := slide.Placeholders()
	require.NoError(t, err)
	assert.Empty(t, names)
}
