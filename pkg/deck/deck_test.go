package deck

import (
	"path/filepath"
	"testing"

	"github.com/godeck/godeck/pkg/opc"
	"github.com/godeck/godeck/pkg/oxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slideTitles(t *testing.T, pres *Presentation) []string {
	t.Helper()
	titles := make([]string, 0, pres.SlideCount())
	for n := 1; n <= pres.SlideCount(); n++ {
		slide, err := pres.Slide(n)
		require.NoError(t, err)
		title, err := slide.Title()
		require.NoError(t, err)
		titles = append(titles, title)
	}
	return titles
}

func TestNew_Defaults(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)

	assert.Equal(t, 0, pres.SlideCount())

	layouts, err := pres.Layouts()
	require.NoError(t, err)
	names := make([]string, 0, len(layouts))
	for _, l := range layouts {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{
		"Title Slide",
		"Title and Content",
		"Section Header",
		"Two Content",
		"Blank",
	}, names)
}

func TestAddSlide_RoundTrip(t *testing.T) {
	pres, err := New(WithCreator("roundtrip-test"))
	require.NoError(t, err)

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		slide, err := pres.AddSlide("Title and Content")
		require.NoError(t, err)
		require.NoError(t, slide.SetTitle(title))
	}

	data, err := pres.Bytes()
	require.NoError(t, err)

	reloaded, err := FromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.SlideCount())
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, slideTitles(t, reloaded))
}

func TestAddSlideAt_InsertsAtPosition(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)

	for _, title := range []string{"First", "Second"} {
		slide, err := pres.AddSlide("Title and Content")
		require.NoError(t, err)
		require.NoError(t, slide.SetTitle(title))
	}

	slide, err := pres.AddSlideAt("Title and Content", 0)
	require.NoError(t, err)
	require.NoError(t, slide.SetTitle("Opener"))

	assert.Equal(t, []string{"Opener", "First", "Second"}, slideTitles(t, pres))
}

func TestAddSlide_LooseLayoutMatch(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)

	// Underscores and case should not matter; neither should a partial name.
	_, err = pres.AddSlide("title_slide")
	assert.NoError(t, err)
	_, err = pres.AddSlide("two content")
	assert.NoError(t, err)

	_, err = pres.AddSlide("Quad Chart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title Slide")
}

func TestMoveSlide(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)

	for _, title := range []string{"A", "B", "C"} {
		slide, err := pres.AddSlide("Title and Content")
		require.NoError(t, err)
		require.NoError(t, slide.SetTitle(title))
	}

	require.NoError(t, pres.MoveSlide(3, 1))
	assert.Equal(t, []string{"C", "A", "B"}, slideTitles(t, pres))

	require.NoError(t, pres.MoveSlide(1, 3))
	assert.Equal(t, []string{"A", "B", "C"}, slideTitles(t, pres))
}

func TestRemoveSlide(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)

	for _, title := range []string{"A", "B", "C"} {
		slide, err := pres.AddSlide("Title and Content")
		require.NoError(t, err)
		require.NoError(t, slide.SetTitle(title))
	}

	require.NoError(t, pres.RemoveSlide(2))
	assert.Equal(t, 2, pres.SlideCount())
	assert.Equal(t, []string{"A", "C"}, slideTitles(t, pres))

	// The part and its relationship companion are gone from the package.
	_, ok := pres.Package().Part("ppt/slides/slide2.xml")
	assert.False(t, ok)
	_, ok = pres.Package().Part("ppt/slides/_rels/slide2.xml.rels")
	assert.False(t, ok)

	// Part numbers are never reissued within a session.
	slide, err := pres.AddSlide("Blank")
	require.NoError(t, err)
	assert.Equal(t, "ppt/slides/slide4.xml", slide.Name())
}

func TestNotes_PersistAcrossReload(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)

	slide, err := pres.AddSlide("Title and Content")
	require.NoError(t, err)
	require.NoError(t, slide.SetNotes("Remember the demo"))
	require.NoError(t, slide.AppendNotes("Check the clicker"))

	data, err := pres.Bytes()
	require.NoError(t, err)
	reloaded, err := FromBytes(data)
	require.NoError(t, err)

	got, err := reloaded.Slide(1)
	require.NoError(t, err)
	notes, err := got.Notes()
	require.NoError(t, err)
	assert.Equal(t, "Remember the demo\nCheck the clicker", notes)
}

func TestNotes_EmptyWithoutPart(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)
	slide, err := pres.AddSlide("Blank")
	require.NoError(t, err)

	notes, err := slide.Notes()
	require.NoError(t, err)
	assert.Equal(t, "", notes)
}

func TestSetPlaceholderText_UnknownListsAvailable(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)
	slide, err := pres.AddSlide("Title and Content")
	require.NoError(t, err)

	err = slide.SetPlaceholderText("picture", "nope")
	require.Error(t, err)

	var phErr *oxml.PlaceholderError
	require.ErrorAs(t, err, &phErr)
	assert.Equal(t, "picture", phErr.Requested)
	assert.Contains(t, phErr.Available, "title")
	assert.Contains(t, phErr.Available, "body")
}

func TestPlaceholders_TwoContentIndexQualified(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)
	slide, err := pres.AddSlide("Two Content")
	require.NoError(t, err)

	names, err := slide.Placeholders()
	require.NoError(t, err)
	assert.Contains(t, names, "title")
	assert.Contains(t, names, "body_1")
	assert.Contains(t, names, "body_2")
}

func TestSetBullets(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)
	slide, err := pres.AddSlide("Title and Content")
	require.NoError(t, err)

	items := []string{"one", "two", "three"}
	require.NoError(t, slide.SetBullets("body", items, []int{0, 1, 1}))

	text, err := slide.PlaceholderText("body")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree", text)
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")

	pres, err := New(WithCreator("save-test"))
	require.NoError(t, err)
	slide, err := pres.AddSlide("Title Slide")
	require.NoError(t, err)
	require.NoError(t, slide.SetTitle("Quarterly Review"))
	require.NoError(t, pres.Save(path))

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.SlideCount())
	assert.Equal(t, []string{"Quarterly Review"}, slideTitles(t, reloaded))
}

func TestWithCompression(t *testing.T) {
	build := func(level int) []byte {
		pres, err := New(WithCompression(level))
		require.NoError(t, err)
		data, err := pres.Bytes()
		require.NoError(t, err)
		return data
	}

	stored := build(0)
	deflated := build(9)
	assert.Greater(t, len(stored), len(deflated))

	// Both archives load back regardless of level.
	_, err := FromBytes(stored)
	assert.NoError(t, err)
	_, err = FromBytes(deflated)
	assert.NoError(t, err)
}

func TestAttachPartAndLinkFromSlide(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)
	_, err = pres.AddSlide("Blank")
	require.NoError(t, err)

	chart := []byte(`<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"/>`)
	pres.AttachPart("ppt/charts/chart1.xml", chart,
		"application/vnd.openxmlformats-officedocument.drawingml.chart+xml")

	relID, err := pres.LinkFromSlide(1, opc.RelTypeChart, "ppt/charts/chart1.xml")
	require.NoError(t, err)
	assert.Equal(t, "rId2", relID)

	rels, err := pres.Package().Rels("ppt/slides/slide1.xml")
	require.NoError(t, err)
	rel, ok := rels.Get(relID)
	require.True(t, ok)
	assert.Equal(t, "../charts/chart1.xml", rel.Target)

	// The opaque part survives a round trip untouched.
	data, err := pres.Bytes()
	require.NoError(t, err)
	reloaded, err := FromBytes(data)
	require.NoError(t, err)
	got, ok := reloaded.Package().Part("ppt/charts/chart1.xml")
	require.True(t, ok)
	assert.Equal(t, chart, got)
}

func TestAddPicture(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)
	slide, err := pres.AddSlide("Blank")
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	pos := oxml.Position{X: 914400, Y: 914400, CX: 1828800, CY: 1828800}
	require.NoError(t, slide.AddPicture(png, "png", pos))

	data, ok := pres.Package().Part("ppt/media/image1.png")
	require.True(t, ok)
	assert.Equal(t, png, data)
	assert.Equal(t, "image/png",
		pres.Package().ContentTypes().Resolve("ppt/media/image1.png"))

	// A second picture gets the next media number, not a collision.
	require.NoError(t, slide.AddPicture(png, "png", pos))
	_, ok = pres.Package().Part("ppt/media/image2.png")
	assert.True(t, ok)
}
