package cards

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"animal-encyclopedia/internal/domain/animals"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(7, 9)) }

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestNew_MissingCharacteristicsDefaultToUnknown(t *testing.T) {
	c := New(animals.Animal{Name: "Mystery Beast"}, seeded(), true)

	assert.Equal(t, Unknown, c.Habitat)
	assert.Equal(t, Unknown, c.Diet)
	assert.Equal(t, DefaultEmoji, c.Emoji)
	assert.Empty(t, c.Fact)
	assert.Contains(t, PastelPalette, c.Color)
	assert.True(t, strings.HasPrefix(c.ID, "card-"))
	assert.Equal(t, "https://source.unsplash.com/featured/240x160/?Mystery%20Beast", c.ImageURL)
}

func TestNew_PartialCharacteristics(t *testing.T) {
	a := animals.Animal{Name: "Fox", Characteristics: &animals.Characteristics{Diet: "Omnivore"}}
	c := New(a, seeded(), false)

	assert.Equal(t, Unknown, c.Habitat)
	assert.Equal(t, "Omnivore", c.Diet)
	assert.Empty(t, c.Color, "plain cards carry no colour")
	assert.Empty(t, c.Emoji, "plain cards only show an emoji when the record has one")
}

func TestImageURL_EscapesLikeEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "https://source.unsplash.com/featured/240x160/?Cat%20%26%20Dog", ImageURL("Cat & Dog"))
}

func TestRenderCard_Unknowns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCard(&buf, New(animals.Animal{Name: "Blobfish"}, seeded(), true)))

	doc := parse(t, buf.String())
	card := doc.Find(".animal-card")
	require.Equal(t, 1, card.Length())

	assert.Equal(t, "Blobfish", card.Find(".animal-card__name").Text())
	assert.Equal(t, "Habitat: Unknown", card.Find(".animal-card__habitat").Text())
	assert.Equal(t, "Diet: Unknown", card.Find(".animal-card__diet").Text())
	assert.Equal(t, 0, card.Find(".animal-card__fact").Length())
	assert.Equal(t, DefaultEmoji, card.Find(".animal-card__emoji").Text())

	style, ok := card.Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "background: #")
}

func TestRenderCard_EscapesRecordText(t *testing.T) {
	a := animals.Animal{Name: `<script>alert(1)</script>`, Fact: `<b>bold</b>`}
	var buf bytes.Buffer
	require.NoError(t, RenderCard(&buf, New(a, seeded(), false)))

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")

	doc := parse(t, out)
	assert.Equal(t, `<b>bold</b>`, doc.Find(".animal-card__fact").Text())
}

func TestRenderContent_ListWithConfetti(t *testing.T) {
	rng := seeded()
	list := make([]Card, 0, 5)
	for _, a := range animals.SampleAnimals[:5] {
		list = append(list, New(a, rng, true))
	}

	var buf bytes.Buffer
	require.NoError(t, RenderContent(&buf, View{Cards: list, Confetti: NewConfetti(rng)}))

	doc := parse(t, buf.String())
	assert.Equal(t, 5, doc.Find(".animal-card").Length())
	assert.Equal(t, 5, doc.Find(".animal-card__fact").Length())
	assert.Equal(t, ConfettiPieces, doc.Find(".confetti-container .confetti-piece").Length())

	lifetime, _ := doc.Find(".confetti-container").Attr("data-lifetime-ms")
	assert.Equal(t, "4000", lifetime)
}

func TestRenderContent_Error(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderContent(&buf, View{Error: "API error: 500", Cards: []Card{{Name: "x"}}}))

	doc := parse(t, buf.String())
	assert.Equal(t, "Error: API error: 500", doc.Find("p.error").Text())
	assert.Equal(t, 0, doc.Find(".animal-card").Length())
}

func TestNewConfetti_Ranges(t *testing.T) {
	c := NewConfetti(seeded())
	require.Len(t, c.Particles, ConfettiPieces)

	for _, p := range c.Particles {
		assert.True(t, slices.Contains(ConfettiColours, p.Colour))
		assert.GreaterOrEqual(t, p.Left, 0.0)
		assert.Less(t, p.Left, 100.0)
		assert.GreaterOrEqual(t, p.Delay, 0.0)
		assert.Less(t, p.Delay, 0.5)
		assert.GreaterOrEqual(t, p.Duration, 2.5)
		assert.Less(t, p.Duration, 4.0)
	}
}

func TestRenderPage_Button(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPage(&buf, PageData{
		View:         View{Cards: []Card{New(animals.SampleAnimals[0], seeded(), true)}},
		Title:        "Animals",
		Button:       Button{State: "idle", Label: "Load More"},
		LoadingLabel: "Loading…",
		IdleLabel:    "Load More",
	})
	require.NoError(t, err)

	doc := parse(t, buf.String())
	btn := doc.Find("button#load-more")
	require.Equal(t, 1, btn.Length())
	assert.Equal(t, "Load More", btn.Text())
	_, disabled := btn.Attr("disabled")
	assert.False(t, disabled)
	assert.Equal(t, 1, doc.Find("#animal-list .animal-card").Length())
}
