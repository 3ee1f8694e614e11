package cards

import (
	"html/template"
	"math/rand/v2"
	"net/url"
	"strings"

	"animal-encyclopedia/internal/domain/animals"

	"github.com/google/uuid"
)

const (
	Unknown      = "Unknown"
	DefaultEmoji = "🐾"

	imageBaseURL = "https://source.unsplash.com/featured/240x160/?"
)

// PastelPalette son los colores de fondo/borde de las tarjetas.
var PastelPalette = []string{
	"#ffe4e1", "#e6f7ff", "#eafaf1", "#fff8e7",
	"#f3e5f5", "#e8eaf6", "#e7f5fe", "#f9e6ff",
}

// Card es el view-model de una tarjeta de animal.
type Card struct {
	ID       string
	Name     string
	ImageURL string
	Habitat  string
	Diet     string
	Emoji    string // vacío => sin bloque emoji
	Fact     string // vacío => sin línea de dato curioso
	Color    string // vacío => sin estilo inline
}

// Style es el estilo inline (background + border) o "" si no hay color.
func (c Card) Style() template.CSS {
	if c.Color == "" {
		return ""
	}
	return template.CSS("background: " + c.Color + "; border-color: " + c.Color + ";")
}

// New arma la tarjeta de un animal. Con decorate=true se elige un color
// pastel al azar y el emoji por defecto es 🐾; sin decorar el emoji solo
// aparece si el registro lo trae.
func New(a animals.Animal, rng *rand.Rand, decorate bool) Card {
	c := Card{
		ID:       "card-" + uuid.NewString(),
		Name:     a.Name,
		ImageURL: ImageURL(a.Name),
		Habitat:  orDefault(a.Habitat(), Unknown),
		Diet:     orDefault(a.Diet(), Unknown),
		Emoji:    strings.TrimSpace(a.Emoji),
		Fact:     strings.TrimSpace(a.Fact),
	}

	if decorate {
		c.Emoji = orDefault(c.Emoji, DefaultEmoji)
		c.Color = PastelPalette[rng.IntN(len(PastelPalette))]
	}
	return c
}

// ImageURL deriva la imagen del nombre (mismo escape que encodeURIComponent).
func ImageURL(name string) string {
	return imageBaseURL + strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
