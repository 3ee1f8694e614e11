package cards

import (
	"embed"
	"html/template"
	"io"
	"sync"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	templates   *template.Template
	templateErr error
	parseOnce   sync.Once
)

func loadTemplates() (*template.Template, error) {
	parseOnce.Do(func() {
		templates, templateErr = template.New("cards").ParseFS(templateFS, "templates/*.tmpl")
	})
	return templates, templateErr
}

// Button es el estado visible del disparador "load more".
type Button struct {
	State    string
	Label    string
	Disabled bool
}

// View es lo que se pinta dentro del contenedor animal-list: tarjetas
// (+ confetti opcional) o un mensaje de error.
type View struct {
	Cards    []Card
	Confetti *Confetti
	Error    string
	Origin   string
}

// PageData es la página completa.
type PageData struct {
	View
	Title        string
	Button       Button
	LoadingLabel string
	IdleLabel    string
}

// RenderContent escribe el fragmento del contenedor (lista o error).
func RenderContent(w io.Writer, v View) error {
	t, err := loadTemplates()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, "content", v)
}

// RenderCard escribe una sola tarjeta.
func RenderCard(w io.Writer, c Card) error {
	t, err := loadTemplates()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, "card", c)
}

func RenderPage(w io.Writer, p PageData) error {
	t, err := loadTemplates()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, "page", p)
}
