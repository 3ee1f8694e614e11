package page

import (
	"bytes"
	"net/http"

	"animal-encyclopedia/internal/domain/cards"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Animal Encyclopedia"

func RegisterRoutes(r chi.Router, ctrl *Controller) {
	r.Get("/", pageHandler(ctrl))
	r.Get("/cards", cardsHandler(ctrl))
}

// pageHandler pinta la página completa con la carga inicial ya hecha.
func pageHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trig := NewTrigger()
		v := ctrl.Load(r.Context(), trig)
		recordLoad("page", v)

		var buf bytes.Buffer
		err := cards.RenderPage(&buf, cards.PageData{
			View:  v,
			Title: pageTitle,
			Button: cards.Button{
				State:    string(trig.State()),
				Label:    trig.Label(),
				Disabled: trig.Disabled(),
			},
			LoadingLabel: LabelLoading,
			IdleLabel:    LabelIdle,
		})
		if err != nil {
			ctrl.log.Error("render page failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeHTML(w, http.StatusOK, buf.Bytes())
	}
}

// cardsHandler devuelve solo el contenido del contenedor (botón "load more").
// En error responde 502 con el mensaje ya renderizado.
func cardsHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := ctrl.Load(r.Context(), NewTrigger())
		recordLoad("fragment", v)

		var buf bytes.Buffer
		if err := cards.RenderContent(&buf, v); err != nil {
			ctrl.log.Error("render cards failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if v.Error != "" {
			status = http.StatusBadGateway
		}
		writeHTML(w, status, buf.Bytes())
	}
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
