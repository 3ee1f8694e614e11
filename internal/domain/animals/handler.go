package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxCount = 50

var (
	ErrInvalidCount = errors.New("count must be an integer")
	ErrInvalidMode  = errors.New("mode must be fallback or strict")
)

// Mode elige la variante del fetcher.
type Mode string

const (
	ModeFallback Mode = "fallback"
	ModeStrict   Mode = "strict"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFallback:
		return ModeFallback, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", ErrInvalidMode
	}
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/samples", listSamplesHandler(svc))
	})
}

// fetchResponse es la respuesta de GET /api/animals.
type fetchResponse struct {
	Animals  []Animal       `json:"animals"`
	Origin   Origin         `json:"origin" enums:"remote,fallback"`
	Reason   FallbackReason `json:"reason,omitempty" enums:"not_configured,empty_results,upstream_error"`
	Attempts int            `json:"attempts,omitempty"`
}

// listAnimalsHandler godoc
// @Summary Animales al azar
// @Description Devuelve hasta `count` animales. En modo `fallback` (default) nunca falla por el upstream: usa la lista local. En modo `strict` los errores del upstream se devuelven como 502.
// @Tags animals
// @Produce json
// @Param count query int false "Cantidad (0-50, default 5)"
// @Param mode query string false "fallback | strict"
// @Success 200 {object} fetchResponse
// @Failure 400 {string} string "count/mode inválido"
// @Failure 502 {string} string "error upstream (solo strict)"
// @Router /api/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := parseCount(r.URL.Query().Get("count"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mode, err := ParseMode(r.URL.Query().Get("mode"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if mode == ModeStrict {
			items, err := svc.FetchRandomStrict(r.Context(), count)
			if err != nil {
				http.Error(w, "Error: "+err.Error(), http.StatusBadGateway)
				return
			}
			writeJSON(w, http.StatusOK, fetchResponse{
				Animals: items,
				Origin:  OriginRemote,
			})
			return
		}

		res, err := svc.FetchRandom(r.Context(), count)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, fetchResponse{
			Animals:  res.Animals,
			Origin:   res.Origin,
			Reason:   res.Reason,
			Attempts: res.Attempts,
		})
	}
}

// listSamplesHandler godoc
// @Summary Lista local de fallback
// @Tags animals
// @Produce json
// @Success 200 {array} Animal
// @Router /api/animals/samples [get]
func listSamplesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Samples(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// parseCount: vacío => DefaultCount; se limita a [0, maxCount].
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidCount
	}
	return max(0, min(n, maxCount)), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
