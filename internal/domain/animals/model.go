package animals

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Characteristics es el bloque "characteristics" de API Ninjas.
// Habitat y Diet son los únicos que usa la UI; el resto se conserva en Extra.
type Characteristics struct {
	Habitat string `json:"habitat,omitempty"`
	Diet    string `json:"diet,omitempty"`

	Extra map[string]string `json:"-"`
}

// UnmarshalJSON acepta cualquier set de claves; valores no string se
// guardan con su representación textual. Si el valor no es un objeto
// queda vacío (la UI muestra "Unknown").
func (c *Characteristics) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		*c = Characteristics{}
		return nil
	}

	out := Characteristics{}
	for k, v := range raw {
		s, ok := text(v)
		if !ok {
			continue
		}

		switch k {
		case "habitat":
			out.Habitat = s
		case "diet":
			out.Diet = s
		default:
			if out.Extra == nil {
				out.Extra = map[string]string{}
			}
			out.Extra[k] = s
		}
	}

	*c = out
	return nil
}

func (c Characteristics) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(c.Extra)+2)
	for k, v := range c.Extra {
		m[k] = v
	}
	if c.Habitat != "" {
		m["habitat"] = c.Habitat
	}
	if c.Diet != "" {
		m["diet"] = c.Diet
	}
	return json.Marshal(m)
}

// Animal representa un registro de animal, remoto o de la lista local.
// La forma del payload remoto no se valida.
type Animal struct {
	Name            string            `json:"name"`
	Emoji           string            `json:"emoji,omitempty"`
	Characteristics *Characteristics  `json:"characteristics,omitempty"`
	Fact            string            `json:"fact,omitempty"`
	Taxonomy        map[string]string `json:"taxonomy,omitempty"`
	Locations       []string          `json:"locations,omitempty"`
}

// UnmarshalJSON decodifica cada campo por separado: un campo con forma
// inesperada queda vacío en vez de invalidar el registro completo.
func (a *Animal) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*a = Animal{}
		return nil
	}

	out := Animal{
		Name:  rawText(raw["name"]),
		Emoji: rawText(raw["emoji"]),
		Fact:  rawText(raw["fact"]),
	}
	if v, ok := raw["characteristics"]; ok && !isNull(v) {
		out.Characteristics = &Characteristics{}
		_ = out.Characteristics.UnmarshalJSON(v)
	}
	if v, ok := raw["taxonomy"]; ok {
		var m map[string]any
		if json.Unmarshal(v, &m) == nil {
			for k, x := range m {
				if s, ok := text(x); ok {
					if out.Taxonomy == nil {
						out.Taxonomy = map[string]string{}
					}
					out.Taxonomy[k] = s
				}
			}
		}
	}
	if v, ok := raw["locations"]; ok {
		var list []any
		if json.Unmarshal(v, &list) == nil {
			for _, x := range list {
				if s, ok := text(x); ok {
					out.Locations = append(out.Locations, s)
				}
			}
		}
	}

	*a = out
	return nil
}

// text pasa escalares a string; objetos, arrays y null no tienen texto.
func text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64, bool, json.Number:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

func rawText(b json.RawMessage) string {
	if len(b) == 0 {
		return ""
	}
	var v any
	if json.Unmarshal(b, &v) != nil {
		return ""
	}
	s, _ := text(v)
	return s
}

func isNull(b json.RawMessage) bool {
	return len(bytes.TrimSpace(b)) == 0 || bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

// Habitat devuelve el hábitat o "" si no viene.
func (a Animal) Habitat() string {
	if a.Characteristics == nil {
		return ""
	}
	return a.Characteristics.Habitat
}

// Diet devuelve la dieta o "" si no viene.
func (a Animal) Diet() string {
	if a.Characteristics == nil {
		return ""
	}
	return a.Characteristics.Diet
}

// Origin indica de dónde salieron los animales de un FetchResult.
type Origin string

const (
	OriginRemote   Origin = "remote"
	OriginFallback Origin = "fallback"
)

// FallbackReason explica por qué se usó la lista local.
type FallbackReason string

const (
	ReasonNone          FallbackReason = ""
	ReasonNotConfigured FallbackReason = "not_configured"
	ReasonEmptyResults  FallbackReason = "empty_results"
	ReasonUpstreamError FallbackReason = "upstream_error"
)

// FetchResult es el resultado de FetchRandom: payload remoto o muestra local.
type FetchResult struct {
	Animals  []Animal
	Origin   Origin
	Reason   FallbackReason
	Attempts int
}
