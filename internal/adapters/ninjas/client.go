package ninjas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"animal-encyclopedia/internal/domain/animals"
	"animal-encyclopedia/internal/platform/httpclient"
)

const (
	DefaultBaseURL = "https://api.api-ninjas.com"
	animalsPath    = "/v1/animals"
)

var (
	ErrNinjasUnauthorized = errors.New("api-ninjas unauthorized")
	ErrNinjasUpstream     = errors.New("api-ninjas upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client consulta GET /v1/animals?name=<filtro>.
// Implementa animals.Source.
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout, cfg.Transport)
	if err != nil {
		return nil, fmt.Errorf("api-ninjas: %w", err)
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

// IsConfigured indica si hay API key. Sin key la variante con fallback
// ni siquiera llama a la API.
func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// ByName busca animales cuyo nombre contiene name.
// La key se manda solo si existe (la variante estricta llama igual).
func (c *Client) ByName(ctx context.Context, name string) ([]animals.Animal, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil client", ErrNinjasUpstream)
	}

	// Registro por registro: uno con forma rara no descarta el lote.
	var raw []json.RawMessage
	err := c.http.GetJSON(ctx, animalsPath,
		url.Values{"name": {name}},
		map[string]string{c.apiKeyHeader: c.apiKey},
		&raw,
	)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("%w: %v", ErrNinjasUnauthorized, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrNinjasUpstream, err)
		}
	}
	out := make([]animals.Animal, 0, len(raw))
	for _, rec := range raw {
		var a animals.Animal
		_ = json.Unmarshal(rec, &a)
		out = append(out, a)
	}
	return out, nil
}
