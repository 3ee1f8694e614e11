package animals

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"animal-encyclopedia/internal/metrics"
	"animal-encyclopedia/internal/platform/logger"
)

const (
	DefaultMaxAttempts = 5
	DefaultCount       = 5
)

var (
	ErrNoSource = errors.New("animals source not configured")
)

type Options struct {
	// MaxAttempts <= 0 => DefaultMaxAttempts.
	MaxAttempts int

	Cache  LookupCache // opcional
	Logger logger.Logger

	// Rand permite fijar la semilla en tests.
	Rand *rand.Rand
}

type Service struct {
	source  Source
	catalog Catalog
	cache   LookupCache
	log     logger.Logger

	maxAttempts int

	mu  sync.Mutex // protege rng
	rng *rand.Rand

	now func() time.Time
}

func NewService(source Source, catalog Catalog, opts Options) *Service {
	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Service{
		source:      source,
		catalog:     catalog,
		cache:       opts.Cache,
		log:         log,
		maxAttempts: attempts,
		rng:         rng,
		now:         time.Now,
	}
}

// FetchRandom devuelve hasta count animales.
// Con source configurado intenta hasta maxAttempts letras al azar y corta en
// el primer resultado no vacío. Error upstream, todo vacío o sin API key =>
// muestra de la lista local. Solo falla si el catálogo local falla.
func (s *Service) FetchRandom(ctx context.Context, count int) (FetchResult, error) {
	if s.source == nil || !s.source.IsConfigured() {
		return s.fallback(ctx, count, ReasonNotConfigured, 0)
	}

	items, attempts, err := s.lookup(ctx)
	if err != nil {
		s.log.Warn("API request failed, falling back to sample animals", map[string]any{
			"error":    err.Error(),
			"attempts": attempts,
		})
		return s.fallback(ctx, count, ReasonUpstreamError, attempts)
	}
	if len(items) == 0 {
		s.log.Info("API returned no animals, falling back to sample animals", map[string]any{
			"attempts": attempts,
		})
		return s.fallback(ctx, count, ReasonEmptyResults, attempts)
	}

	return FetchResult{
		Animals:  truncate(items, count),
		Origin:   OriginRemote,
		Reason:   ReasonNone,
		Attempts: attempts,
	}, nil
}

// FetchRandomStrict es la variante sin fallback ni chequeo de API key.
// Los errores se propagan; si el último intento viene vacío se devuelve vacío.
func (s *Service) FetchRandomStrict(ctx context.Context, count int) ([]Animal, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}

	items, _, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}
	return truncate(items, count), nil
}

// Samples devuelve el catálogo local completo.
func (s *Service) Samples(ctx context.Context) ([]Animal, error) {
	if s.catalog == nil {
		return SampleAnimals, nil
	}
	return s.catalog.List(ctx)
}

func (s *Service) lookup(ctx context.Context) ([]Animal, int, error) {
	var (
		items    []Animal
		attempts int
	)

	start := s.now()
	defer func() {
		metrics.FetchDuration.Observe(s.now().Sub(start).Seconds())
		metrics.FetchAttempts.Observe(float64(attempts))
	}()

	for attempts < s.maxAttempts && len(items) == 0 {
		attempts++

		letter := s.letter()
		got, err := s.byName(ctx, letter)
		if err != nil {
			return nil, attempts, fmt.Errorf("attempt %d (name=%s): %w", attempts, letter, err)
		}

		s.log.Debug("animals lookup", map[string]any{
			"attempt": attempts,
			"name":    letter,
			"results": len(got),
		})
		items = got
	}

	return items, attempts, nil
}

func (s *Service) byName(ctx context.Context, name string) ([]Animal, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, name)
		if err != nil {
			s.log.Warn("lookup cache get failed", map[string]any{"name": name, "error": err.Error()})
		} else if ok && len(cached) > 0 {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	// UpstreamRequests cuenta solo llamadas reales (no hits de cache).
	items, err := s.source.ByName(ctx, name)
	switch {
	case err != nil:
		metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return nil, err
	case len(items) == 0:
		metrics.UpstreamRequests.WithLabelValues("empty").Inc()
	default:
		metrics.UpstreamRequests.WithLabelValues("ok").Inc()
	}

	if s.cache != nil && len(items) > 0 {
		if err := s.cache.Set(ctx, name, items); err != nil {
			s.log.Warn("lookup cache set failed", map[string]any{"name": name, "error": err.Error()})
		}
	}
	return items, nil
}

func (s *Service) fallback(ctx context.Context, count int, reason FallbackReason, attempts int) (FetchResult, error) {
	list, err := s.Samples(ctx)
	if err != nil {
		return FetchResult{}, fmt.Errorf("load sample catalog: %w", err)
	}

	metrics.Fallbacks.WithLabelValues(string(reason)).Inc()

	s.mu.Lock()
	picked := Sample(s.rng, list, count)
	s.mu.Unlock()

	return FetchResult{
		Animals:  picked,
		Origin:   OriginFallback,
		Reason:   reason,
		Attempts: attempts,
	}, nil
}

func (s *Service) letter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RandomLetter(s.rng)
}

func truncate(items []Animal, count int) []Animal {
	if count <= 0 || len(items) == 0 {
		return []Animal{}
	}
	if len(items) > count {
		return items[:count]
	}
	return items
}
