package page

import (
	"context"
	"math/rand/v2"
	"sync"

	"animal-encyclopedia/internal/domain/animals"
	"animal-encyclopedia/internal/domain/cards"
	"animal-encyclopedia/internal/metrics"
	"animal-encyclopedia/internal/platform/logger"
)

// AnimalFetcher es lo que la página necesita de animals.Service.
type AnimalFetcher interface {
	FetchRandom(ctx context.Context, count int) (animals.FetchResult, error)
	FetchRandomStrict(ctx context.Context, count int) ([]animals.Animal, error)
}

type Options struct {
	// Count <= 0 => animals.DefaultCount (5).
	Count int
	Mode  animals.Mode

	// Decorate: color pastel + emoji por defecto. Confetti: efecto tras cargar.
	Decorate bool
	Confetti bool

	Logger logger.Logger
	Rand   *rand.Rand
}

type Controller struct {
	fetcher AnimalFetcher
	opts    Options
	log     logger.Logger

	mu  sync.Mutex // protege rng
	rng *rand.Rand
}

func NewController(f AnimalFetcher, opts Options) *Controller {
	if opts.Count <= 0 {
		opts.Count = animals.DefaultCount
	}
	if opts.Mode == "" {
		opts.Mode = animals.ModeFallback
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Controller{
		fetcher: f,
		opts:    opts,
		log:     log,
		rng:     rng,
	}
}

// Load ejecuta un ciclo de carga: deshabilita el disparador, pide los
// animales y arma la vista (tarjetas o mensaje de error). El disparador
// vuelve a idle en todos los casos.
func (c *Controller) Load(ctx context.Context, trig *Trigger) cards.View {
	if err := trig.Begin(); err != nil {
		return cards.View{Error: err.Error()}
	}
	defer func() { _ = trig.End() }()

	items, origin, err := c.fetch(ctx)
	if err != nil {
		c.log.Error("load animals failed", map[string]any{
			"mode":  string(c.opts.Mode),
			"error": err.Error(),
		})
		return cards.View{Error: err.Error()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	v := cards.View{
		Cards:  make([]cards.Card, 0, len(items)),
		Origin: string(origin),
	}
	for _, a := range items {
		v.Cards = append(v.Cards, cards.New(a, c.rng, c.opts.Decorate))
	}
	if c.opts.Confetti {
		v.Confetti = cards.NewConfetti(c.rng)
	}
	return v
}

func (c *Controller) fetch(ctx context.Context) ([]animals.Animal, animals.Origin, error) {
	if c.opts.Mode == animals.ModeStrict {
		items, err := c.fetcher.FetchRandomStrict(ctx, c.opts.Count)
		return items, animals.OriginRemote, err
	}

	res, err := c.fetcher.FetchRandom(ctx, c.opts.Count)
	if err != nil {
		return nil, "", err
	}
	return res.Animals, res.Origin, nil
}

func recordLoad(view string, v cards.View) {
	status := "ok"
	if v.Error != "" {
		status = "error"
	}
	metrics.PageLoads.WithLabelValues(view, status).Inc()
	metrics.CardsRendered.WithLabelValues(view).Add(float64(len(v.Cards)))
}
