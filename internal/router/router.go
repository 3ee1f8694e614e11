package router

import (
	"database/sql"
	"errors"
	"math/rand/v2"
	"net/http"

	"animal-encyclopedia/docs"
	"animal-encyclopedia/internal/adapters/ninjas"
	mem "animal-encyclopedia/internal/adapters/storage/memory"
	pg "animal-encyclopedia/internal/adapters/storage/postgres"
	rds "animal-encyclopedia/internal/adapters/storage/redis"
	"animal-encyclopedia/internal/config"
	"animal-encyclopedia/internal/domain/animals"
	"animal-encyclopedia/internal/domain/page"
	"animal-encyclopedia/internal/middleware"
	"animal-encyclopedia/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// nil => config.Defaults().
	Config *config.Config
	Logger logger.Logger

	// Opcional: si viene, el catálogo sale de Postgres. Si no, se intenta
	// con Config.Storage.DatabaseDSN y si no, in-memory.
	DB *sql.DB

	// Overrides para tests.
	Source animals.Source
	Cache  animals.LookupCache
	Rand   *rand.Rand
}

// NewRouter arma el handler. La func devuelta libera lo que el router abrió por su
// cuenta (Postgres, Redis); lo que viene en Options queda a cargo del caller.
func NewRouter(opts Options) (http.Handler, func() error) {
	cfg := opts.Config
	if cfg == nil {
		d := config.Defaults()
		cfg = &d
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	source := opts.Source
	if source == nil {
		client, err := ninjas.NewClient(ninjas.Config{
			BaseURL: cfg.Ninjas.BaseURL,
			APIKey:  cfg.Ninjas.APIKey,
			Timeout: cfg.Ninjas.Timeout,
		})
		if err != nil {
			log.Error("api-ninjas client disabled", map[string]any{"error": err.Error()})
		} else {
			source = client
		}
	}

	var res resources
	svc := animals.NewService(source, newCatalog(opts, cfg, log, &res), animals.Options{
		MaxAttempts: cfg.Fetch.MaxAttempts,
		Cache:       newCache(opts, cfg, log, &res),
		Logger:      log.With(map[string]any{"component": "animals"}),
		Rand:        opts.Rand,
	})

	mode, err := animals.ParseMode(cfg.Fetch.Mode)
	if err != nil {
		mode = animals.ModeFallback
	}
	ctrl := page.NewController(svc, page.Options{
		Count:    cfg.Fetch.Count,
		Mode:     mode,
		Decorate: cfg.Page.Decorate,
		Confetti: cfg.Page.Confetti,
		Logger:   log.With(map[string]any{"component": "page"}),
		Rand:     derive(opts.Rand),
	})

	animals.RegisterRoutes(r, svc)
	page.RegisterRoutes(r, ctrl)

	return r, res.Close
}

// resources acumula los Close de lo abierto en NewRouter.
type resources []func() error

func (rs *resources) add(fn func() error) { *rs = append(*rs, fn) }

// Close cierra en orden inverso y junta los errores.
func (rs *resources) Close() error {
	var errs []error
	for i := len(*rs) - 1; i >= 0; i-- {
		if err := (*rs)[i](); err != nil {
			errs = append(errs, err)
		}
	}
	*rs = nil
	return errors.Join(errs...)
}

func newCatalog(opts Options, cfg *config.Config, log logger.Logger, res *resources) animals.Catalog {
	db := opts.DB
	if db == nil && cfg.Storage.DatabaseDSN != "" {
		opened, err := pg.Open(cfg.Storage.DatabaseDSN)
		if err != nil {
			log.Warn("postgres unavailable, using built-in samples", map[string]any{"error": err.Error()})
		} else if err := pg.Migrate(opened); err != nil {
			log.Warn("catalog migration failed, using built-in samples", map[string]any{"error": err.Error()})
			_ = opened.Close()
		} else {
			db = opened
			res.add(opened.Close)
		}
	}

	if db != nil {
		return pg.NewCatalogRepo(db)
	}
	return mem.NewCatalogRepo()
}

func newCache(opts Options, cfg *config.Config, log logger.Logger, res *resources) animals.LookupCache {
	if opts.Cache != nil {
		return opts.Cache
	}
	if cfg.Storage.CacheTTL <= 0 {
		return nil
	}
	if cfg.Storage.RedisURL != "" {
		c, err := rds.Open(rds.Config{
			URL:      cfg.Storage.RedisURL,
			Password: cfg.Storage.RedisPassword,
			TTL:      cfg.Storage.CacheTTL,
		})
		if err == nil {
			res.add(c.Close)
			return c
		}
		log.Warn("redis unavailable, using in-memory lookup cache", map[string]any{"error": err.Error()})
	}
	return mem.NewLookupCache(cfg.Storage.CacheTTL)
}

// derive separa el rng de la página del de animals (cada uno con su lock).
func derive(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return nil
	}
	return rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
}
