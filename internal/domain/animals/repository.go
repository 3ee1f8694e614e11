package animals

import "context"

// Source es el upstream remoto (API Ninjas). ByName aplica el filtro "name".
type Source interface {
	ByName(ctx context.Context, name string) ([]Animal, error)
	IsConfigured() bool
}

// Catalog provee la lista local de fallback.
type Catalog interface {
	List(ctx context.Context) ([]Animal, error)
}

// LookupCache guarda respuestas no vacías por filtro.
// Un miss devuelve (nil, false, nil).
type LookupCache interface {
	Get(ctx context.Context, key string) ([]Animal, bool, error)
	Set(ctx context.Context, key string, items []Animal) error
}
