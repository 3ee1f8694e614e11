package memory

import (
	"context"
	"sync"

	"animal-encyclopedia/internal/domain/animals"
)

type catalogRepo struct {
	mu    sync.RWMutex
	items []animals.Animal
}

// NewCatalogRepo devuelve el catálogo local. Sin items usa animals.SampleAnimals.
func NewCatalogRepo(items ...animals.Animal) animals.Catalog {
	if len(items) == 0 {
		items = animals.SampleAnimals
	}
	cp := make([]animals.Animal, len(items))
	copy(cp, items)
	return &catalogRepo{items: cp}
}

func (r *catalogRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, len(r.items))
	copy(out, r.items)
	return out, nil
}
