package postgres

import (
	"context"
	"database/sql"
	"errors"

	"animal-encyclopedia/internal/domain/animals"
)

var (
	ErrEmptyCatalog = errors.New("sample catalog is empty")
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, emoji, habitat, diet, fact
		FROM sample_animals
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0, 8)
	for rows.Next() {
		var a animals.Animal
		var habitat, diet string
		if err := rows.Scan(&a.Name, &a.Emoji, &habitat, &diet, &a.Fact); err != nil {
			return nil, err
		}
		if habitat != "" || diet != "" {
			a.Characteristics = &animals.Characteristics{Habitat: habitat, Diet: diet}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}
