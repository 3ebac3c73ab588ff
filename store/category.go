package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type CategoryRow struct {
	ID          string
	StoreID     string
	BillboardID string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Billboard is populated only by GetCategory.
	Billboard *BillboardRow
}

const categoryCols = `id, store_id, billboard_id, name, created_at, updated_at`

func (s *PostgresStore) scanCategory(r *sql.Row) (CategoryRow, error) {
	var row CategoryRow
	err := r.Scan(&row.ID, &row.StoreID, &row.BillboardID, &row.Name, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

func (s *PostgresStore) CreateCategory(storeID, billboardID, name string) (CategoryRow, error) {
	return s.scanCategory(s.DB.QueryRow(
		`INSERT INTO categories (id, store_id, billboard_id, name) VALUES ($1, $2, $3, $4) RETURNING `+categoryCols,
		uuid.NewString(), storeID, billboardID, name,
	))
}

// GetCategory fetches one category together with its billboard.
func (s *PostgresStore) GetCategory(id string) (*CategoryRow, error) {
	var c CategoryRow
	var b BillboardRow
	err := s.DB.QueryRow(
		`SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		        b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
		 FROM categories c
		 JOIN billboards b ON b.id = c.billboard_id
		 WHERE c.id = $1`, id,
	).Scan(
		&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Billboard = &b
	return &c, nil
}

func (s *PostgresStore) ListCategories(storeID string) ([]CategoryRow, error) {
	rows, err := s.DB.Query(
		`SELECT `+categoryCols+` FROM categories WHERE store_id = $1 ORDER BY created_at DESC`, storeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []CategoryRow{}
	for rows.Next() {
		var c CategoryRow
		if err := rows.Scan(&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateCategory(id, billboardID, name string) (CategoryRow, error) {
	return s.scanCategory(s.DB.QueryRow(
		`UPDATE categories SET billboard_id = $2, name = $3, updated_at = now() WHERE id = $1 RETURNING `+categoryCols,
		id, billboardID, name,
	))
}

func (s *PostgresStore) DeleteCategory(id string) (CategoryRow, error) {
	return s.scanCategory(s.DB.QueryRow(
		`DELETE FROM categories WHERE id = $1 RETURNING `+categoryCols, id,
	))
}
