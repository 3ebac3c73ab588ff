package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductRow struct {
	ID         string
	StoreID    string
	Name       string
	Price      decimal.Decimal
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const productCols = `id, store_id, name, price, is_archived, created_at, updated_at`

func (s *PostgresStore) scanProduct(r *sql.Row) (ProductRow, error) {
	var row ProductRow
	err := r.Scan(&row.ID, &row.StoreID, &row.Name, &row.Price, &row.IsArchived, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

func (s *PostgresStore) CreateProduct(storeID, name string, price decimal.Decimal, isArchived bool) (ProductRow, error) {
	return s.scanProduct(s.DB.QueryRow(
		`INSERT INTO products (id, store_id, name, price, is_archived) VALUES ($1, $2, $3, $4, $5) RETURNING `+productCols,
		uuid.NewString(), storeID, name, price, isArchived,
	))
}

func (s *PostgresStore) GetProduct(id string) (*ProductRow, error) {
	row, err := s.scanProduct(s.DB.QueryRow(
		`SELECT `+productCols+` FROM products WHERE id = $1`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *PostgresStore) ListProducts(storeID string) ([]ProductRow, error) {
	rows, err := s.DB.Query(
		`SELECT `+productCols+` FROM products WHERE store_id = $1 ORDER BY created_at DESC`, storeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListProductsByIDs fetches the products matching the given ids; ids with no
// matching row are simply absent from the result.
func (s *PostgresStore) ListProductsByIDs(ids []string) ([]ProductRow, error) {
	rows, err := s.DB.Query(
		`SELECT `+productCols+` FROM products WHERE id = ANY($1)`, pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]ProductRow, error) {
	out := []ProductRow{}
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateProduct(id, name string, price decimal.Decimal, isArchived bool) (ProductRow, error) {
	return s.scanProduct(s.DB.QueryRow(
		`UPDATE products SET name = $2, price = $3, is_archived = $4, updated_at = now() WHERE id = $1 RETURNING `+productCols,
		id, name, price, isArchived,
	))
}

func (s *PostgresStore) DeleteProduct(id string) (ProductRow, error) {
	return s.scanProduct(s.DB.QueryRow(
		`DELETE FROM products WHERE id = $1 RETURNING `+productCols, id,
	))
}

// ArchiveProducts flips is_archived for all given ids, used after a paid checkout.
func (s *PostgresStore) ArchiveProducts(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.DB.Exec(
		`UPDATE products SET is_archived = TRUE, updated_at = now() WHERE id = ANY($1)`, pq.Array(ids),
	)
	return err
}

// CountActiveProducts counts the store's unarchived products.
func (s *PostgresStore) CountActiveProducts(storeID string) (int, error) {
	var n int
	err := s.DB.QueryRow(
		`SELECT COUNT(*) FROM products WHERE store_id = $1 AND is_archived = FALSE`, storeID,
	).Scan(&n)
	return n, err
}
