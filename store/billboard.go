package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type BillboardRow struct {
	ID        string
	StoreID   string
	Label     string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const billboardCols = `id, store_id, label, image_url, created_at, updated_at`

func (s *PostgresStore) scanBillboard(r *sql.Row) (BillboardRow, error) {
	var row BillboardRow
	err := r.Scan(&row.ID, &row.StoreID, &row.Label, &row.ImageURL, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

func (s *PostgresStore) CreateBillboard(storeID, label, imageURL string) (BillboardRow, error) {
	return s.scanBillboard(s.DB.QueryRow(
		`INSERT INTO billboards (id, store_id, label, image_url) VALUES ($1, $2, $3, $4) RETURNING `+billboardCols,
		uuid.NewString(), storeID, label, imageURL,
	))
}

func (s *PostgresStore) GetBillboard(id string) (*BillboardRow, error) {
	row, err := s.scanBillboard(s.DB.QueryRow(
		`SELECT `+billboardCols+` FROM billboards WHERE id = $1`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *PostgresStore) ListBillboards(storeID string) ([]BillboardRow, error) {
	rows, err := s.DB.Query(
		`SELECT `+billboardCols+` FROM billboards WHERE store_id = $1 ORDER BY created_at DESC`, storeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []BillboardRow{}
	for rows.Next() {
		var b BillboardRow
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateBillboard(id, label, imageURL string) (BillboardRow, error) {
	return s.scanBillboard(s.DB.QueryRow(
		`UPDATE billboards SET label = $2, image_url = $3, updated_at = now() WHERE id = $1 RETURNING `+billboardCols,
		id, label, imageURL,
	))
}

func (s *PostgresStore) DeleteBillboard(id string) (BillboardRow, error) {
	return s.scanBillboard(s.DB.QueryRow(
		`DELETE FROM billboards WHERE id = $1 RETURNING `+billboardCols, id,
	))
}
