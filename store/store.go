package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// StoreRow is the tenancy root: every other entity hangs off one store.
type StoreRow struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostgresStore is a Store backed by Postgres.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) Close() error { return s.DB.Close() }

const storeCols = `id, user_id, name, created_at, updated_at`

func (s *PostgresStore) scanStore(r *sql.Row) (StoreRow, error) {
	var row StoreRow
	err := r.Scan(&row.ID, &row.UserID, &row.Name, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

func (s *PostgresStore) CreateStore(userID, name string) (StoreRow, error) {
	return s.scanStore(s.DB.QueryRow(
		`INSERT INTO stores (id, user_id, name) VALUES ($1, $2, $3) RETURNING `+storeCols,
		uuid.NewString(), userID, name,
	))
}

// GetStore returns nil with no error when the id matches nothing.
func (s *PostgresStore) GetStore(id string) (*StoreRow, error) {
	row, err := s.scanStore(s.DB.QueryRow(
		`SELECT `+storeCols+` FROM stores WHERE id = $1`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetStoreByUser is the ownership lookup: store id and owning user must both match.
func (s *PostgresStore) GetStoreByUser(id, userID string) (*StoreRow, error) {
	row, err := s.scanStore(s.DB.QueryRow(
		`SELECT `+storeCols+` FROM stores WHERE id = $1 AND user_id = $2`, id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *PostgresStore) UpdateStore(id, name string) (StoreRow, error) {
	return s.scanStore(s.DB.QueryRow(
		`UPDATE stores SET name = $2, updated_at = now() WHERE id = $1 RETURNING `+storeCols,
		id, name,
	))
}

func (s *PostgresStore) DeleteStore(id string) (StoreRow, error) {
	return s.scanStore(s.DB.QueryRow(
		`DELETE FROM stores WHERE id = $1 RETURNING `+storeCols, id,
	))
}
