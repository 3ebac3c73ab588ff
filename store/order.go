package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRow struct {
	ID        string
	StoreID   string
	IsPaid    bool
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []OrderItemRow
}

type OrderItemRow struct {
	ID        string
	OrderID   string
	ProductID string

	// Joined product fields, populated by the list queries.
	ProductName  string
	ProductPrice decimal.Decimal
}

const orderCols = `id, store_id, is_paid, phone, address, created_at, updated_at`

// CreateOrder inserts one unpaid order plus one order item per product id,
// all inside a single transaction.
func (s *PostgresStore) CreateOrder(storeID string, productIDs []string) (OrderRow, error) {
	var order OrderRow

	tx, err := s.DB.Begin()
	if err != nil {
		return order, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRow(
		`INSERT INTO orders (id, store_id, is_paid) VALUES ($1, $2, FALSE) RETURNING `+orderCols,
		uuid.NewString(), storeID,
	).Scan(&order.ID, &order.StoreID, &order.IsPaid, &order.Phone, &order.Address, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return order, err
	}

	stmt, err := tx.Prepare(`INSERT INTO order_items (id, order_id, product_id) VALUES ($1, $2, $3)`)
	if err != nil {
		return order, err
	}
	defer stmt.Close()

	for _, pid := range productIDs {
		item := OrderItemRow{ID: uuid.NewString(), OrderID: order.ID, ProductID: pid}
		if _, err := stmt.Exec(item.ID, item.OrderID, item.ProductID); err != nil {
			return order, err
		}
		order.Items = append(order.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return order, err
	}
	committed = true
	return order, nil
}

// DeleteOrder removes an order; its items go with it via ON DELETE CASCADE.
func (s *PostgresStore) DeleteOrder(id string) error {
	_, err := s.DB.Exec(`DELETE FROM orders WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) MarkOrderPaid(id, address, phone string) (OrderRow, error) {
	var order OrderRow
	err := s.DB.QueryRow(
		`UPDATE orders SET is_paid = TRUE, address = $2, phone = $3, updated_at = now() WHERE id = $1 RETURNING `+orderCols,
		id, address, phone,
	).Scan(&order.ID, &order.StoreID, &order.IsPaid, &order.Phone, &order.Address, &order.CreatedAt, &order.UpdatedAt)
	return order, err
}

func (s *PostgresStore) ListOrderProductIDs(orderID string) ([]string, error) {
	rows, err := s.DB.Query(`SELECT product_id FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListOrders(storeID string) ([]OrderRow, error) {
	return s.listOrders(storeID, false)
}

// ListPaidOrders returns paid orders with their items and joined product
// name/price, feeding the revenue aggregation.
func (s *PostgresStore) ListPaidOrders(storeID string) ([]OrderRow, error) {
	return s.listOrders(storeID, true)
}

func (s *PostgresStore) listOrders(storeID string, paidOnly bool) ([]OrderRow, error) {
	q := `SELECT o.id, o.store_id, o.is_paid, o.phone, o.address, o.created_at, o.updated_at,
	             oi.id, oi.product_id, p.name, p.price
	      FROM orders o
	      JOIN order_items oi ON oi.order_id = o.id
	      JOIN products p ON p.id = oi.product_id
	      WHERE o.store_id = $1`
	if paidOnly {
		q += ` AND o.is_paid = TRUE`
	}
	q += ` ORDER BY o.created_at DESC, oi.id`

	rows, err := s.DB.Query(q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []OrderRow{}
	index := map[string]int{}
	for rows.Next() {
		var o OrderRow
		var it OrderItemRow
		if err := rows.Scan(
			&o.ID, &o.StoreID, &o.IsPaid, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt,
			&it.ID, &it.ProductID, &it.ProductName, &it.ProductPrice,
		); err != nil {
			return nil, err
		}
		it.OrderID = o.ID
		i, ok := index[o.ID]
		if !ok {
			index[o.ID] = len(out)
			out = append(out, o)
			i = index[o.ID]
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountPaidOrders(storeID string) (int, error) {
	var n int
	err := s.DB.QueryRow(
		`SELECT COUNT(*) FROM orders WHERE store_id = $1 AND is_paid = TRUE`, storeID,
	).Scan(&n)
	return n, err
}
