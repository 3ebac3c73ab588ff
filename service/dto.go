package service

import (
	"time"

	"commerce-admin/store"

	"github.com/shopspring/decimal"
)

type StoreDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BillboardDTO struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryDTO struct {
	ID          string        `json:"id"`
	StoreID     string        `json:"storeId"`
	BillboardID string        `json:"billboardId"`
	Name        string        `json:"name"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Billboard   *BillboardDTO `json:"billboard,omitempty"`
}

type ProductDTO struct {
	ID         string          `json:"id"`
	StoreID    string          `json:"storeId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	IsArchived bool            `json:"isArchived"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type OrderItemDTO struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"orderId"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName,omitempty"`
	ProductPrice decimal.Decimal `json:"productPrice"`
}

type OrderDTO struct {
	ID        string         `json:"id"`
	StoreID   string         `json:"storeId"`
	IsPaid    bool           `json:"isPaid"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Items     []OrderItemDTO `json:"orderItems"`
}

// OverviewDTO bundles the three dashboard aggregations.
type OverviewDTO struct {
	SalesCount   int             `json:"salesCount"`
	StockCount   int             `json:"stockCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

func toStoreDTO(r store.StoreRow) StoreDTO {
	return StoreDTO{ID: r.ID, UserID: r.UserID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func toBillboardDTO(r store.BillboardRow) BillboardDTO {
	return BillboardDTO{ID: r.ID, StoreID: r.StoreID, Label: r.Label, ImageURL: r.ImageURL, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func toCategoryDTO(r store.CategoryRow) CategoryDTO {
	dto := CategoryDTO{
		ID:          r.ID,
		StoreID:     r.StoreID,
		BillboardID: r.BillboardID,
		Name:        r.Name,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Billboard != nil {
		b := toBillboardDTO(*r.Billboard)
		dto.Billboard = &b
	}
	return dto
}

func toProductDTO(r store.ProductRow) ProductDTO {
	return ProductDTO{
		ID:         r.ID,
		StoreID:    r.StoreID,
		Name:       r.Name,
		Price:      r.Price,
		IsArchived: r.IsArchived,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toOrderDTO(r store.OrderRow) OrderDTO {
	dto := OrderDTO{
		ID:        r.ID,
		StoreID:   r.StoreID,
		IsPaid:    r.IsPaid,
		Phone:     r.Phone,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Items:     make([]OrderItemDTO, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:           it.ID,
			OrderID:      it.OrderID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductPrice: it.ProductPrice,
		})
	}
	return dto
}
