package store

import "github.com/shopspring/decimal"

// Store is the persistence client the service layer depends on.
// Get lookups return (nil, nil) when nothing matches.
type Store interface {
	CreateStore(userID, name string) (StoreRow, error)
	GetStore(id string) (*StoreRow, error)
	GetStoreByUser(id, userID string) (*StoreRow, error)
	UpdateStore(id, name string) (StoreRow, error)
	DeleteStore(id string) (StoreRow, error)

	CreateBillboard(storeID, label, imageURL string) (BillboardRow, error)
	GetBillboard(id string) (*BillboardRow, error)
	ListBillboards(storeID string) ([]BillboardRow, error)
	UpdateBillboard(id, label, imageURL string) (BillboardRow, error)
	DeleteBillboard(id string) (BillboardRow, error)

	CreateCategory(storeID, billboardID, name string) (CategoryRow, error)
	GetCategory(id string) (*CategoryRow, error)
	ListCategories(storeID string) ([]CategoryRow, error)
	UpdateCategory(id, billboardID, name string) (CategoryRow, error)
	DeleteCategory(id string) (CategoryRow, error)

	CreateProduct(storeID, name string, price decimal.Decimal, isArchived bool) (ProductRow, error)
	GetProduct(id string) (*ProductRow, error)
	ListProducts(storeID string) ([]ProductRow, error)
	ListProductsByIDs(ids []string) ([]ProductRow, error)
	UpdateProduct(id, name string, price decimal.Decimal, isArchived bool) (ProductRow, error)
	DeleteProduct(id string) (ProductRow, error)
	ArchiveProducts(ids []string) error
	CountActiveProducts(storeID string) (int, error)

	CreateOrder(storeID string, productIDs []string) (OrderRow, error)
	DeleteOrder(id string) error
	MarkOrderPaid(id, address, phone string) (OrderRow, error)
	ListOrderProductIDs(orderID string) ([]string, error)
	ListOrders(storeID string) ([]OrderRow, error)
	ListPaidOrders(storeID string) ([]OrderRow, error)
	CountPaidOrders(storeID string) (int, error)

	Close() error
}

var _ Store = (*PostgresStore)(nil)
