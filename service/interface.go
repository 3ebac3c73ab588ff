package service

import "github.com/shopspring/decimal"

// ServiceInterface is what the HTTP layer depends on.
type ServiceInterface interface {
	CreateStore(userID, name string) (StoreDTO, error)
	GetStore(storeID string) (*StoreDTO, error)
	UpdateStore(userID, storeID, name string) (StoreDTO, error)
	DeleteStore(userID, storeID string) (StoreDTO, error)

	CreateBillboard(userID, storeID, label, imageURL string) (BillboardDTO, error)
	GetBillboard(billboardID string) (*BillboardDTO, error)
	ListBillboards(storeID string) ([]BillboardDTO, error)
	UpdateBillboard(userID, storeID, billboardID, label, imageURL string) (BillboardDTO, error)
	DeleteBillboard(userID, storeID, billboardID string) (BillboardDTO, error)

	CreateCategory(userID, storeID, name, billboardID string) (CategoryDTO, error)
	GetCategory(categoryID string) (*CategoryDTO, error)
	ListCategories(storeID string) ([]CategoryDTO, error)
	UpdateCategory(userID, storeID, categoryID, name, billboardID string) (CategoryDTO, error)
	DeleteCategory(userID, storeID, categoryID string) (CategoryDTO, error)

	CreateProduct(userID, storeID string, in ProductInput) (ProductDTO, error)
	GetProduct(productID string) (*ProductDTO, error)
	ListProducts(storeID string) ([]ProductDTO, error)
	UpdateProduct(userID, storeID, productID string, in ProductInput) (ProductDTO, error)
	DeleteProduct(userID, storeID, productID string) (ProductDTO, error)

	ListOrders(storeID string) ([]OrderDTO, error)

	Checkout(storeID string, productIDs []string) (string, error)
	ConfirmCheckout(payload []byte, signature string) error

	SalesCount(storeID string) (int, error)
	StockCount(storeID string) (int, error)
	TotalRevenue(storeID string) (decimal.Decimal, error)
}

var _ ServiceInterface = (*Service)(nil)
