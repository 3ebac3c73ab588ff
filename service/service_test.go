package service

import (
	"errors"
	"testing"

	"commerce-admin/store"

	"github.com/shopspring/decimal"
)

// fakeStore implements store.Store with per-method function fields.
type fakeStore struct {
	CreateStoreFn    func(userID, name string) (store.StoreRow, error)
	GetStoreFn       func(id string) (*store.StoreRow, error)
	GetStoreByUserFn func(id, userID string) (*store.StoreRow, error)
	UpdateStoreFn    func(id, name string) (store.StoreRow, error)
	DeleteStoreFn    func(id string) (store.StoreRow, error)

	CreateBillboardFn func(storeID, label, imageURL string) (store.BillboardRow, error)
	GetBillboardFn    func(id string) (*store.BillboardRow, error)
	ListBillboardsFn  func(storeID string) ([]store.BillboardRow, error)
	UpdateBillboardFn func(id, label, imageURL string) (store.BillboardRow, error)
	DeleteBillboardFn func(id string) (store.BillboardRow, error)

	CreateCategoryFn func(storeID, billboardID, name string) (store.CategoryRow, error)
	GetCategoryFn    func(id string) (*store.CategoryRow, error)
	ListCategoriesFn func(storeID string) ([]store.CategoryRow, error)
	UpdateCategoryFn func(id, billboardID, name string) (store.CategoryRow, error)
	DeleteCategoryFn func(id string) (store.CategoryRow, error)

	CreateProductFn       func(storeID, name string, price decimal.Decimal, isArchived bool) (store.ProductRow, error)
	GetProductFn          func(id string) (*store.ProductRow, error)
	ListProductsFn        func(storeID string) ([]store.ProductRow, error)
	ListProductsByIDsFn   func(ids []string) ([]store.ProductRow, error)
	UpdateProductFn       func(id, name string, price decimal.Decimal, isArchived bool) (store.ProductRow, error)
	DeleteProductFn       func(id string) (store.ProductRow, error)
	ArchiveProductsFn     func(ids []string) error
	CountActiveProductsFn func(storeID string) (int, error)

	CreateOrderFn         func(storeID string, productIDs []string) (store.OrderRow, error)
	DeleteOrderFn         func(id string) error
	MarkOrderPaidFn       func(id, address, phone string) (store.OrderRow, error)
	ListOrderProductIDsFn func(orderID string) ([]string, error)
	ListOrdersFn          func(storeID string) ([]store.OrderRow, error)
	ListPaidOrdersFn      func(storeID string) ([]store.OrderRow, error)
	CountPaidOrdersFn     func(storeID string) (int, error)
}

func (f *fakeStore) CreateStore(userID, name string) (store.StoreRow, error) {
	return f.CreateStoreFn(userID, name)
}
func (f *fakeStore) GetStore(id string) (*store.StoreRow, error) { return f.GetStoreFn(id) }
func (f *fakeStore) GetStoreByUser(id, userID string) (*store.StoreRow, error) {
	return f.GetStoreByUserFn(id, userID)
}
func (f *fakeStore) UpdateStore(id, name string) (store.StoreRow, error) {
	return f.UpdateStoreFn(id, name)
}
func (f *fakeStore) DeleteStore(id string) (store.StoreRow, error) { return f.DeleteStoreFn(id) }

func (f *fakeStore) CreateBillboard(storeID, label, imageURL string) (store.BillboardRow, error) {
	return f.CreateBillboardFn(storeID, label, imageURL)
}
func (f *fakeStore) GetBillboard(id string) (*store.BillboardRow, error) {
	return f.GetBillboardFn(id)
}
func (f *fakeStore) ListBillboards(storeID string) ([]store.BillboardRow, error) {
	return f.ListBillboardsFn(storeID)
}
func (f *fakeStore) UpdateBillboard(id, label, imageURL string) (store.BillboardRow, error) {
	return f.UpdateBillboardFn(id, label, imageURL)
}
func (f *fakeStore) DeleteBillboard(id string) (store.BillboardRow, error) {
	return f.DeleteBillboardFn(id)
}

func (f *fakeStore) CreateCategory(storeID, billboardID, name string) (store.CategoryRow, error) {
	return f.CreateCategoryFn(storeID, billboardID, name)
}
func (f *fakeStore) GetCategory(id string) (*store.CategoryRow, error) { return f.GetCategoryFn(id) }
func (f *fakeStore) ListCategories(storeID string) ([]store.CategoryRow, error) {
	return f.ListCategoriesFn(storeID)
}
func (f *fakeStore) UpdateCategory(id, billboardID, name string) (store.CategoryRow, error) {
	return f.UpdateCategoryFn(id, billboardID, name)
}
func (f *fakeStore) DeleteCategory(id string) (store.CategoryRow, error) {
	return f.DeleteCategoryFn(id)
}

func (f *fakeStore) CreateProduct(storeID, name string, price decimal.Decimal, isArchived bool) (store.ProductRow, error) {
	return f.CreateProductFn(storeID, name, price, isArchived)
}
func (f *fakeStore) GetProduct(id string) (*store.ProductRow, error) { return f.GetProductFn(id) }
func (f *fakeStore) ListProducts(storeID string) ([]store.ProductRow, error) {
	return f.ListProductsFn(storeID)
}
func (f *fakeStore) ListProductsByIDs(ids []string) ([]store.ProductRow, error) {
	return f.ListProductsByIDsFn(ids)
}
func (f *fakeStore) UpdateProduct(id, name string, price decimal.Decimal, isArchived bool) (store.ProductRow, error) {
	return f.UpdateProductFn(id, name, price, isArchived)
}
func (f *fakeStore) DeleteProduct(id string) (store.ProductRow, error) {
	return f.DeleteProductFn(id)
}
func (f *fakeStore) ArchiveProducts(ids []string) error { return f.ArchiveProductsFn(ids) }
func (f *fakeStore) CountActiveProducts(storeID string) (int, error) {
	return f.CountActiveProductsFn(storeID)
}

func (f *fakeStore) CreateOrder(storeID string, productIDs []string) (store.OrderRow, error) {
	return f.CreateOrderFn(storeID, productIDs)
}
func (f *fakeStore) DeleteOrder(id string) error { return f.DeleteOrderFn(id) }
func (f *fakeStore) MarkOrderPaid(id, address, phone string) (store.OrderRow, error) {
	return f.MarkOrderPaidFn(id, address, phone)
}
func (f *fakeStore) ListOrderProductIDs(orderID string) ([]string, error) {
	return f.ListOrderProductIDsFn(orderID)
}
func (f *fakeStore) ListOrders(storeID string) ([]store.OrderRow, error) {
	return f.ListOrdersFn(storeID)
}
func (f *fakeStore) ListPaidOrders(storeID string) ([]store.OrderRow, error) {
	return f.ListPaidOrdersFn(storeID)
}
func (f *fakeStore) CountPaidOrders(storeID string) (int, error) {
	return f.CountPaidOrdersFn(storeID)
}
func (f *fakeStore) Close() error { return nil }

// ownedBy returns an ownership lookup that matches one user.
func ownedBy(userID string) func(id, uid string) (*store.StoreRow, error) {
	return func(id, uid string) (*store.StoreRow, error) {
		if uid == userID {
			return &store.StoreRow{ID: id, UserID: uid}, nil
		}
		return nil, nil
	}
}

// ---- Tests ----

func TestCreateCategoryPreconditionOrder(t *testing.T) {
	created := false
	fs := &fakeStore{
		GetStoreByUserFn: ownedBy("user-1"),
		CreateCategoryFn: func(storeID, billboardID, name string) (store.CategoryRow, error) {
			created = true
			return store.CategoryRow{ID: "cat-1", StoreID: storeID, BillboardID: billboardID, Name: name}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	// Unauthenticated wins even when fields are also missing.
	if _, err := svc.CreateCategory("", "store-1", "", ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	// Fields checked before ownership.
	var mf *MissingFieldError
	if _, err := svc.CreateCategory("user-2", "store-1", "", "bb-1"); !errors.As(err, &mf) || mf.Field != "Name" {
		t.Fatalf("expected missing Name, got %v", err)
	}
	if _, err := svc.CreateCategory("user-2", "store-1", "Shoes", ""); !errors.As(err, &mf) || mf.Field != "Billboard id" {
		t.Fatalf("expected missing Billboard id, got %v", err)
	}

	// Non-owner blocked, no mutation.
	if _, err := svc.CreateCategory("user-2", "store-1", "Shoes", "bb-1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if created {
		t.Fatalf("store mutation must not run for a rejected request")
	}

	// Owner succeeds.
	dto, err := svc.CreateCategory("user-1", "store-1", "Shoes", "bb-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created || dto.Name != "Shoes" || dto.BillboardID != "bb-1" {
		t.Fatalf("unexpected category: %+v", dto)
	}
}

func TestDeleteBillboardOwnershipBlocksMutation(t *testing.T) {
	deleted := false
	fs := &fakeStore{
		GetStoreByUserFn: ownedBy("owner"),
		DeleteBillboardFn: func(id string) (store.BillboardRow, error) {
			deleted = true
			return store.BillboardRow{ID: id, Label: "old"}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	if _, err := svc.DeleteBillboard("intruder", "store-1", "bb-1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if deleted {
		t.Fatalf("delete must not run for a non-owner")
	}

	dto, err := svc.DeleteBillboard("owner", "store-1", "bb-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Label != "old" {
		t.Fatalf("expected prior state back, got %+v", dto)
	}
}

func TestUpdateProductValidation(t *testing.T) {
	fs := &fakeStore{
		GetStoreByUserFn: ownedBy("user-1"),
		UpdateProductFn: func(id, name string, price decimal.Decimal, isArchived bool) (store.ProductRow, error) {
			return store.ProductRow{ID: id, Name: name, Price: price, IsArchived: isArchived}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	var mf *MissingFieldError
	in := ProductInput{Name: "Sneaker"}
	if _, err := svc.UpdateProduct("user-1", "store-1", "p-1", in); !errors.As(err, &mf) || mf.Field != "Price" {
		t.Fatalf("expected missing Price, got %v", err)
	}

	in.Price = decimal.RequireFromString("49.99")
	dto, err := svc.UpdateProduct("user-1", "store-1", "p-1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dto.Price.Equal(in.Price) {
		t.Fatalf("unexpected product: %+v", dto)
	}
}

func TestGetProductAbsentReturnsNil(t *testing.T) {
	fs := &fakeStore{
		GetProductFn: func(id string) (*store.ProductRow, error) { return nil, nil },
	}
	svc := NewService(fs, nil, Config{})

	dto, err := svc.GetProduct("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto != nil {
		t.Fatalf("expected nil for absent product, got %+v", dto)
	}
}

func TestGetCategoryIncludesBillboard(t *testing.T) {
	fs := &fakeStore{
		GetCategoryFn: func(id string) (*store.CategoryRow, error) {
			return &store.CategoryRow{
				ID: id, StoreID: "store-1", BillboardID: "bb-1", Name: "Shoes",
				Billboard: &store.BillboardRow{ID: "bb-1", Label: "Summer Sale"},
			}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	dto, err := svc.GetCategory("cat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto == nil || dto.Billboard == nil || dto.Billboard.Label != "Summer Sale" {
		t.Fatalf("expected included billboard, got %+v", dto)
	}
}

func TestCreateStoreOwnedByCaller(t *testing.T) {
	fs := &fakeStore{
		CreateStoreFn: func(userID, name string) (store.StoreRow, error) {
			return store.StoreRow{ID: "store-1", UserID: userID, Name: name}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	if _, err := svc.CreateStore("", "Shop"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	dto, err := svc.CreateStore("user-1", "Shop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.UserID != "user-1" || dto.Name != "Shop" {
		t.Fatalf("unexpected store: %+v", dto)
	}
}

func TestListOrdersMapsItems(t *testing.T) {
	fs := &fakeStore{
		ListOrdersFn: func(storeID string) ([]store.OrderRow, error) {
			return []store.OrderRow{{
				ID: "ord-1", StoreID: storeID, IsPaid: true,
				Items: []store.OrderItemRow{
					{ID: "it-1", OrderID: "ord-1", ProductID: "p-1", ProductName: "Sneaker", ProductPrice: decimal.RequireFromString("49.99")},
				},
			}}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	orders, err := svc.ListOrders("store-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || len(orders[0].Items) != 1 || orders[0].Items[0].ProductName != "Sneaker" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestStoreErrorPropagates(t *testing.T) {
	fs := &fakeStore{
		ListBillboardsFn: func(storeID string) ([]store.BillboardRow, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewService(fs, nil, Config{})
	if _, err := svc.ListBillboards("store-1"); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}
