package service

import (
	"commerce-admin/payment"
	"commerce-admin/store"

	"github.com/shopspring/decimal"
)

// Config carries the environment the service needs beyond its collaborators.
type Config struct {
	// FrontendStoreURL is the storefront origin used to build the checkout
	// success and cancel redirect targets.
	FrontendStoreURL string
}

// Service owns the request-scoped business logic: validation, ownership
// checks, and exactly one persistence call per operation.
type Service struct {
	store    store.Store
	provider payment.Provider
	cfg      Config
}

func NewService(st store.Store, provider payment.Provider, cfg Config) *Service {
	return &Service{store: st, provider: provider, cfg: cfg}
}

// ensureOwner verifies the caller owns the store. Callers must have already
// checked authentication and required fields, in that order.
func (s *Service) ensureOwner(userID, storeID string) error {
	owned, err := s.store.GetStoreByUser(storeID, userID)
	if err != nil {
		return err
	}
	if owned == nil {
		return ErrNotOwner
	}
	return nil
}

// --- stores ---

func (s *Service) CreateStore(userID, name string) (StoreDTO, error) {
	if userID == "" {
		return StoreDTO{}, ErrUnauthenticated
	}
	if name == "" {
		return StoreDTO{}, missing("Name")
	}
	row, err := s.store.CreateStore(userID, name)
	if err != nil {
		return StoreDTO{}, err
	}
	return toStoreDTO(row), nil
}

func (s *Service) GetStore(storeID string) (*StoreDTO, error) {
	if storeID == "" {
		return nil, missing("Store id")
	}
	row, err := s.store.GetStore(storeID)
	if err != nil || row == nil {
		return nil, err
	}
	dto := toStoreDTO(*row)
	return &dto, nil
}

func (s *Service) UpdateStore(userID, storeID, name string) (StoreDTO, error) {
	if userID == "" {
		return StoreDTO{}, ErrUnauthenticated
	}
	if name == "" {
		return StoreDTO{}, missing("Name")
	}
	if storeID == "" {
		return StoreDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return StoreDTO{}, err
	}
	row, err := s.store.UpdateStore(storeID, name)
	if err != nil {
		return StoreDTO{}, err
	}
	return toStoreDTO(row), nil
}

func (s *Service) DeleteStore(userID, storeID string) (StoreDTO, error) {
	if userID == "" {
		return StoreDTO{}, ErrUnauthenticated
	}
	if storeID == "" {
		return StoreDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return StoreDTO{}, err
	}
	row, err := s.store.DeleteStore(storeID)
	if err != nil {
		return StoreDTO{}, err
	}
	return toStoreDTO(row), nil
}

// --- billboards ---

func (s *Service) CreateBillboard(userID, storeID, label, imageURL string) (BillboardDTO, error) {
	if userID == "" {
		return BillboardDTO{}, ErrUnauthenticated
	}
	if label == "" {
		return BillboardDTO{}, missing("Label")
	}
	if imageURL == "" {
		return BillboardDTO{}, missing("Image URL")
	}
	if storeID == "" {
		return BillboardDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return BillboardDTO{}, err
	}
	row, err := s.store.CreateBillboard(storeID, label, imageURL)
	if err != nil {
		return BillboardDTO{}, err
	}
	return toBillboardDTO(row), nil
}

func (s *Service) GetBillboard(billboardID string) (*BillboardDTO, error) {
	if billboardID == "" {
		return nil, missing("Billboard id")
	}
	row, err := s.store.GetBillboard(billboardID)
	if err != nil || row == nil {
		return nil, err
	}
	dto := toBillboardDTO(*row)
	return &dto, nil
}

func (s *Service) ListBillboards(storeID string) ([]BillboardDTO, error) {
	if storeID == "" {
		return nil, missing("Store id")
	}
	rows, err := s.store.ListBillboards(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]BillboardDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBillboardDTO(r))
	}
	return out, nil
}

func (s *Service) UpdateBillboard(userID, storeID, billboardID, label, imageURL string) (BillboardDTO, error) {
	if userID == "" {
		return BillboardDTO{}, ErrUnauthenticated
	}
	if label == "" {
		return BillboardDTO{}, missing("Label")
	}
	if imageURL == "" {
		return BillboardDTO{}, missing("Image URL")
	}
	if billboardID == "" {
		return BillboardDTO{}, missing("Billboard id")
	}
	if storeID == "" {
		return BillboardDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return BillboardDTO{}, err
	}
	row, err := s.store.UpdateBillboard(billboardID, label, imageURL)
	if err != nil {
		return BillboardDTO{}, err
	}
	return toBillboardDTO(row), nil
}

func (s *Service) DeleteBillboard(userID, storeID, billboardID string) (BillboardDTO, error) {
	if userID == "" {
		return BillboardDTO{}, ErrUnauthenticated
	}
	if billboardID == "" {
		return BillboardDTO{}, missing("Billboard id")
	}
	if storeID == "" {
		return BillboardDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return BillboardDTO{}, err
	}
	row, err := s.store.DeleteBillboard(billboardID)
	if err != nil {
		return BillboardDTO{}, err
	}
	return toBillboardDTO(row), nil
}

// --- categories ---

func (s *Service) CreateCategory(userID, storeID, name, billboardID string) (CategoryDTO, error) {
	if userID == "" {
		return CategoryDTO{}, ErrUnauthenticated
	}
	if name == "" {
		return CategoryDTO{}, missing("Name")
	}
	if billboardID == "" {
		return CategoryDTO{}, missing("Billboard id")
	}
	if storeID == "" {
		return CategoryDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return CategoryDTO{}, err
	}
	row, err := s.store.CreateCategory(storeID, billboardID, name)
	if err != nil {
		return CategoryDTO{}, err
	}
	return toCategoryDTO(row), nil
}

// GetCategory includes the referenced billboard in the result.
func (s *Service) GetCategory(categoryID string) (*CategoryDTO, error) {
	if categoryID == "" {
		return nil, missing("Category id")
	}
	row, err := s.store.GetCategory(categoryID)
	if err != nil || row == nil {
		return nil, err
	}
	dto := toCategoryDTO(*row)
	return &dto, nil
}

func (s *Service) ListCategories(storeID string) ([]CategoryDTO, error) {
	if storeID == "" {
		return nil, missing("Store id")
	}
	rows, err := s.store.ListCategories(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCategoryDTO(r))
	}
	return out, nil
}

func (s *Service) UpdateCategory(userID, storeID, categoryID, name, billboardID string) (CategoryDTO, error) {
	if userID == "" {
		return CategoryDTO{}, ErrUnauthenticated
	}
	if name == "" {
		return CategoryDTO{}, missing("Name")
	}
	if billboardID == "" {
		return CategoryDTO{}, missing("Billboard id")
	}
	if categoryID == "" {
		return CategoryDTO{}, missing("Category id")
	}
	if storeID == "" {
		return CategoryDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return CategoryDTO{}, err
	}
	row, err := s.store.UpdateCategory(categoryID, billboardID, name)
	if err != nil {
		return CategoryDTO{}, err
	}
	return toCategoryDTO(row), nil
}

func (s *Service) DeleteCategory(userID, storeID, categoryID string) (CategoryDTO, error) {
	if userID == "" {
		return CategoryDTO{}, ErrUnauthenticated
	}
	if categoryID == "" {
		return CategoryDTO{}, missing("Category id")
	}
	if storeID == "" {
		return CategoryDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return CategoryDTO{}, err
	}
	row, err := s.store.DeleteCategory(categoryID)
	if err != nil {
		return CategoryDTO{}, err
	}
	return toCategoryDTO(row), nil
}

// --- products ---

// ProductInput is the mutable part of a product.
type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	IsArchived bool
}

func (s *Service) CreateProduct(userID, storeID string, in ProductInput) (ProductDTO, error) {
	if userID == "" {
		return ProductDTO{}, ErrUnauthenticated
	}
	if in.Name == "" {
		return ProductDTO{}, missing("Name")
	}
	if in.Price.IsZero() {
		return ProductDTO{}, missing("Price")
	}
	if storeID == "" {
		return ProductDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return ProductDTO{}, err
	}
	row, err := s.store.CreateProduct(storeID, in.Name, in.Price, in.IsArchived)
	if err != nil {
		return ProductDTO{}, err
	}
	return toProductDTO(row), nil
}

func (s *Service) GetProduct(productID string) (*ProductDTO, error) {
	if productID == "" {
		return nil, missing("Product id")
	}
	row, err := s.store.GetProduct(productID)
	if err != nil || row == nil {
		return nil, err
	}
	dto := toProductDTO(*row)
	return &dto, nil
}

func (s *Service) ListProducts(storeID string) ([]ProductDTO, error) {
	if storeID == "" {
		return nil, missing("Store id")
	}
	rows, err := s.store.ListProducts(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]ProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProductDTO(r))
	}
	return out, nil
}

func (s *Service) UpdateProduct(userID, storeID, productID string, in ProductInput) (ProductDTO, error) {
	if userID == "" {
		return ProductDTO{}, ErrUnauthenticated
	}
	if in.Name == "" {
		return ProductDTO{}, missing("Name")
	}
	if in.Price.IsZero() {
		return ProductDTO{}, missing("Price")
	}
	if productID == "" {
		return ProductDTO{}, missing("Product id")
	}
	if storeID == "" {
		return ProductDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return ProductDTO{}, err
	}
	row, err := s.store.UpdateProduct(productID, in.Name, in.Price, in.IsArchived)
	if err != nil {
		return ProductDTO{}, err
	}
	return toProductDTO(row), nil
}

func (s *Service) DeleteProduct(userID, storeID, productID string) (ProductDTO, error) {
	if userID == "" {
		return ProductDTO{}, ErrUnauthenticated
	}
	if productID == "" {
		return ProductDTO{}, missing("Product id")
	}
	if storeID == "" {
		return ProductDTO{}, missing("Store id")
	}
	if err := s.ensureOwner(userID, storeID); err != nil {
		return ProductDTO{}, err
	}
	row, err := s.store.DeleteProduct(productID)
	if err != nil {
		return ProductDTO{}, err
	}
	return toProductDTO(row), nil
}

// --- orders ---

func (s *Service) ListOrders(storeID string) ([]OrderDTO, error) {
	if storeID == "" {
		return nil, missing("Store id")
	}
	rows, err := s.store.ListOrders(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toOrderDTO(r))
	}
	return out, nil
}
