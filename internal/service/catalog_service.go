package service

import (
	"errors"
	"fmt"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
	"go-hubstock-ws/pkg/validator"

	"gorm.io/gorm"
)

// CatalogRow is a product joined with one location's live quantity.
type CatalogRow struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image"`
	Stock    int    `json:"stock"`
}

type CatalogService interface {
	CreateProduct(req *model.Product, actor string) error
	ListProducts() ([]model.Product, error)
	ListCatalog(locationCode string) ([]CatalogRow, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	outletRepo  repository.OutletRepository
	ledger      *ledger.Ledger
}

func NewCatalogService(pRepo repository.ProductRepository, oRepo repository.OutletRepository, led *ledger.Ledger) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		outletRepo:  oRepo,
		ledger:      led,
	}
}

func (s *catalogService) CreateProduct(req *model.Product, actor string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	// SKU codes are stable identifiers; duplicates would split history.
	_, err := s.productRepo.FindBySKU(req.SKU)
	switch {
	case err == nil:
		return fmt.Errorf("%w: SKU already exists", ErrValidation)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if req.LowStockThreshold <= 0 {
		req.LowStockThreshold = model.DefaultLowStockThreshold
	}
	req.CreatedBy = actor
	req.UpdatedBy = actor

	return s.productRepo.Create(req)
}

func (s *catalogService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// ListCatalog returns the catalog with the given location's live stock.
// A SKU the location never received reads as 0, never as missing.
func (s *catalogService) ListCatalog(locationCode string) ([]CatalogRow, error) {
	if locationCode != model.HubCode {
		if _, err := s.outletRepo.FindByCode(locationCode); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrOutletNotFound, locationCode)
		}
	}

	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	snapshot := s.ledger.Snapshot(locationCode)
	rows := make([]CatalogRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, CatalogRow{
			SKU:      p.SKU,
			Name:     p.Name,
			Price:    p.Price,
			ImageURL: p.ImageURL,
			Stock:    snapshot[p.SKU],
		})
	}
	return rows, nil
}
