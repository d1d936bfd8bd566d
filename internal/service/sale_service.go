package service

import (
	"fmt"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
	"go-hubstock-ws/pkg/validator"

	"github.com/google/uuid"
)

type SaleRequest struct {
	OutletCode string            `json:"outlet_code" validate:"required"`
	Items      []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

type SaleService interface {
	SubmitSale(req *SaleRequest, actor string) (*model.SaleRecord, error)
	GetSales() ([]model.SaleRecord, error)
}

type saleService struct {
	outletRepo  repository.OutletRepository
	productRepo repository.ProductRepository
	historyRepo repository.SaleRepository
	journal     EventSink
	hub         Broadcaster
}

func NewSaleService(
	oRepo repository.OutletRepository,
	pRepo repository.ProductRepository,
	sRepo repository.SaleRepository,
	journal EventSink,
	hub Broadcaster,
) SaleService {
	return &saleService{
		outletRepo:  oRepo,
		productRepo: pRepo,
		historyRepo: sRepo,
		journal:     journal,
		hub:         hub,
	}
}

// SubmitSale records one POS transaction. The whole sale is rejected if
// any line exceeds the outlet's stock; unit prices are captured from
// the catalog at this moment so future catalog changes never rewrite
// historical revenue. Sales never touch hub stock.
func (s *saleService) SubmitSale(req *SaleRequest, actor string) (*model.SaleRecord, error) {
	if req.OutletCode == "" || req.OutletCode == model.HubCode {
		return nil, ErrOutletNotFound
	}
	outlet, err := s.outletRepo.FindByCode(req.OutletCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOutletNotFound, req.OutletCode)
	}

	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	moves := make([]ledger.Move, 0, len(req.Items))
	items := make([]model.SaleItem, 0, len(req.Items))
	var totalAmount int64
	for _, line := range req.Items {
		product, err := s.productRepo.FindBySKU(line.SKU)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.SKU)
		}
		moves = append(moves, ledger.Move{Location: outlet.Code, SKU: line.SKU, Delta: -line.Qty})
		items = append(items, model.SaleItem{
			SKU:         product.SKU,
			ProductName: product.Name,
			Qty:         line.Qty,
			UnitPrice:   product.Price,
		})
		totalAmount += int64(line.Qty) * product.Price
	}

	record := &model.SaleRecord{
		OutletCode:  outlet.Code,
		TotalAmount: totalAmount,
		Items:       items,
	}
	record.ID = uuid.New()
	record.CreatedBy = actor
	record.UpdatedBy = actor

	// All line decrements apply as one event: a deficient line leaves
	// every other line's stock untouched.
	err = s.journal.Record(moves, func(stock []model.StockEntry) repository.StockEvent {
		return repository.StockEvent{Sale: record, Stock: stock}
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "sale_recorded",
		"sale": map[string]interface{}{
			"id":     record.ID,
			"outlet": outlet.Code,
			"total":  totalAmount,
		},
		"message": fmt.Sprintf("sale of Rp%d recorded at %s", totalAmount, outlet.Name),
	})

	return record, nil
}

func (s *saleService) GetSales() ([]model.SaleRecord, error) {
	return s.historyRepo.FindAll()
}
