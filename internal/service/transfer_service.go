package service

import (
	"fmt"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
	"go-hubstock-ws/pkg/validator"

	"github.com/google/uuid"
)

// LineItemRequest is one (SKU, quantity) line of a transfer or sale.
type LineItemRequest struct {
	SKU string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"required,gt=0"`
}

type TransferRequest struct {
	OutletCode string            `json:"outlet_code" validate:"required"`
	Items      []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

type TransferService interface {
	SubmitTransfer(req *TransferRequest, actor string) (*model.TransferRecord, error)
	GetHistory() ([]model.TransferRecord, error)
}

type transferService struct {
	outletRepo  repository.OutletRepository
	productRepo repository.ProductRepository
	historyRepo repository.TransferRepository
	journal     EventSink
	hub         Broadcaster
}

func NewTransferService(
	oRepo repository.OutletRepository,
	pRepo repository.ProductRepository,
	tRepo repository.TransferRepository,
	journal EventSink,
	hub Broadcaster,
) TransferService {
	return &transferService{
		outletRepo:  oRepo,
		productRepo: pRepo,
		historyRepo: tRepo,
		journal:     journal,
		hub:         hub,
	}
}

// SubmitTransfer moves stock from the hub to one outlet. Validation
// order: destination, then line items, then hub availability. On
// success every line's hub decrement and outlet increment applies as
// one atomic event and an immutable history record is written.
func (s *transferService) SubmitTransfer(req *TransferRequest, actor string) (*model.TransferRecord, error) {
	// 1. Destination must be a real outlet; the hub cannot ship to itself.
	if req.OutletCode == "" || req.OutletCode == model.HubCode {
		return nil, ErrInvalidDestination
	}
	outlet, err := s.outletRepo.FindByCode(req.OutletCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDestination, req.OutletCode)
	}

	// 2. Line items must be present with positive quantities.
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	moves := make([]ledger.Move, 0, len(req.Items)*2)
	items := make([]model.TransferItem, 0, len(req.Items))
	totalQty := 0
	for _, line := range req.Items {
		product, err := s.productRepo.FindBySKU(line.SKU)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.SKU)
		}
		moves = append(moves,
			ledger.Move{Location: model.HubCode, SKU: line.SKU, Delta: -line.Qty},
			ledger.Move{Location: outlet.Code, SKU: line.SKU, Delta: line.Qty},
		)
		items = append(items, model.TransferItem{
			SKU:         product.SKU,
			ProductName: product.Name,
			Qty:         line.Qty,
		})
		totalQty += line.Qty
	}

	record := &model.TransferRecord{
		OutletCode: outlet.Code,
		OutletName: outlet.Name,
		TotalQty:   totalQty,
		Status:     model.TransferStatusSuccess,
		Items:      items,
	}
	record.ID = uuid.New()
	record.CreatedBy = actor
	record.UpdatedBy = actor

	// 3. Apply atomically and queue for persistence; names the first
	// deficient SKU on failure.
	err = s.journal.Record(moves, func(stock []model.StockEntry) repository.StockEvent {
		return repository.StockEvent{Transfer: record, Stock: stock}
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "transfer_applied",
		"transfer": map[string]interface{}{
			"id":        record.ID,
			"outlet":    outlet.Code,
			"total_qty": totalQty,
		},
		"message": fmt.Sprintf("%d pcs transferred to %s", totalQty, outlet.Name),
	})

	return record, nil
}

func (s *transferService) GetHistory() ([]model.TransferRecord, error) {
	return s.historyRepo.FindAll()
}
