package service

import (
	"fmt"

	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
	"go-hubstock-ws/pkg/validator"

	"github.com/google/uuid"
)

type RequestLineItem struct {
	Label string `json:"label" validate:"required"`
	Qty   int    `json:"qty" validate:"required,gt=0"`
}

type StockRequestInput struct {
	OutletCode string            `json:"outlet_code" validate:"required"`
	Items      []RequestLineItem `json:"items" validate:"required,min=1,dive"`
	Note       string            `json:"note"`
}

type RequestService interface {
	SubmitRequest(req *StockRequestInput, actor string) (*model.StockRequest, error)
	GetRequests() ([]model.StockRequest, error)
	UpdateStatus(id uuid.UUID, status model.RequestStatus, actor string) (*model.StockRequest, error)
	PendingCount() (int64, error)
}

type requestService struct {
	outletRepo  repository.OutletRepository
	requestRepo repository.RequestRepository
	hub         Broadcaster
}

func NewRequestService(oRepo repository.OutletRepository, rRepo repository.RequestRepository, hub Broadcaster) RequestService {
	return &requestService{
		outletRepo:  oRepo,
		requestRepo: rRepo,
		hub:         hub,
	}
}

// SubmitRequest files an advisory replenishment ask. It never mutates
// stock: the hub team acts on it out of band, the dashboard only counts
// the pending ones. Item labels are opaque text, never parsed.
func (s *requestService) SubmitRequest(req *StockRequestInput, actor string) (*model.StockRequest, error) {
	if req.OutletCode == "" {
		return nil, ErrOutletNotFound
	}
	outlet, err := s.outletRepo.FindByCode(req.OutletCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOutletNotFound, req.OutletCode)
	}

	if len(req.Items) == 0 {
		return nil, ErrEmptyRequest
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	items := make([]model.StockRequestItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, model.StockRequestItem{Label: line.Label, Qty: line.Qty})
	}

	request := &model.StockRequest{
		OutletCode: outlet.Code,
		Note:       req.Note,
		Status:     model.RequestPending,
		Items:      items,
	}
	request.CreatedBy = actor
	request.UpdatedBy = actor

	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "request_submitted",
		"request": map[string]interface{}{
			"id":     request.ID,
			"outlet": outlet.Code,
			"items":  len(items),
		},
		"message": fmt.Sprintf("%s requested %d item(s)", outlet.Name, len(items)),
	})

	return request, nil
}

func (s *requestService) GetRequests() ([]model.StockRequest, error) {
	return s.requestRepo.FindAll()
}

// UpdateStatus resolves a pending request. FULFILLED and REJECTED are
// terminal; the actual restock, if any, goes through a transfer.
func (s *requestService) UpdateStatus(id uuid.UUID, status model.RequestStatus, actor string) (*model.StockRequest, error) {
	if status != model.RequestFulfilled && status != model.RequestRejected {
		return nil, ErrInvalidStatus
	}

	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if request.Status != model.RequestPending {
		return nil, ErrRequestNotPending
	}

	if err := s.requestRepo.UpdateStatus(id, status, actor); err != nil {
		return nil, err
	}
	request.Status = status
	request.UpdatedBy = actor
	return request, nil
}

func (s *requestService) PendingCount() (int64, error) {
	return s.requestRepo.CountPending()
}
