package repository

import (
	"go-hubstock-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(request *model.StockRequest) error
	FindAll() ([]model.StockRequest, error)
	FindByID(id uuid.UUID) (*model.StockRequest, error)
	UpdateStatus(id uuid.UUID, status model.RequestStatus, updatedBy string) error
	CountPending() (int64, error)
}

type requestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db}
}

func (r *requestRepo) Create(request *model.StockRequest) error {
	return r.db.Create(request).Error
}

func (r *requestRepo) FindAll() ([]model.StockRequest, error) {
	var requests []model.StockRequest
	err := r.db.Preload("Items").Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByID(id uuid.UUID) (*model.StockRequest, error) {
	var request model.StockRequest
	err := r.db.Preload("Items").First(&request, "id = ?", id).Error
	return &request, err
}

func (r *requestRepo) UpdateStatus(id uuid.UUID, status model.RequestStatus, updatedBy string) error {
	return r.db.Model(&model.StockRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}

func (r *requestRepo) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.StockRequest{}).
		Where("status = ?", model.RequestPending).
		Count(&count).Error
	return count, err
}
