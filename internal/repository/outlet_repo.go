package repository

import (
	"go-hubstock-ws/internal/model"

	"gorm.io/gorm"
)

type OutletRepository interface {
	Create(outlet *model.Outlet) error
	FindAll() ([]model.Outlet, error)
	FindByCode(code string) (*model.Outlet, error)
	Count() (int64, error)
}

type outletRepo struct {
	db *gorm.DB
}

func NewOutletRepo(db *gorm.DB) OutletRepository {
	return &outletRepo{db}
}

func (r *outletRepo) Create(outlet *model.Outlet) error {
	return r.db.Create(outlet).Error
}

func (r *outletRepo) FindAll() ([]model.Outlet, error) {
	var outlets []model.Outlet
	err := r.db.Order("code ASC").Find(&outlets).Error
	return outlets, err
}

func (r *outletRepo) FindByCode(code string) (*model.Outlet, error) {
	var outlet model.Outlet
	err := r.db.First(&outlet, "code = ?", code).Error
	return &outlet, err
}

func (r *outletRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Outlet{}).Count(&count).Error
	return count, err
}
