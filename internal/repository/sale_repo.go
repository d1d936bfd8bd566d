package repository

import (
	"time"

	"go-hubstock-ws/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, record *model.SaleRecord) error
	FindAll() ([]model.SaleRecord, error)
	FindBetween(startDate, endDate time.Time, outletCode string) ([]model.SaleRecord, error)
	GetRevenue(startDate, endDate time.Time) (int64, error)
	GetSoldQty(startDate, endDate time.Time) (int, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create menerima *gorm.DB (tx) agar record + items tersimpan atomik
func (r *saleRepo) Create(tx *gorm.DB, record *model.SaleRecord) error {
	return tx.Create(record).Error
}

func (r *saleRepo) FindAll() ([]model.SaleRecord, error) {
	var records []model.SaleRecord
	err := r.db.Preload("Items").Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *saleRepo) FindBetween(startDate, endDate time.Time, outletCode string) ([]model.SaleRecord, error) {
	query := r.db.Preload("Items").
		Where("created_at BETWEEN ? AND ?", startDate, endDate)
	if outletCode != "" {
		query = query.Where("outlet_code = ?", outletCode)
	}

	var records []model.SaleRecord
	err := query.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *saleRepo) GetRevenue(startDate, endDate time.Time) (int64, error) {
	var revenue int64
	err := r.db.Model(&model.SaleRecord{}).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}

// GetSoldQty feeds the waste estimator's sales-velocity input.
func (r *saleRepo) GetSoldQty(startDate, endDate time.Time) (int, error) {
	var qty int
	err := r.db.Model(&model.SaleItem{}).
		Joins("JOIN sale_records ON sale_records.id = sale_items.sale_record_id").
		Where("sale_records.created_at BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(sale_items.qty), 0)").
		Scan(&qty).Error
	return qty, err
}
