package repository

import (
	"go-hubstock-ws/internal/model"

	"gorm.io/gorm"
)

type TransferRepository interface {
	Create(tx *gorm.DB, record *model.TransferRecord) error
	FindAll() ([]model.TransferRecord, error)
}

type transferRepo struct {
	db *gorm.DB
}

func NewTransferRepo(db *gorm.DB) TransferRepository {
	return &transferRepo{db}
}

// Create menerima *gorm.DB (tx) agar record + items tersimpan atomik
func (r *transferRepo) Create(tx *gorm.DB, record *model.TransferRecord) error {
	return tx.Create(record).Error
}

func (r *transferRepo) FindAll() ([]model.TransferRecord, error) {
	var records []model.TransferRecord
	err := r.db.Preload("Items").Order("created_at DESC").Find(&records).Error
	return records, err
}
