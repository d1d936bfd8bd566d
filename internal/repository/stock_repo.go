package repository

import (
	"go-hubstock-ws/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository interface {
	FindAll() ([]model.StockEntry, error)
	Upsert(tx *gorm.DB, entries []model.StockEntry) error
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) FindAll() ([]model.StockEntry, error) {
	var entries []model.StockEntry
	err := r.db.Find(&entries).Error
	return entries, err
}

// Upsert menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi
func (r *stockRepo) Upsert(tx *gorm.DB, entries []model.StockEntry) error {
	for i := range entries {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_code"}, {Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).Create(&entries[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
