package repository

import (
	"go-hubstock-ws/internal/model"

	"gorm.io/gorm"
)

// StockEvent is one fully-applied ledger event awaiting durability: the
// history record (if any) plus the post-event quantities of every stock
// entry the event touched.
type StockEvent struct {
	Transfer *model.TransferRecord
	Sale     *model.SaleRecord
	Stock    []model.StockEntry
}

// EventStore persists a whole event atomically. The durability boundary
// is one event, never one line item.
type EventStore interface {
	Persist(event StockEvent) error
}

type gormEventStore struct {
	db        *gorm.DB
	transfers TransferRepository
	sales     SaleRepository
	stock     StockRepository
}

func NewEventStore(db *gorm.DB, transfers TransferRepository, sales SaleRepository, stock StockRepository) EventStore {
	return &gormEventStore{
		db:        db,
		transfers: transfers,
		sales:     sales,
		stock:     stock,
	}
}

func (s *gormEventStore) Persist(event StockEvent) error {
	// Gunakan Transaction Block (Atomic Operation)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if event.Transfer != nil {
			if err := s.transfers.Create(tx, event.Transfer); err != nil {
				return err
			}
		}
		if event.Sale != nil {
			if err := s.sales.Create(tx, event.Sale); err != nil {
				return err
			}
		}
		return s.stock.Upsert(tx, event.Stock)
	})
}
