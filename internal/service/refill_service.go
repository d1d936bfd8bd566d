package service

import (
	"context"
	"log"
	"time"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
)

// RefillWorker tops the hub up with a fixed quantity of every SKU at a
// fixed interval, standing in for inbound supplier deliveries. Refills
// go through the ledger and the journal like any other stock event.
type RefillWorker struct {
	productRepo repository.ProductRepository
	journal     EventSink
	qty         int
	interval    time.Duration
}

func NewRefillWorker(pRepo repository.ProductRepository, journal EventSink, qty int, interval time.Duration) *RefillWorker {
	return &RefillWorker{
		productRepo: pRepo,
		journal:     journal,
		qty:         qty,
		interval:    interval,
	}
}

// Enabled reports whether the worker is configured to run at all.
func (w *RefillWorker) Enabled() bool {
	return w.qty > 0 && w.interval > 0
}

func (w *RefillWorker) Run(ctx context.Context) {
	if !w.Enabled() {
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.refillOnce(); err != nil {
				log.Printf("refill: %v", err)
			}
		}
	}
}

func (w *RefillWorker) refillOnce() error {
	products, err := w.productRepo.FindAll()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	moves := make([]ledger.Move, 0, len(products))
	for _, p := range products {
		moves = append(moves, ledger.Move{Location: model.HubCode, SKU: p.SKU, Delta: w.qty})
	}
	err = w.journal.Record(moves, func(stock []model.StockEntry) repository.StockEvent {
		return repository.StockEvent{Stock: stock}
	})
	if err != nil {
		return err
	}

	log.Printf("refill: +%d pcs per SKU added to hub stock", w.qty)
	return nil
}
