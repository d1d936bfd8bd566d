package service

import (
	"testing"
	"time"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
)

func TestRefillOnce(t *testing.T) {
	led := ledger.New()
	led.Load(map[ledger.Key]int{{Location: model.HubCode, SKU: "dada"}: 100})

	products := newMockProductRepo(
		model.Product{SKU: "dada", Name: "Ayam Dada", Price: 10000},
		model.Product{SKU: "sayap", Name: "Sayap", Price: 8000},
	)
	sink := &captureSink{led: led}

	worker := NewRefillWorker(products, sink, 50, time.Minute)
	if err := worker.refillOnce(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if qty := led.Quantity(model.HubCode, "dada"); qty != 150 {
		t.Errorf("expected 150, got %d", qty)
	}
	if qty := led.Quantity(model.HubCode, "sayap"); qty != 50 {
		t.Errorf("expected 50, got %d", qty)
	}
	if sink.count() != 1 {
		t.Errorf("expected 1 journaled event, got %d", sink.count())
	}
}

func TestRefillWorkerDisabled(t *testing.T) {
	sink := &captureSink{led: ledger.New()}

	worker := NewRefillWorker(newMockProductRepo(), sink, 0, time.Minute)
	if worker.Enabled() {
		t.Error("worker with zero qty must be disabled")
	}

	worker = NewRefillWorker(newMockProductRepo(), sink, 50, 0)
	if worker.Enabled() {
		t.Error("worker with zero interval must be disabled")
	}
}
