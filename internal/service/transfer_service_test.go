package service

import (
	"errors"
	"testing"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
)

func newTransferFixture(hubStock map[string]int) (TransferService, *ledger.Ledger, *captureSink) {
	led := ledger.New()
	entries := make(map[ledger.Key]int)
	for sku, qty := range hubStock {
		entries[ledger.Key{Location: model.HubCode, SKU: sku}] = qty
	}
	led.Load(entries)

	outlets := newMockOutletRepo(
		model.Outlet{Code: "outlet_1", Name: "Cabang UNNES Sekaran"},
		model.Outlet{Code: "outlet_2", Name: "Cabang Banaran"},
	)
	products := newMockProductRepo(
		model.Product{SKU: "dada", Name: "Ayam Dada", Price: 10000, LowStockThreshold: 10},
		model.Product{SKU: "sayap", Name: "Sayap", Price: 8000, LowStockThreshold: 10},
	)

	sink := &captureSink{led: led}
	svc := NewTransferService(outlets, products, &mockTransferRepo{}, sink, &nopBroadcaster{})
	return svc, led, sink
}

func TestSubmitTransfer(t *testing.T) {
	svc, led, sink := newTransferFixture(map[string]int{"dada": 50})

	record, err := svc.SubmitTransfer(&TransferRequest{
		OutletCode: "outlet_1",
		Items:      []LineItemRequest{{SKU: "dada", Qty: 20}},
	}, "tester")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalQty != 20 {
		t.Errorf("expected total 20, got %d", record.TotalQty)
	}
	if record.Status != model.TransferStatusSuccess {
		t.Errorf("expected status success, got %s", record.Status)
	}
	if hub := led.Quantity(model.HubCode, "dada"); hub != 30 {
		t.Errorf("expected hub 30, got %d", hub)
	}
	if outlet := led.Quantity("outlet_1", "dada"); outlet != 20 {
		t.Errorf("expected outlet 20, got %d", outlet)
	}
	if sink.count() != 1 {
		t.Errorf("expected 1 journaled event, got %d", sink.count())
	}
	if sink.events[0].Transfer == nil || len(sink.events[0].Stock) != 2 {
		t.Errorf("journal event incomplete: %+v", sink.events[0])
	}
}

func TestSubmitTransferInsufficientStock(t *testing.T) {
	svc, led, sink := newTransferFixture(map[string]int{"dada": 30})

	_, err := svc.SubmitTransfer(&TransferRequest{
		OutletCode: "outlet_1",
		Items:      []LineItemRequest{{SKU: "dada", Qty: 100}},
	}, "tester")

	var insufficient *ledger.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.SKU != "dada" || insufficient.Available != 30 {
		t.Errorf("unexpected error detail: %+v", insufficient)
	}
	if hub := led.Quantity(model.HubCode, "dada"); hub != 30 {
		t.Errorf("hub stock changed on rejected transfer: %d", hub)
	}
	if sink.count() != 0 {
		t.Errorf("rejected transfer must not be journaled")
	}
}

func TestSubmitTransferNamesFirstDeficientSKU(t *testing.T) {
	svc, _, _ := newTransferFixture(map[string]int{"dada": 100, "sayap": 5})

	_, err := svc.SubmitTransfer(&TransferRequest{
		OutletCode: "outlet_1",
		Items: []LineItemRequest{
			{SKU: "dada", Qty: 10},
			{SKU: "sayap", Qty: 10},
		},
	}, "tester")

	var insufficient *ledger.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.SKU != "sayap" {
		t.Errorf("expected deficient SKU sayap, got %s", insufficient.SKU)
	}
}

func TestSubmitTransferInvalidDestination(t *testing.T) {
	svc, _, _ := newTransferFixture(map[string]int{"dada": 50})

	cases := []string{"", model.HubCode, "outlet_99"}
	for _, destination := range cases {
		_, err := svc.SubmitTransfer(&TransferRequest{
			OutletCode: destination,
			Items:      []LineItemRequest{{SKU: "dada", Qty: 1}},
		}, "tester")
		if !errors.Is(err, ErrInvalidDestination) {
			t.Errorf("destination %q: expected ErrInvalidDestination, got %v", destination, err)
		}
	}
}

func TestSubmitTransferEmptyItems(t *testing.T) {
	svc, _, _ := newTransferFixture(map[string]int{"dada": 50})

	_, err := svc.SubmitTransfer(&TransferRequest{OutletCode: "outlet_1"}, "tester")
	if !errors.Is(err, ErrEmptyItems) {
		t.Errorf("expected ErrEmptyItems, got %v", err)
	}
}

func TestSubmitTransferRejectsNonPositiveQty(t *testing.T) {
	svc, led, _ := newTransferFixture(map[string]int{"dada": 50})

	_, err := svc.SubmitTransfer(&TransferRequest{
		OutletCode: "outlet_1",
		Items:      []LineItemRequest{{SKU: "dada", Qty: -3}},
	}, "tester")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if hub := led.Quantity(model.HubCode, "dada"); hub != 50 {
		t.Errorf("hub stock changed on rejected transfer: %d", hub)
	}
}

func TestSubmitTransferUnknownSKU(t *testing.T) {
	svc, _, _ := newTransferFixture(map[string]int{"dada": 50})

	_, err := svc.SubmitTransfer(&TransferRequest{
		OutletCode: "outlet_1",
		Items:      []LineItemRequest{{SKU: "rendang", Qty: 1}},
	}, "tester")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
