package service

import (
	"testing"
	"time"

	"go-hubstock-ws/internal/model"
)

func saleAt(outlet string, at time.Time, total int64, qty int) model.SaleRecord {
	record := model.SaleRecord{
		OutletCode:  outlet,
		TotalAmount: total,
		Items:       []model.SaleItem{{SKU: "dada", ProductName: "Ayam Dada", Qty: qty, UnitPrice: total / int64(qty)}},
	}
	record.CreatedAt = at
	return record
}

func TestGetReportRows(t *testing.T) {
	now := time.Date(2024, 6, 2, 14, 0, 0, 0, jakartaLoc)
	yesterday := now.AddDate(0, 0, -1)

	saleRepo := &mockSaleRepo{records: []model.SaleRecord{
		saleAt("outlet_1", yesterday, 30000, 3),
		saleAt("outlet_1", yesterday.Add(time.Hour), 20000, 2),
		saleAt("outlet_2", yesterday, 10000, 1),
		saleAt("outlet_1", now.Add(-time.Hour), 40000, 4),
	}}
	outlets := newMockOutletRepo(
		model.Outlet{Code: "outlet_1", Name: "Cabang UNNES Sekaran"},
		model.Outlet{Code: "outlet_2", Name: "Cabang Banaran"},
	)

	svc := NewReportService(saleRepo, outlets)
	svc.(*reportService).now = func() time.Time { return now }

	rows, err := svc.GetReportRows("", now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}

	// Most recent day first.
	today := rows[0]
	if today.Date != "2024-06-02" || today.Status != ReportStatusOpen {
		t.Errorf("expected open row for today, got %+v", today)
	}
	if today.Transactions != 1 || today.ItemsSold != 4 || today.Revenue != 40000 {
		t.Errorf("unexpected today aggregates: %+v", today)
	}

	y1 := rows[1]
	if y1.OutletCode != "outlet_1" || y1.Status != ReportStatusFinal {
		t.Errorf("expected final outlet_1 row, got %+v", y1)
	}
	if y1.Transactions != 2 || y1.ItemsSold != 5 || y1.Revenue != 50000 {
		t.Errorf("unexpected yesterday aggregates for outlet_1: %+v", y1)
	}
	if y1.OutletName != "Cabang UNNES Sekaran" {
		t.Errorf("expected resolved outlet name, got %q", y1.OutletName)
	}

	y2 := rows[2]
	if y2.OutletCode != "outlet_2" || y2.Revenue != 10000 {
		t.Errorf("unexpected yesterday aggregates for outlet_2: %+v", y2)
	}
}

func TestGetReportRowsOutletFilter(t *testing.T) {
	now := time.Date(2024, 6, 2, 14, 0, 0, 0, jakartaLoc)

	saleRepo := &mockSaleRepo{records: []model.SaleRecord{
		saleAt("outlet_1", now.Add(-2*time.Hour), 30000, 3),
		saleAt("outlet_2", now.Add(-time.Hour), 10000, 1),
	}}
	outlets := newMockOutletRepo(
		model.Outlet{Code: "outlet_1", Name: "Cabang UNNES Sekaran"},
		model.Outlet{Code: "outlet_2", Name: "Cabang Banaran"},
	)

	svc := NewReportService(saleRepo, outlets)
	svc.(*reportService).now = func() time.Time { return now }

	rows, err := svc.GetReportRows("outlet_2", now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].OutletCode != "outlet_2" {
		t.Errorf("expected only outlet_2 rows, got %+v", rows)
	}
}

func TestGetReportRowsEmptyHistory(t *testing.T) {
	now := time.Now()
	svc := NewReportService(&mockSaleRepo{}, newMockOutletRepo())

	rows, err := svc.GetReportRows("", now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %+v", rows)
	}
}

func TestReportWindowDefaultsToSevenDays(t *testing.T) {
	now := time.Date(2024, 6, 2, 14, 0, 0, 0, jakartaLoc)

	for _, token := range []string{"7d", "", "bogus"} {
		start, end := ReportWindow(token, now)
		if !end.Equal(now) {
			t.Errorf("%q: expected window to end now, got %v", token, end)
		}
		if !start.Equal(now.AddDate(0, 0, -7)) {
			t.Errorf("%q: expected 7-day window, got start %v", token, start)
		}
	}
}

// Month arithmetic must run on the Jakarta calendar. Around a month
// boundary, a server-local computation can land days away from the
// outlet-local one.
func TestReportWindowUsesJakartaCalendar(t *testing.T) {
	// 2024-03-31 20:00 UTC is already 2024-04-01 03:00 in Jakarta.
	now := time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)

	start, _ := ReportWindow("1m", now)
	want := time.Date(2024, 3, 1, 3, 0, 0, 0, jakartaLoc)
	if !start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, start)
	}
}
