package service

import (
	"fmt"
	"sort"
	"time"

	"go-hubstock-ws/internal/repository"
)

// Asia/Jakarta timezone: all business days (report grouping, "revenue
// today") are outlet-local days.
var jakartaLoc *time.Location

func init() {
	var err error
	jakartaLoc, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// Fallback to UTC+7 if timezone data not available
		jakartaLoc = time.FixedZone("WIB", 7*60*60)
	}
}

const (
	ReportStatusOpen  = "Open"
	ReportStatusFinal = "Final"
)

// ReportRow is one (date, outlet) aggregate over the sale history.
type ReportRow struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // YYYY-MM-DD, Jakarta time
	OutletCode   string `json:"outlet_code"`
	OutletName   string `json:"outlet_name"`
	Transactions int    `json:"transactions"`
	ItemsSold    int    `json:"items_sold"`
	Revenue      int64  `json:"revenue"`
	Status       string `json:"status"` // Open for the current day, Final once the day has closed
}

type ReportService interface {
	GetReportRows(outletCode string, startDate, endDate time.Time) ([]ReportRow, error)
}

type reportService struct {
	saleRepo   repository.SaleRepository
	outletRepo repository.OutletRepository
	now        func() time.Time
}

func NewReportService(sRepo repository.SaleRepository, oRepo repository.OutletRepository) ReportService {
	return &reportService{
		saleRepo:   sRepo,
		outletRepo: oRepo,
		now:        time.Now,
	}
}

// GetReportRows is a pure read projection over SaleRecord history
// grouped by Jakarta calendar day and outlet. Passing an empty
// outletCode includes every outlet.
func (s *reportService) GetReportRows(outletCode string, startDate, endDate time.Time) ([]ReportRow, error) {
	sales, err := s.saleRepo.FindBetween(startDate, endDate, outletCode)
	if err != nil {
		return nil, err
	}

	outlets, err := s.outletRepo.FindAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(outlets))
	for _, o := range outlets {
		names[o.Code] = o.Name
	}

	type key struct {
		date   string
		outlet string
	}
	groups := make(map[key]*ReportRow)
	for _, sale := range sales {
		date := sale.CreatedAt.In(jakartaLoc).Format("2006-01-02")
		k := key{date: date, outlet: sale.OutletCode}
		row, ok := groups[k]
		if !ok {
			name := names[sale.OutletCode]
			if name == "" {
				name = sale.OutletCode
			}
			row = &ReportRow{
				ID:         fmt.Sprintf("rep_%s_%s", date, sale.OutletCode),
				Date:       date,
				OutletCode: sale.OutletCode,
				OutletName: name,
			}
			groups[k] = row
		}
		row.Transactions++
		row.Revenue += sale.TotalAmount
		for _, item := range sale.Items {
			row.ItemsSold += item.Qty
		}
	}

	today := s.now().In(jakartaLoc).Format("2006-01-02")
	rows := make([]ReportRow, 0, len(groups))
	for _, row := range groups {
		if row.Date == today {
			row.Status = ReportStatusOpen
		} else {
			row.Status = ReportStatusFinal
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].OutletCode < rows[j].OutletCode
	})
	return rows, nil
}

// ReportWindow converts a UI range token into a window ending at now,
// computed on the Jakarta calendar so a range boundary never clips an
// outlet-local day. Unknown tokens fall back to the last 7 days.
func ReportWindow(rangeParam string, now time.Time) (time.Time, time.Time) {
	end := now.In(jakartaLoc)
	switch rangeParam {
	case "1m":
		return end.AddDate(0, -1, 0), end
	case "3m":
		return end.AddDate(0, -3, 0), end
	case "6m":
		return end.AddDate(0, -6, 0), end
	case "12m":
		return end.AddDate(0, -12, 0), end
	default:
		return end.AddDate(0, 0, -7), end
	}
}

// startOfDay returns midnight of t's Jakarta day.
func startOfDay(t time.Time) time.Time {
	local := t.In(jakartaLoc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, jakartaLoc)
}

// timeAgo renders a human "last update" hint for the dashboard.
func timeAgo(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min ago", minutes)
	}
	return fmt.Sprintf("%d hours ago", minutes/60)
}
