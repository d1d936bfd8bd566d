package service

import (
	"time"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"
	"go-hubstock-ws/internal/status"
)

// OverviewStats are the headline dashboard counters.
type OverviewStats struct {
	TotalOutlets    int                  `json:"total_outlets"`
	HubStock        map[string]int       `json:"hub_stock"`
	HubTotal        int                  `json:"hub_total"`
	CriticalOutlets int                  `json:"critical_outlets"`
	PendingRequests int64                `json:"pending_requests"`
	RevenueToday    int64                `json:"revenue_today"`
	Waste           status.WasteEstimate `json:"waste"`
}

// OutletSummary is one outlet's per-SKU stock with its derived status.
type OutletSummary struct {
	Code       string         `json:"code"`
	Name       string         `json:"name"`
	Stock      map[string]int `json:"stock"`
	Status     status.Level   `json:"status"`
	LastUpdate string         `json:"last_update"`
}

type DashboardData struct {
	Stats   OverviewStats   `json:"stats"`
	Outlets []OutletSummary `json:"outlets"`
}

type DashboardService interface {
	GetDashboard() (*DashboardData, error)
}

type dashboardService struct {
	outletRepo  repository.OutletRepository
	productRepo repository.ProductRepository
	requestRepo repository.RequestRepository
	saleRepo    repository.SaleRepository
	ledger      *ledger.Ledger
	bands       status.Bands
	estimate    status.WasteEstimator
	now         func() time.Time
}

func NewDashboardService(
	oRepo repository.OutletRepository,
	pRepo repository.ProductRepository,
	rRepo repository.RequestRepository,
	sRepo repository.SaleRepository,
	led *ledger.Ledger,
	bands status.Bands,
	estimate status.WasteEstimator,
) DashboardService {
	if estimate == nil {
		estimate = status.EstimateWaste
	}
	return &dashboardService{
		outletRepo:  oRepo,
		productRepo: pRepo,
		requestRepo: rRepo,
		saleRepo:    sRepo,
		ledger:      led,
		bands:       bands,
		estimate:    estimate,
		now:         time.Now,
	}
}

// GetDashboard recomputes every aggregate from the ledger and history
// on each call. Nothing here is cached: a dashboard read may be a beat
// stale by render time, it is never stale by construction.
func (s *dashboardService) GetDashboard() (*DashboardData, error) {
	outlets, err := s.outletRepo.FindAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	now := s.now()

	hubSnap := s.ledger.Snapshot(model.HubCode)
	hubStock := make(map[string]int, len(products))
	hubTotal := 0
	for _, p := range products {
		hubStock[p.SKU] = hubSnap[p.SKU]
		hubTotal += hubSnap[p.SKU]
	}

	summaries := make([]OutletSummary, 0, len(outlets))
	outletTotals := make(map[string]int, len(outlets))
	critical := 0
	for _, outlet := range outlets {
		snap := s.ledger.Snapshot(outlet.Code)

		stock := make(map[string]int, len(products))
		level := status.LevelAman
		total := 0
		for _, p := range products {
			qty := snap[p.SKU]
			stock[p.SKU] = qty
			total += qty
			level = status.Worst(level, s.bands.Classify(qty, p.Threshold()))
		}
		outletTotals[outlet.Code] = total
		if level == status.LevelCritical {
			critical++
		}

		lastUpdate := "No activity yet"
		if t, ok := s.ledger.LastChanged(outlet.Code); ok {
			lastUpdate = timeAgo(t, now)
		}

		summaries = append(summaries, OutletSummary{
			Code:       outlet.Code,
			Name:       outlet.Name,
			Stock:      stock,
			Status:     level,
			LastUpdate: lastUpdate,
		})
	}

	pending, err := s.requestRepo.CountPending()
	if err != nil {
		return nil, err
	}
	revenue, err := s.saleRepo.GetRevenue(startOfDay(now), now)
	if err != nil {
		return nil, err
	}
	sold24h, err := s.saleRepo.GetSoldQty(now.Add(-24*time.Hour), now)
	if err != nil {
		return nil, err
	}
	sold7d, err := s.saleRepo.GetSoldQty(now.Add(-7*24*time.Hour), now)
	if err != nil {
		return nil, err
	}

	waste := s.estimate(status.WasteInputs{
		HubTotal:     hubTotal,
		OutletTotals: outletTotals,
		SoldLast24h:  sold24h,
		SoldLast7d:   sold7d,
	})

	return &DashboardData{
		Stats: OverviewStats{
			TotalOutlets:    len(outlets),
			HubStock:        hubStock,
			HubTotal:        hubTotal,
			CriticalOutlets: critical,
			PendingRequests: pending,
			RevenueToday:    revenue,
			Waste:           waste,
		},
		Outlets: summaries,
	}, nil
}
