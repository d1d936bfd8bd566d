package status

import "math"

// Waste-risk heuristics. The exact formula is business policy, not
// ledger logic, so it lives here as a named estimator the caller can
// swap out; the ledger only supplies the raw quantities.
const (
	outletOverstockLimit = 180  // pcs per outlet before stock counts as overstock
	hubBufferLimit       = 2000 // hub pcs above this count as potential waste
	hubBufferDiscount    = 0.5
	velocityFloor        = 80.0 // assumed minimum daily sales when history is thin
	minWastePercent      = 5.0
)

// WasteInputs are the raw quantities the estimator works from.
type WasteInputs struct {
	HubTotal     int
	OutletTotals map[string]int
	SoldLast24h  int
	SoldLast7d   int
}

// WasteEstimate is a derived risk figure for the dashboard.
type WasteEstimate struct {
	Percent float64 `json:"percent"`
	Pieces  int     `json:"pcs"`
}

// WasteEstimator maps raw stock and velocity figures to a waste risk.
type WasteEstimator func(WasteInputs) WasteEstimate

// OverstockPieces estimates stock likely to spoil before it sells:
// per-outlet totals above the overstock limit, plus half of whatever the
// hub holds beyond its buffer.
func OverstockPieces(in WasteInputs) int {
	overstock := 0
	for _, total := range in.OutletTotals {
		if total > outletOverstockLimit {
			overstock += total - outletOverstockLimit
		}
	}
	if in.HubTotal > hubBufferLimit {
		overstock += int(float64(in.HubTotal-hubBufferLimit) * hubBufferDiscount)
	}
	if overstock < 0 {
		return 0
	}
	return overstock
}

// EstimateWaste is the default estimator: it combines overstock with a
// coverage-days figure derived from recent sales velocity.
func EstimateWaste(in WasteInputs) WasteEstimate {
	outletStock := 0
	for _, total := range in.OutletTotals {
		outletStock += total
	}
	totalStock := in.HubTotal + outletStock
	if totalStock <= 0 {
		return WasteEstimate{}
	}

	overstock := OverstockPieces(in)

	velocity := velocityFloor
	if v := float64(in.SoldLast24h); v > velocity {
		velocity = v
	}
	if v := float64(in.SoldLast7d) / 7; in.SoldLast7d > 0 && v > velocity {
		velocity = v
	}

	coverageDays := float64(outletStock) / velocity

	var baseline float64
	switch {
	case coverageDays <= 1.5:
		baseline = 5.0
	case coverageDays <= 3:
		baseline = 5.0 + (coverageDays-1.5)*12.0
	case coverageDays <= 7:
		baseline = 23.0 + (coverageDays-3)*7.0
	default:
		baseline = 51.0 + math.Min(25.0, (coverageDays-7)*4.0)
	}

	overstockPct := float64(overstock) / float64(totalStock) * 100.0

	pct := math.Max(baseline, math.Max(overstockPct, minWastePercent))
	pct = math.Min(100.0, pct)
	pct = math.Round(pct*10) / 10

	return WasteEstimate{Percent: pct, Pieces: overstock}
}
