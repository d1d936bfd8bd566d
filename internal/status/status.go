package status

// Level is the derived stock-health label shown on the dashboard.
type Level string

const (
	LevelAman     Level = "AMAN"
	LevelWarning  Level = "WARNING"
	LevelCritical Level = "CRITICAL"
)

// severity ranks levels so that CRITICAL > WARNING > AMAN.
func (l Level) severity() int {
	switch l {
	case LevelCritical:
		return 2
	case LevelWarning:
		return 1
	default:
		return 0
	}
}

// DefaultWarnMultiplier is the banding cutoff between AMAN and WARNING,
// expressed as a multiple of the per-SKU low-stock threshold. Tunable
// via config, pending product-owner confirmation.
const DefaultWarnMultiplier = 2

// Bands classifies a quantity against a per-SKU threshold.
type Bands struct {
	WarnMultiplier int
}

func DefaultBands() Bands {
	return Bands{WarnMultiplier: DefaultWarnMultiplier}
}

// Classify derives the health label for one (outlet, SKU) quantity.
// Below the threshold is CRITICAL, below threshold*multiplier is
// WARNING, anything comfortably above is AMAN.
func (b Bands) Classify(qty, threshold int) Level {
	mult := b.WarnMultiplier
	if mult < 1 {
		mult = DefaultWarnMultiplier
	}
	switch {
	case qty < threshold:
		return LevelCritical
	case qty < threshold*mult:
		return LevelWarning
	default:
		return LevelAman
	}
}

// Worst returns the most severe level among the given ones. An outlet's
// dashboard status is the worst across its tracked SKUs.
func Worst(levels ...Level) Level {
	worst := LevelAman
	for _, l := range levels {
		if l.severity() > worst.severity() {
			worst = l
		}
	}
	return worst
}
