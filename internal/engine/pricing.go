package engine

import (
	"math"

	"github.com/tatianab/tradewinds/internal/models"
)

// Supply/demand multiplier ranges, [lo, hi).
const (
	producedLo, producedHi = 0.6, 0.8
	consumedLo, consumedHi = 1.2, 1.6
	neutralLo, neutralHi   = 0.9, 1.1
)

// GeneratePrices builds the market snapshot for loc. For every commodity it
// draws a role multiplier, then a volatility perturbation, in that order.
func GeneratePrices(u *models.Universe, loc *models.Location, rng Rand) Market {
	m := make(Market, len(u.Commodities))
	for _, c := range u.Commodities {
		lo, hi := roleRange(loc, c.ID)
		multiplier := lo + rng.Float64()*(hi-lo)
		perturbation := (rng.Float64()*2 - 1) * c.Volatility
		m[c.ID] = unitPrice(c.BasePrice, perturbation, multiplier)
	}
	return m
}

func roleRange(loc *models.Location, commodityID string) (float64, float64) {
	switch {
	case loc.IsProduced(commodityID):
		return producedLo, producedHi
	case loc.IsConsumed(commodityID):
		return consumedLo, consumedHi
	default:
		return neutralLo, neutralHi
	}
}

func unitPrice(base int, perturbation, multiplier float64) int {
	price := int(math.Floor(float64(base) * (1 + perturbation) * multiplier))
	if price < 1 {
		return 1
	}
	return price
}
