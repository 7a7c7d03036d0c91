package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/tradewinds/internal/models"
)

func TestGeneratePricesNeutralMidpoint(t *testing.T) {
	u := models.DefaultUniverse()
	earth := u.Location("earth_station")

	// A 0.5 draw gives a neutral multiplier of 1 and no perturbation.
	m := GeneratePrices(u, earth, constRand(0.5))

	assert.Equal(t, 10, m.Price("food"))
	assert.Equal(t, 5, m.Price("water"))
	assert.Equal(t, 15, m.Price("textiles"))
	assert.Equal(t, 200, m.Price("weapons"))
	assert.Equal(t, 20, m.Price("fuel"))
	assert.Len(t, m, len(u.Commodities))
}

func TestGeneratePricesDrawOrder(t *testing.T) {
	u := models.DefaultUniverse()
	earth := u.Location("earth_station")

	// Multiplier first, perturbation second.
	m := GeneratePrices(u, earth, &seqRand{values: []float64{0.5, 0.75}})
	assert.Equal(t, 240, m.Price("weapons")) // 200 * (1+0.2) * 1.0

	m = GeneratePrices(u, earth, &seqRand{values: []float64{0.75, 0.5}})
	assert.Equal(t, 210, m.Price("weapons")) // 200 * 1 * 1.05
}

func TestGeneratePricesClampsToOne(t *testing.T) {
	u, err := models.LoadUniverse([]byte(`
start: {location: a, credits: 10, max_cargo: 5}
commodities:
  - {id: dust, name: dust, base_price: 1, volatility: 1.0}
locations:
  - {id: a, name: Alpha}
`))
	require.NoError(t, err)

	m := GeneratePrices(u, u.Location("a"), constRand(0))
	assert.Equal(t, 1, m.Price("dust"))
}

func TestGeneratePricesRoleBounds(t *testing.T) {
	u := models.DefaultUniverse()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		for i := range u.Locations {
			loc := &u.Locations[i]
			m := GeneratePrices(u, loc, rng)
			for _, c := range u.Commodities {
				lo, hi := neutralLo, neutralHi
				switch {
				case loc.IsProduced(c.ID):
					lo, hi = producedLo, producedHi
				case loc.IsConsumed(c.ID):
					lo, hi = consumedLo, consumedHi
				}
				base := float64(c.BasePrice)
				minPrice := math.Max(1, math.Floor(base*(1-c.Volatility)*lo))
				maxPrice := base * (1 + c.Volatility) * hi

				p := m.Price(c.ID)
				require.GreaterOrEqual(t, p, 1)
				require.GreaterOrEqual(t, float64(p), minPrice, "%s at %s", c.ID, loc.ID)
				require.LessOrEqual(t, float64(p), maxPrice, "%s at %s", c.ID, loc.ID)
			}
		}
	}
}

func TestGeneratePricesExtremeDraws(t *testing.T) {
	u := models.DefaultUniverse()
	for _, r := range []float64{0, 0.25, 0.5, 0.75, 0.999999} {
		for i := range u.Locations {
			m := GeneratePrices(u, &u.Locations[i], constRand(r))
			for id, p := range m {
				assert.GreaterOrEqual(t, p, 1, "%s at %s with draw %v", id, u.Locations[i].ID, r)
			}
		}
	}
}

func TestMarketPricePanicsOnUnknownCommodity(t *testing.T) {
	m := Market{"food": 10}
	assert.Panics(t, func() { m.Price("spice") })
}
