package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/tradewinds/internal/models"
)

// constRand always returns the same draw.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// seqRand cycles through a fixed list of draws.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// newState builds a fresh session at the start location priced with rng.
func newState(t *testing.T, u *models.Universe, rng Rand) State {
	t.Helper()
	start := u.Location(u.Start.Location)
	st := State{
		Captain:   "Vela",
		Ship:      "Kestrel",
		Credits:   u.Start.Credits,
		Location:  start.ID,
		Inventory: map[string]int{},
		MaxCargo:  u.Start.MaxCargo,
		Visited:   map[string]bool{start.ID: true},
		Described: map[string]bool{},
		Market:    GeneratePrices(u, start, rng),
	}
	require.NoError(t, st.Check(u))
	return st
}

func texts(lines []models.Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func linesWithStyle(lines []models.Line, s models.Style) []string {
	var out []string
	for _, l := range lines {
		if l.Style == s {
			out = append(out, l.Text)
		}
	}
	return out
}
