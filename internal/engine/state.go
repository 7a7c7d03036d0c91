package engine

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/tatianab/tradewinds/internal/models"
)

// Market maps commodity id to the unit price at the current location. It is
// regenerated on every arrival and never edited in place.
type Market map[string]int

// Price returns the unit price of a catalog commodity. A missing id means the
// snapshot was built against a different catalog and panics.
func (m Market) Price(id string) int {
	p, ok := m[id]
	if !ok {
		panic(fmt.Sprintf("engine: no market price for %q", id))
	}
	return p
}

// State is the whole mutable session: player, ship and the market snapshot.
// Transition functions take a State by value and return a new one; use Clone
// before changing maps.
type State struct {
	Captain     string
	Ship        string
	Credits     int
	Location    string
	Inventory   map[string]int
	MaxCargo    int
	DaysElapsed int
	Visited     map[string]bool
	// Described holds locations whose long description has been shown.
	Described map[string]bool
	Market    Market
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	c.Inventory = copyMap(s.Inventory)
	c.Visited = copyMap(s.Visited)
	c.Described = copyMap(s.Described)
	c.Market = Market(copyMap(map[string]int(s.Market)))
	return c
}

// CargoCount is the total number of units aboard.
func (s State) CargoCount() int {
	total := 0
	for _, qty := range s.Inventory {
		total += qty
	}
	return total
}

// VisitedIDs returns the visited location ids in sorted order.
func (s State) VisitedIDs() []string {
	ids := make([]string, 0, len(s.Visited))
	for id := range s.Visited {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Check returns the first violated session invariant, if any.
func (s State) Check(u *models.Universe) error {
	if s.Credits < 0 {
		return errors.Errorf("credits are negative: %d", s.Credits)
	}
	if cargo := s.CargoCount(); cargo > s.MaxCargo {
		return errors.Errorf("cargo %d exceeds capacity %d", cargo, s.MaxCargo)
	}
	for id, qty := range s.Inventory {
		if qty <= 0 {
			return errors.Errorf("inventory entry %q has quantity %d", id, qty)
		}
		if !u.HasCommodity(id) {
			return errors.Errorf("inventory holds unknown commodity %q", id)
		}
	}
	if len(s.Market) != len(u.Commodities) {
		return errors.Errorf("market has %d prices for %d commodities", len(s.Market), len(u.Commodities))
	}
	for _, c := range u.Commodities {
		p, ok := s.Market[c.ID]
		if !ok {
			return errors.Errorf("market is missing %q", c.ID)
		}
		if p < 1 {
			return errors.Errorf("market price of %q is %d", c.ID, p)
		}
	}
	if !u.HasLocation(s.Location) {
		return errors.Errorf("current location %q does not exist", s.Location)
	}
	if !s.Visited[s.Location] {
		return errors.Errorf("current location %q is not marked visited", s.Location)
	}
	return nil
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
