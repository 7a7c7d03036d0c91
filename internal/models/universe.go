package models

import (
	_ "embed"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/universe.yaml
var defaultUniverse []byte

// Universe is the read-only registry of commodities and locations.
// Slices keep the declared catalog order, which is the resolution order.
type Universe struct {
	Start       StartConfig `yaml:"start"`
	Commodities []Commodity `yaml:"commodities"`
	Locations   []Location  `yaml:"locations"`

	commodityIndex map[string]int
	locationIndex  map[string]int
}

// LoadUniverse parses and validates a universe definition.
func LoadUniverse(data []byte) (*Universe, error) {
	var u Universe
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, errors.Wrap(err, "failed to parse universe")
	}
	if err := u.index(); err != nil {
		return nil, err
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// DefaultUniverse returns the embedded catalog. It panics if the embedded
// data is invalid, which can only happen through a broken build.
func DefaultUniverse() *Universe {
	u, err := LoadUniverse(defaultUniverse)
	if err != nil {
		panic(fmt.Sprintf("embedded universe is invalid: %v", err))
	}
	return u
}

func (u *Universe) index() error {
	u.commodityIndex = make(map[string]int, len(u.Commodities))
	for i, c := range u.Commodities {
		if c.ID == "" {
			return errors.Errorf("commodity %d has no id", i)
		}
		if _, dup := u.commodityIndex[c.ID]; dup {
			return errors.Errorf("duplicate commodity id %q", c.ID)
		}
		u.commodityIndex[c.ID] = i
	}

	u.locationIndex = make(map[string]int, len(u.Locations))
	for i, l := range u.Locations {
		if l.ID == "" {
			return errors.Errorf("location %d has no id", i)
		}
		if _, dup := u.locationIndex[l.ID]; dup {
			return errors.Errorf("duplicate location id %q", l.ID)
		}
		u.locationIndex[l.ID] = i
	}
	return nil
}

func (u *Universe) validate() error {
	if len(u.Commodities) == 0 {
		return errors.New("universe has no commodities")
	}
	for _, c := range u.Commodities {
		if c.BasePrice <= 0 {
			return errors.Errorf("commodity %q: base price must be positive, got %d", c.ID, c.BasePrice)
		}
		if c.Volatility <= 0 || c.Volatility > 1 {
			return errors.Errorf("commodity %q: volatility must be in (0,1], got %v", c.ID, c.Volatility)
		}
	}

	for _, l := range u.Locations {
		for _, id := range append(append([]string{}, l.Produces...), l.Consumes...) {
			if !u.HasCommodity(id) {
				return errors.Errorf("location %q references unknown commodity %q", l.ID, id)
			}
		}
		for _, r := range l.Routes {
			if !u.HasLocation(r.To) {
				return errors.Errorf("location %q has a route to unknown location %q", l.ID, r.To)
			}
			if r.Days < 0 {
				return errors.Errorf("location %q: negative travel time to %q", l.ID, r.To)
			}
		}
	}

	if !u.HasLocation(u.Start.Location) {
		return errors.Errorf("start location %q does not exist", u.Start.Location)
	}
	if u.Start.Credits < 0 {
		return errors.Errorf("starting credits must not be negative, got %d", u.Start.Credits)
	}
	if u.Start.MaxCargo <= 0 {
		return errors.Errorf("cargo capacity must be positive, got %d", u.Start.MaxCargo)
	}
	return nil
}

// HasCommodity reports whether id is a catalog commodity.
func (u *Universe) HasCommodity(id string) bool {
	_, ok := u.commodityIndex[id]
	return ok
}

// HasLocation reports whether id is a known location.
func (u *Universe) HasLocation(id string) bool {
	_, ok := u.locationIndex[id]
	return ok
}

// Commodity returns the commodity with the given id. Unknown ids are a
// programming error and panic.
func (u *Universe) Commodity(id string) *Commodity {
	i, ok := u.commodityIndex[id]
	if !ok {
		panic(fmt.Sprintf("models: unknown commodity id %q", id))
	}
	return &u.Commodities[i]
}

// Location returns the location with the given id. Unknown ids panic.
func (u *Universe) Location(id string) *Location {
	i, ok := u.locationIndex[id]
	if !ok {
		panic(fmt.Sprintf("models: unknown location id %q", id))
	}
	return &u.Locations[i]
}

// CommodityNames lists display names in catalog order.
func (u *Universe) CommodityNames() []string {
	names := make([]string, 0, len(u.Commodities))
	for _, c := range u.Commodities {
		names = append(names, c.Name)
	}
	return names
}
