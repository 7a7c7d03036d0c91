package models

// Commodity is a tradable good.
type Commodity struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	BasePrice   int     `yaml:"base_price"`
	Volatility  float64 `yaml:"volatility"` // fraction in (0,1]
	Description string  `yaml:"description"`
}

// Route is a travel-graph edge out of a location.
type Route struct {
	To   string  `yaml:"to"`
	Days float64 `yaml:"days"`
}

// Location is a node in the travel graph.
type Location struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	System            string   `yaml:"system"`
	ShortDesc         string   `yaml:"short_desc"`
	LongDesc          string   `yaml:"long_desc"`
	Atmosphere        string   `yaml:"atmosphere"`
	Produces          []string `yaml:"produces"`
	Consumes          []string `yaml:"consumes"`
	DistanceFromEarth float64  `yaml:"distance_from_earth"` // light-years
	Routes            []Route  `yaml:"routes"`
	Aliases           []string `yaml:"aliases"` // short names accepted by the destination resolver
}

// TravelTime returns the days needed to reach id directly from l.
func (l *Location) TravelTime(id string) (float64, bool) {
	for _, r := range l.Routes {
		if r.To == id {
			return r.Days, true
		}
	}
	return 0, false
}

// IsProduced reports whether the commodity is produced locally.
func (l *Location) IsProduced(commodityID string) bool {
	return contains(l.Produces, commodityID)
}

// IsConsumed reports whether the commodity is in local demand.
func (l *Location) IsConsumed(commodityID string) bool {
	return contains(l.Consumes, commodityID)
}

// StartConfig is the initial player configuration.
type StartConfig struct {
	Location string `yaml:"location"`
	Credits  int    `yaml:"credits"`
	MaxCargo int    `yaml:"max_cargo"`
	Captain  string `yaml:"captain"`
	Ship     string `yaml:"ship"`
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
