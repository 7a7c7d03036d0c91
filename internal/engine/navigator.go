package engine

import (
	"math"
	"sort"

	"github.com/tatianab/tradewinds/internal/models"
)

const minFuelCost = 10

// FuelCost is the price in credits of a hop lasting the given days.
func FuelCost(travelDays float64) int {
	cost := int(math.Floor(travelDays * 25))
	if cost < minFuelCost {
		return minFuelCost
	}
	return cost
}

// ApplyTravel moves the ship along a direct route. Every rejection leaves the
// state untouched; on success credits, days, location, visited set and market
// all change together.
func ApplyTravel(u *models.Universe, st State, phrase string, rng Rand) (State, []models.Line) {
	if phrase == "" {
		return st, single(models.StyleError, "Travel where? Try 'travel <destination>' or 'destinations' to see options.")
	}

	destID, ok := ResolveLocation(u, phrase)
	if !ok {
		var n narrative
		n.addf(models.StyleError, "I don't know how to get to '%s'.", phrase)
		n.add(models.StylePrompt, "Type 'destinations' to see available routes.")
		return st, n.lines()
	}

	here := u.Location(st.Location)
	dest := u.Location(destID)
	travelDays, ok := here.TravelTime(destID)
	if !ok {
		var n narrative
		n.addf(models.StyleError, "There's no direct route to %s from here.", dest.Name)
		n.add(models.StylePrompt, "Type 'destinations' to see available routes.")
		return st, n.lines()
	}

	fuel := FuelCost(travelDays)
	if st.Credits < fuel {
		var n narrative
		n.addf(models.StyleError, "You need %d credits for fuel, but you only have %d.", fuel, st.Credits)
		n.add(models.StylePrompt, "Sell some cargo first to raise funds.")
		return st, n.lines()
	}

	next := st.Clone()
	next.Credits -= fuel
	next.DaysElapsed += int(math.Floor(travelDays))
	next.Location = destID
	if next.Visited == nil {
		next.Visited = make(map[string]bool)
	}
	next.Visited[destID] = true
	next.Market = GeneratePrices(u, dest, rng)

	var n narrative
	n.addf(models.StyleDescription, "Preparing for departure to %s...", dest.Name)
	n.addf(models.StyleDescription, "Fuel cost: %d credits", fuel)
	n.addf(models.StyleDescription, "Travel time: %s days", days(travelDays))
	n.blank()
	n.add(models.StyleTitle, "🚀 TRAVELING...")
	n.blank()
	if !next.Described[destID] {
		n.addf(models.StyleDescription, "After %s days of travel through the void, you arrive at", days(travelDays))
		n.addf(models.StyleDescription, "%s in the %s.", dest.Name, dest.System)
	} else {
		n.addf(models.StyleDescription, "You arrive at the familiar sight of %s.", dest.Name)
	}
	n.blank()

	next, look := lookAround(u, next)
	return next, append(n.lines(), look...)
}

type destination struct {
	loc  *models.Location
	days float64
	fuel int
}

// Destinations lists direct routes from the current location, shortest first.
func Destinations(u *models.Universe, st State) []models.Line {
	here := u.Location(st.Location)

	dests := make([]destination, 0, len(here.Routes))
	for _, r := range here.Routes {
		dests = append(dests, destination{loc: u.Location(r.To), days: r.Days, fuel: FuelCost(r.Days)})
	}
	sort.SliceStable(dests, func(i, j int) bool { return dests[i].days < dests[j].days })

	var n narrative
	n.addf(models.StyleTitle, "From %s, you can travel to:", here.Name)
	n.blank()
	if len(dests) == 0 {
		n.add(models.StyleWarning, "No direct routes available from this location.")
		return n.lines()
	}
	for _, d := range dests {
		n.addf(models.StyleLocation, "  %s (%s)", d.loc.Name, d.loc.System)
		n.addf(models.StyleDescription, "    Travel time: %s days", days(d.days))
		n.addf(models.StyleDescription, "    Fuel cost: %d credits", d.fuel)
		if st.Credits < d.fuel {
			n.add(models.StyleError, "    ⚠️  Insufficient credits for fuel!")
		}
		n.blank()
	}
	return n.lines()
}
