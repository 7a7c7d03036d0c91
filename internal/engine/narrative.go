package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tatianab/tradewinds/internal/models"
)

// narrative accumulates output lines for one command.
type narrative []models.Line

func (n *narrative) add(style models.Style, text string) {
	*n = append(*n, models.Line{Text: text, Style: style})
}

func (n *narrative) addf(style models.Style, format string, args ...interface{}) {
	n.add(style, fmt.Sprintf(format, args...))
}

func (n *narrative) blank() {
	n.add(models.StyleNormal, "")
}

func (n narrative) lines() []models.Line {
	return []models.Line(n)
}

func single(style models.Style, text string) []models.Line {
	return []models.Line{{Text: text, Style: style}}
}

func credits(amount int) string {
	return humanize.Comma(int64(amount))
}

// days prints travel times the way the route table declares them: 0.5, 1, 2.8.
func days(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

func collapse(desc string) string {
	return strings.Join(strings.Fields(desc), " ")
}

// lookAround describes the current location. The first time a location is
// described the long text is used and the location is marked described.
func lookAround(u *models.Universe, st State) (State, []models.Line) {
	loc := u.Location(st.Location)
	var n narrative

	if !st.Described[loc.ID] {
		n.add(models.StyleLocation, "**"+strings.ToUpper(loc.Name)+"**")
		n.add(models.StyleDescription, collapse(loc.LongDesc))
		st = st.Clone()
		if st.Described == nil {
			st.Described = make(map[string]bool)
		}
		st.Described[loc.ID] = true
	} else {
		n.addf(models.StyleLocation, "**%s** (%s)", loc.Name, loc.System)
		n.add(models.StyleDescription, loc.ShortDesc)
	}
	n.blank()
	n.add(models.StyleAtmosphere, "*"+loc.Atmosphere+"*")

	if len(loc.Produces) > 0 || len(loc.Consumes) > 0 {
		n.blank()
		n.add(models.StyleDescription, "You notice significant commercial activity here.")
		if len(loc.Produces) > 0 {
			n.add(models.StyleSuccess, "Local production: "+strings.Join(loc.Produces, ", "))
		}
		if len(loc.Consumes) > 0 {
			n.add(models.StyleWarning, "High demand for: "+strings.Join(loc.Consumes, ", "))
		}
	}

	n.blank()
	n.add(models.StylePrompt, "Type 'destinations' to see where you can travel.")
	n.add(models.StylePrompt, "Type 'market' to check commodity prices.")
	return st, n.lines()
}

func describeLocation(u *models.Universe, st State) []models.Line {
	loc := u.Location(st.Location)
	var n narrative
	n.add(models.StyleTitle, "**"+strings.ToUpper(loc.Name)+"**")
	n.add(models.StyleDescription, "System: "+loc.System)
	n.addf(models.StyleDescription, "Distance from Earth: %v light-years", loc.DistanceFromEarth)
	n.blank()
	n.add(models.StyleDescription, collapse(loc.LongDesc))
	n.blank()
	n.add(models.StyleAtmosphere, "*"+loc.Atmosphere+"*")
	return n.lines()
}

func describeShip(st State) []models.Line {
	var n narrative
	n.add(models.StyleTitle, "**"+strings.ToUpper(st.Ship)+"**")
	n.blank()
	n.add(models.StyleDescription, "Your trusty starship is a medium-class trading vessel, built for "+
		"reliability and cargo capacity rather than speed or luxury. The cockpit is cramped but "+
		"functional, with nav displays showing your current location and fuel reserves.")
	n.addf(models.StyleDescription, "The cargo bay can hold up to %d units of goods, currently organized in secure containers.", st.MaxCargo)
	n.blank()
	n.addf(models.StyleDescription, "Current cargo: %d/%d units", st.CargoCount(), st.MaxCargo)
	n.addf(models.StyleSuccess, "Credits available: %s", credits(st.Credits))
	n.addf(models.StyleDescription, "Days traveled: %d", st.DaysElapsed)
	return n.lines()
}

func showMarket(u *models.Universe, st State) []models.Line {
	loc := u.Location(st.Location)
	var n narrative
	n.add(models.StyleTitle, "**MARKET PRICES AT "+strings.ToUpper(loc.Name)+"**")
	n.blank()
	n.add(models.StyleDescription, "Commodity          Price    Market Notes")
	n.add(models.StyleDescription, strings.Repeat("-", 50))

	for _, c := range u.Commodities {
		notes, style := "Standard pricing", models.StyleDescription
		switch {
		case loc.IsProduced(c.ID):
			notes, style = "📉 LOCAL PRODUCTION (Cheap!)", models.StyleSuccess
		case loc.IsConsumed(c.ID):
			notes, style = "📈 HIGH DEMAND (Expensive!)", models.StyleWarning
		}
		n.addf(style, "%-18s %3d cr   %s", c.Name, st.Market.Price(c.ID), notes)
	}

	n.blank()
	n.add(models.StylePrompt, "Type 'buy <commodity>' to purchase goods")
	n.add(models.StylePrompt, "Type 'sell <commodity>' to sell goods")
	n.add(models.StylePrompt, "Type 'examine <commodity>' to learn more about an item")
	return n.lines()
}

func showInventory(u *models.Universe, st State) []models.Line {
	cargo := st.CargoCount()
	var n narrative
	n.add(models.StyleTitle, "**CARGO MANIFEST - "+strings.ToUpper(st.Ship)+"**")
	n.addf(models.StyleDescription, "Used: %d/%d units", cargo, st.MaxCargo)
	n.blank()

	if len(st.Inventory) == 0 {
		n.add(models.StyleDescription, "Your cargo hold is empty.")
	} else {
		n.add(models.StyleDescription, "Current cargo:")
		total := 0
		for _, c := range u.Commodities {
			qty := st.Inventory[c.ID]
			if qty == 0 {
				continue
			}
			value := qty * st.Market.Price(c.ID)
			total += value
			n.addf(models.StyleDescription, "  %2d units of %s (worth %s cr here)", qty, c.Name, credits(value))
		}
		n.blank()
		n.addf(models.StyleSuccess, "Estimated total value: %s credits", credits(total))
	}

	n.addf(models.StyleDescription, "Available cargo space: %d units", st.MaxCargo-cargo)
	return n.lines()
}

func showStatus(u *models.Universe, st State) []models.Line {
	loc := u.Location(st.Location)
	var n narrative
	n.add(models.StyleTitle, "**CAPTAIN "+strings.ToUpper(st.Captain)+"**")
	n.add(models.StyleDescription, "Ship: "+st.Ship)
	n.add(models.StyleSuccess, "Credits: "+credits(st.Credits))
	n.add(models.StyleDescription, "Current location: "+loc.Name)
	n.add(models.StyleDescription, "System: "+loc.System)
	n.addf(models.StyleDescription, "Days elapsed: %d", st.DaysElapsed)
	n.addf(models.StyleDescription, "Cargo: %d/%d units", st.CargoCount(), st.MaxCargo)
	n.addf(models.StyleDescription, "Locations visited: %d", len(st.Visited))
	return n.lines()
}

func examineCommodity(u *models.Universe, st State, phrase string) []models.Line {
	id, ok := ResolveCommodity(u, phrase)
	if !ok {
		var n narrative
		n.addf(models.StyleError, "I don't recognize '%s'.", phrase)
		n.add(models.StyleDescription, "Available commodities: "+strings.Join(u.CommodityNames(), ", "))
		return n.lines()
	}

	c := u.Commodity(id)
	loc := u.Location(st.Location)
	var n narrative
	n.add(models.StyleTitle, "**"+strings.ToUpper(c.Name)+"**")
	n.blank()
	n.add(models.StyleDescription, c.Description)
	n.blank()
	n.addf(models.StyleDescription, "Current price here: %d credits per unit", st.Market.Price(id))
	n.addf(models.StyleDescription, "Base market value: %d credits", c.BasePrice)

	switch {
	case loc.IsProduced(id):
		n.add(models.StyleSuccess, "✅ Locally produced - prices are LOW")
	case loc.IsConsumed(id):
		n.add(models.StyleWarning, "🔥 High local demand - prices are HIGH")
	default:
		n.add(models.StyleDescription, "💰 Standard market pricing")
	}

	if owned := st.Inventory[id]; owned > 0 {
		n.addf(models.StyleDescription, "You currently have %d units in your cargo hold", owned)
	}
	return n.lines()
}

func showHelp() []models.Line {
	var n narrative
	n.add(models.StyleTitle, "TRADEWINDS COMMANDS:")
	n.blank()
	n.add(models.StyleTitle, "BASIC COMMANDS:")
	n.add(models.StyleDescription, "  look                 - Look around current location")
	n.add(models.StyleDescription, "  travel <destination> - Travel to another location")
	n.add(models.StyleDescription, "  destinations         - Show travel routes")
	n.add(models.StyleDescription, "  market               - Show market prices")
	n.add(models.StyleDescription, "  buy <commodity>      - Purchase goods")
	n.add(models.StyleDescription, "  sell <commodity>     - Sell goods")
	n.add(models.StyleDescription, "  status               - Show credits, cargo, and stats")
	n.add(models.StyleDescription, "  inventory            - List your cargo")
	n.add(models.StyleDescription, "  commands             - Show the full command list")
	n.blank()
	n.add(models.StyleTitle, "EXAMPLES:")
	n.add(models.StylePrompt, "  • go to mars colony")
	n.add(models.StylePrompt, "  • buy some electronics")
	n.add(models.StylePrompt, "  • examine luxury goods")
	n.blank()
	n.add(models.StylePrompt, "💡 TIP: The parser understands natural language!")
	return n.lines()
}

// showCommands lists every verb family with its synonyms, straight from the
// parser's table so the two never drift apart.
func showCommands() []models.Line {
	var n narrative
	n.add(models.StyleTitle, "TRADEWINDS - COMPLETE COMMAND REFERENCE")
	n.blank()
	for _, v := range verbOrder {
		n.addf(models.StyleDescription, "  %-13s %s", v.String(), strings.Join(synonyms[v], ", "))
	}
	n.blank()
	n.add(models.StyleTitle, "EXAMINE TARGETS:")
	n.add(models.StyleDescription, "  look around | look location | look ship | look market | examine <commodity>")
	n.blank()
	n.add(models.StylePrompt, "Trades move one unit at a time.")
	return n.lines()
}

// welcome is the banner shown once when a session starts.
func welcome(u *models.Universe, st State) []models.Line {
	loc := u.Location(st.Location)
	rule := strings.Repeat("=", 60)
	var n narrative
	n.add(models.StyleNormal, rule)
	n.add(models.StyleTitle, "🚀 TRADEWINDS: A SPACE TRADING ADVENTURE 🚀")
	n.add(models.StyleNormal, rule)
	n.blank()
	n.addf(models.StyleSuccess, "Welcome aboard, %s!", st.Captain)
	n.addf(models.StyleSuccess, "You command the starship '%s'.", st.Ship)
	n.blank()
	n.addf(models.StyleDescription, "You begin your trading career with %s credits and a cargo hold that can carry %d units of goods.",
		credits(st.Credits), st.MaxCargo)
	n.addf(models.StyleDescription, "Your ship is currently docked at %s in the %s.", loc.Name, loc.System)
	n.blank()
	n.add(models.StylePrompt, "Type 'help' for a list of commands, or just start exploring!")
	n.add(models.StyleNormal, rule)
	n.blank()
	return n.lines()
}
