package engine

import (
	"fmt"

	"github.com/tatianab/tradewinds/internal/models"
)

// tradeQuantity is fixed: one unit per buy or sell command.
const tradeQuantity = 1

// ApplyBuy purchases one unit of the commodity named in phrase at the current
// snapshot price.
func ApplyBuy(u *models.Universe, st State, phrase string) (State, []models.Line) {
	if phrase == "" {
		return st, single(models.StyleError, "Buy what? Try 'buy <commodity>' or 'market' to see available goods.")
	}

	id, ok := ResolveCommodity(u, phrase)
	if !ok {
		var n narrative
		n.addf(models.StyleError, "I don't recognize '%s'.", phrase)
		n.add(models.StylePrompt, "Type 'market' to see available commodities.")
		return st, n.lines()
	}

	c := u.Commodity(id)
	cost := st.Market.Price(id) * tradeQuantity
	if st.Credits < cost {
		return st, single(models.StyleError, fmt.Sprintf("You can't afford %d units of %s. You need %d credits but only have %d.",
			tradeQuantity, c.Name, cost, st.Credits))
	}
	if st.CargoCount()+tradeQuantity > st.MaxCargo {
		return st, single(models.StyleError, "Your cargo hold is full! Sell something first.")
	}

	next := st.Clone()
	next.Credits -= cost
	if next.Inventory == nil {
		next.Inventory = make(map[string]int)
	}
	next.Inventory[id] += tradeQuantity

	var n narrative
	n.addf(models.StyleSuccess, "Purchased %d units of %s for %s credits.", tradeQuantity, c.Name, credits(cost))
	n.addf(models.StyleDescription, "Credits remaining: %s", credits(next.Credits))

	loc := u.Location(st.Location)
	switch {
	case loc.IsProduced(id):
		n.add(models.StyleSuccess, "💡 Good buy! This commodity is produced locally, so prices are low.")
	case loc.IsConsumed(id):
		n.add(models.StyleWarning, "⚠️  Expensive here! Consider selling this elsewhere for better profit.")
	}
	return next, n.lines()
}

// ApplySell sells one unit of the commodity named in phrase.
func ApplySell(u *models.Universe, st State, phrase string) (State, []models.Line) {
	if phrase == "" {
		return st, single(models.StyleError, "Sell what? Try 'sell <commodity>' or 'inventory' to see what you have.")
	}

	id, ok := ResolveCommodity(u, phrase)
	if !ok {
		var n narrative
		n.addf(models.StyleError, "I don't recognize '%s'.", phrase)
		n.add(models.StylePrompt, "Type 'inventory' to see what you have.")
		return st, n.lines()
	}

	c := u.Commodity(id)
	owned := st.Inventory[id]
	if owned <= 0 {
		return st, single(models.StyleError, fmt.Sprintf("You don't have any %s to sell.", c.Name))
	}

	qty := tradeQuantity
	if owned < qty {
		qty = owned
	}
	earned := st.Market.Price(id) * qty

	next := st.Clone()
	next.Credits += earned
	next.Inventory[id] -= qty
	if next.Inventory[id] <= 0 {
		delete(next.Inventory, id)
	}

	var n narrative
	n.addf(models.StyleSuccess, "Sold %d units of %s for %s credits.", qty, c.Name, credits(earned))
	n.addf(models.StyleDescription, "Credits available: %s", credits(next.Credits))

	loc := u.Location(st.Location)
	switch {
	case loc.IsConsumed(id):
		n.add(models.StyleSuccess, "💰 Excellent sale! This commodity is in high demand here.")
	case loc.IsProduced(id):
		n.add(models.StyleWarning, "📉 Low prices here since it's locally produced. Consider selling elsewhere.")
	}
	return next, n.lines()
}
