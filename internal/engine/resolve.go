package engine

import (
	"strings"

	"github.com/tatianab/tradewinds/internal/models"
)

// ResolveCommodity finds the first commodity, in catalog order, whose display
// name appears in text or whose id equals text. Matching is case-insensitive
// and deliberately loose so "I want electronics please" still resolves.
func ResolveCommodity(u *models.Universe, text string) (string, bool) {
	phrase := strings.ToLower(strings.TrimSpace(text))
	if phrase == "" {
		return "", false
	}
	for _, c := range u.Commodities {
		if strings.Contains(phrase, strings.ToLower(c.Name)) || phrase == c.ID {
			return c.ID, true
		}
	}
	return "", false
}

// ResolveLocation finds the first location, in catalog order, whose name or
// system appears in text, whose id equals text, or one of whose aliases
// appears in text.
func ResolveLocation(u *models.Universe, text string) (string, bool) {
	phrase := strings.ToLower(strings.TrimSpace(text))
	if phrase == "" {
		return "", false
	}
	for _, l := range u.Locations {
		if strings.Contains(phrase, strings.ToLower(l.Name)) ||
			strings.Contains(phrase, strings.ToLower(l.System)) ||
			phrase == l.ID {
			return l.ID, true
		}
		for _, alias := range l.Aliases {
			if strings.Contains(phrase, strings.ToLower(alias)) {
				return l.ID, true
			}
		}
	}
	return "", false
}
