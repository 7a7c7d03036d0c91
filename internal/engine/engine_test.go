package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(nil, WithRand(constRand(0.5)), WithLogger(zap.NewNop()))
	e.Initialize("Vela", "Kestrel")
	return e
}

func TestEngineRequiresInitialize(t *testing.T) {
	e := NewEngine(nil)
	assert.False(t, e.Active())
	assert.Panics(t, func() { e.SubmitCommand("look") })
	assert.Panics(t, func() { e.Credits() })
	assert.Panics(t, func() { e.LookAround() })
}

func TestEngineInitialize(t *testing.T) {
	e := newTestEngine(t)

	assert.True(t, e.Active())
	assert.Equal(t, "Vela", e.PlayerName())
	assert.Equal(t, "Kestrel", e.ShipName())
	assert.Equal(t, 1000, e.Credits())
	assert.Equal(t, 0, e.DaysElapsed())
	assert.Equal(t, 0, e.CargoCount())
	assert.Equal(t, 50, e.MaxCargo())
	assert.Equal(t, "Earth Station", e.LocationName())
	assert.Equal(t, []string{"earth_station"}, e.Snapshot().VisitedIDs())
	assert.Panics(t, func() { e.Initialize("again", "again") })
}

func TestEngineInitializeDefaults(t *testing.T) {
	e := NewEngine(nil, WithRand(constRand(0.5)))
	e.Initialize("  ", "")
	assert.Equal(t, "Captain", e.PlayerName())
	assert.Equal(t, "Starwind", e.ShipName())
}

func TestEngineLookAroundFirstThenShort(t *testing.T) {
	e := newTestEngine(t)

	first := texts(e.LookAround())
	assert.Contains(t, first, "**EARTH STATION**")
	assert.Contains(t, first, "Local production: luxury, electronics, medicine")
	assert.Contains(t, first, "High demand for: materials, metals")

	again := texts(e.SubmitCommand("look"))
	assert.Contains(t, again, "**Earth Station** (Sol System)")
	assert.NotContains(t, again, "**EARTH STATION**")
}

func TestEngineWelcome(t *testing.T) {
	e := newTestEngine(t)
	out := texts(e.Welcome())
	assert.Contains(t, out, "Welcome aboard, Vela!")
	assert.Contains(t, out, "You command the starship 'Kestrel'.")
	assert.Contains(t, out, "1,000 credits")
	assert.Contains(t, out, "docked at Earth Station in the Sol System.")
	assert.Contains(t, out, "**EARTH STATION**")
	assert.True(t, e.Snapshot().Described["earth_station"])
}

func TestEngineBlankInput(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.SubmitCommand(""))
	assert.Empty(t, e.SubmitCommand("   \t"))
	assert.Empty(t, e.History())
}

func TestEngineHistory(t *testing.T) {
	e := newTestEngine(t)
	e.SubmitCommand("market")
	e.SubmitCommand("frobnicate")

	h := e.History()
	assert.Equal(t, []string{"market", "frobnicate"}, h)
	h[0] = "changed"
	assert.Equal(t, "market", e.History()[0])
}

func TestEngineUnknownCommand(t *testing.T) {
	e := newTestEngine(t)
	before := e.Snapshot()

	lines := e.SubmitCommand("frobnicate")
	require.NotEmpty(t, lines)
	assert.Equal(t, models.StyleError, lines[0].Style)
	assert.Contains(t, lines[0].Text, "frobnicate")
	assert.Equal(t, before, e.Snapshot())
}

func TestEngineUnknownCommandRotatesPhrasing(t *testing.T) {
	e := newTestEngine(t)

	seen := map[string]bool{}
	var first string
	for i := 0; i < len(unknownTemplates); i++ {
		text := e.SubmitCommand("xyzzy")[0].Text
		if i == 0 {
			first = text
		}
		seen[text] = true
	}
	assert.Len(t, seen, len(unknownTemplates))
	assert.Equal(t, first, e.SubmitCommand("xyzzy")[0].Text)
}

func TestEngineUnknownCommandHints(t *testing.T) {
	e := newTestEngine(t)

	tests := map[string]string{
		"goto mars":   "travel <destination>",
		"buying food": "buy <commodity>",
		"trader joe":  "sell <commodity>",
	}
	for raw, want := range tests {
		lines := e.SubmitCommand(raw)
		require.Len(t, lines, 2, raw)
		assert.Equal(t, models.StylePrompt, lines[1].Style)
		assert.Contains(t, lines[1].Text, want)
	}

	assert.Len(t, e.SubmitCommand("frobnicate"), 1)
}

func TestEngineTradingSession(t *testing.T) {
	e := newTestEngine(t)

	e.SubmitCommand("buy some food")
	e.SubmitCommand("purchase water")
	assert.Equal(t, 1000-10-5, e.Credits())
	assert.Equal(t, 2, e.CargoCount())

	lines := e.SubmitCommand("go to mars")
	assert.True(t, models.HasStyle(lines, models.StyleLocation))
	assert.Equal(t, "New Olympia - Mars Colony", e.LocationName())
	assert.Equal(t, 1000-15-12, e.Credits())

	lines = e.SubmitCommand("sell food")
	assert.Contains(t, texts(lines), "Excellent sale!")
	assert.Equal(t, 1, e.CargoCount())

	inv := texts(e.SubmitCommand("inventory"))
	assert.Contains(t, inv, "Used: 1/50 units")
	assert.Contains(t, inv, "units of water")

	status := texts(e.SubmitCommand("status"))
	assert.Contains(t, status, "**CAPTAIN VELA**")
	assert.Contains(t, status, "Locations visited: 2")
}

func TestEngineExamineTargets(t *testing.T) {
	e := newTestEngine(t)

	assert.Contains(t, texts(e.SubmitCommand("look ship")), "**KESTREL**")
	assert.Contains(t, texts(e.SubmitCommand("examine station")), "Distance from Earth")
	assert.Contains(t, texts(e.SubmitCommand("check prices")), "**MARKET PRICES AT EARTH STATION**")
	assert.Contains(t, texts(e.SubmitCommand("inspect luxury goods")), "**LUXURY GOODS**")

	lines := e.SubmitCommand("examine spice")
	assert.Equal(t, models.StyleError, lines[0].Style)
	assert.Contains(t, texts(lines), "Available commodities: food, water")
}

func TestEngineMarketListsCatalog(t *testing.T) {
	e := newTestEngine(t)
	out := texts(e.SubmitCommand("prices"))
	for _, c := range e.Universe().Commodities {
		assert.Contains(t, out, c.Name)
	}
	assert.Contains(t, out, "LOCAL PRODUCTION")
	assert.Contains(t, out, "HIGH DEMAND")
}

func TestEngineBusinessAndFactoryAreStubs(t *testing.T) {
	e := newTestEngine(t)
	before := e.Snapshot()

	for _, raw := range []string{"loan 500", "incorporate", "build refinery", "automate"} {
		lines := e.SubmitCommand(raw)
		require.NotEmpty(t, lines)
		assert.Equal(t, models.StyleWarning, lines[0].Style)
		assert.Contains(t, lines[0].Text, "not yet available")
	}
	assert.Equal(t, before, e.Snapshot())
}

func TestEngineHelpAndCommands(t *testing.T) {
	e := newTestEngine(t)
	assert.Contains(t, texts(e.SubmitCommand("help")), "TRADEWINDS COMMANDS:")

	out := texts(e.SubmitCommand("commands"))
	assert.Contains(t, out, "journey")
	assert.Contains(t, out, "unload")
	assert.Contains(t, out, "factories")
}

func TestEngineSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(t)
	snap := e.Snapshot()
	snap.Inventory["weapons"] = 10
	snap.Market["food"] = 1

	assert.Equal(t, 0, e.CargoCount())
	assert.Equal(t, 10, e.Snapshot().Market.Price("food"))
}

func TestEngineLogsTravel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := NewEngine(nil, WithRand(constRand(0.5)), WithLogger(zap.New(core)))
	e.Initialize("Vela", "Kestrel")

	e.SubmitCommand("travel europa")

	entries := logs.FilterMessage("travel").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "europa_station", entries[0].ContextMap()["to"])
	assert.EqualValues(t, 25, entries[0].ContextMap()["fuel"])
}
