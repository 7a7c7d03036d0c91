package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
)

// Engine runs one game session. It is not safe for concurrent use.
type Engine struct {
	universe *models.Universe
	rng      Rand
	logger   *zap.Logger

	state    *State // nil until Initialize
	history  []string
	unknowns int
}

type Option func(*Engine)

// WithRand sets the random source used for market prices.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an uninitialized session over u. A nil universe selects
// the embedded catalog.
func NewEngine(u *models.Universe, opts ...Option) *Engine {
	if u == nil {
		u = models.DefaultUniverse()
	}
	e := &Engine{universe: u}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(0)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Initialize places the player at the starting location and prices its
// market. It must be called exactly once.
func (e *Engine) Initialize(captain, ship string) {
	if e.state != nil {
		panic("engine: Initialize called twice")
	}
	start := e.universe.Start
	captain = strings.TrimSpace(captain)
	if captain == "" {
		captain = defaultString(start.Captain, "Captain")
	}
	ship = strings.TrimSpace(ship)
	if ship == "" {
		ship = defaultString(start.Ship, "Starwind")
	}

	st := State{
		Captain:   captain,
		Ship:      ship,
		Credits:   start.Credits,
		Location:  start.Location,
		Inventory: make(map[string]int),
		MaxCargo:  start.MaxCargo,
		Visited:   map[string]bool{start.Location: true},
		Described: make(map[string]bool),
		Market:    GeneratePrices(e.universe, e.universe.Location(start.Location), e.rng),
	}
	e.state = &st
	e.logger.Info("session initialized",
		zap.String("captain", captain),
		zap.String("ship", ship),
		zap.String("location", st.Location),
		zap.Int("credits", st.Credits))
}

// Active reports whether Initialize has run.
func (e *Engine) Active() bool {
	return e.state != nil
}

// SubmitCommand interprets one line of player input. Blank input produces no
// output and is not recorded.
func (e *Engine) SubmitCommand(raw string) []models.Line {
	st := e.mustState()
	cmd := Parse(raw)
	if cmd.Token == "" {
		return nil
	}
	e.history = append(e.history, raw)

	h, ok := handlers[cmd.Verb]
	if !ok {
		h = (*Engine).unknownCommand
	}
	next, lines := h(e, st, cmd)
	e.commit(next)

	e.logger.Debug("command processed",
		zap.String("raw", raw),
		zap.Stringer("verb", cmd.Verb),
		zap.Int("lines", len(lines)),
		zap.Int("credits", next.Credits))
	return lines
}

// Welcome returns the session banner followed by the first look around.
func (e *Engine) Welcome() []models.Line {
	lines := welcome(e.universe, e.mustState())
	return append(lines, e.LookAround()...)
}

// LookAround describes the current location.
func (e *Engine) LookAround() []models.Line {
	next, lines := lookAround(e.universe, e.mustState())
	e.commit(next)
	return lines
}

func (e *Engine) PlayerName() string { return e.mustState().Captain }
func (e *Engine) ShipName() string   { return e.mustState().Ship }
func (e *Engine) Credits() int       { return e.mustState().Credits }
func (e *Engine) DaysElapsed() int   { return e.mustState().DaysElapsed }
func (e *Engine) CargoCount() int    { return e.mustState().CargoCount() }
func (e *Engine) MaxCargo() int      { return e.mustState().MaxCargo }

// LocationName is the display name of the current location.
func (e *Engine) LocationName() string {
	return e.universe.Location(e.mustState().Location).Name
}

// History returns the raw commands submitted so far.
func (e *Engine) History() []string {
	return append([]string(nil), e.history...)
}

// Snapshot returns a deep copy of the session state.
func (e *Engine) Snapshot() State {
	return e.mustState().Clone()
}

func (e *Engine) Universe() *models.Universe {
	return e.universe
}

func (e *Engine) mustState() State {
	if e.state == nil {
		panic("engine: session used before Initialize")
	}
	return *e.state
}

func (e *Engine) commit(next State) {
	if err := next.Check(e.universe); err != nil {
		e.logger.DPanic("session invariant violated", zap.Error(err))
	}
	e.state = &next
}

type handler func(e *Engine, st State, cmd Command) (State, []models.Line)

var handlers map[Verb]handler

func init() {
	handlers = map[Verb]handler{
		VerbHelp:         (*Engine).help,
		VerbCommands:     (*Engine).commands,
		VerbTravel:       (*Engine).travel,
		VerbDestinations: (*Engine).destinations,
		VerbExamine:      (*Engine).examine,
		VerbInventory:    (*Engine).inventory,
		VerbStatus:       (*Engine).status,
		VerbMarket:       (*Engine).market,
		VerbBuy:          (*Engine).buy,
		VerbSell:         (*Engine).sell,
		VerbBusiness:     (*Engine).business,
		VerbFactory:      (*Engine).factory,
	}
}

func (e *Engine) help(st State, _ Command) (State, []models.Line) {
	return st, showHelp()
}

func (e *Engine) commands(st State, _ Command) (State, []models.Line) {
	return st, showCommands()
}

func (e *Engine) travel(st State, cmd Command) (State, []models.Line) {
	next, lines := ApplyTravel(e.universe, st, cmd.Phrase, e.rng)
	if next.Location != st.Location {
		e.logger.Info("travel",
			zap.String("from", st.Location),
			zap.String("to", next.Location),
			zap.Int("fuel", st.Credits-next.Credits),
			zap.Int("days", next.DaysElapsed))
	}
	return next, lines
}

func (e *Engine) destinations(st State, _ Command) (State, []models.Line) {
	return st, Destinations(e.universe, st)
}

func (e *Engine) examine(st State, cmd Command) (State, []models.Line) {
	if len(cmd.Args) == 0 {
		return lookAround(e.universe, st)
	}
	switch cmd.Args[0] {
	case "around", "here":
		return lookAround(e.universe, st)
	case "location", "station", "place":
		return st, describeLocation(e.universe, st)
	case "ship", "starship":
		return st, describeShip(st)
	case "market", "prices":
		return st, showMarket(e.universe, st)
	}
	return st, examineCommodity(e.universe, st, cmd.Phrase)
}

func (e *Engine) inventory(st State, _ Command) (State, []models.Line) {
	return st, showInventory(e.universe, st)
}

func (e *Engine) status(st State, _ Command) (State, []models.Line) {
	return st, showStatus(e.universe, st)
}

func (e *Engine) market(st State, _ Command) (State, []models.Line) {
	return st, showMarket(e.universe, st)
}

func (e *Engine) buy(st State, cmd Command) (State, []models.Line) {
	next, lines := ApplyBuy(e.universe, st, cmd.Phrase)
	if next.Credits != st.Credits {
		e.logger.Info("buy", zap.String("phrase", cmd.Phrase), zap.Int("cost", st.Credits-next.Credits))
	}
	return next, lines
}

func (e *Engine) sell(st State, cmd Command) (State, []models.Line) {
	next, lines := ApplySell(e.universe, st, cmd.Phrase)
	if next.Credits != st.Credits {
		e.logger.Info("sell", zap.String("phrase", cmd.Phrase), zap.Int("earned", next.Credits-st.Credits))
	}
	return next, lines
}

var unknownTemplates = []string{
	"I don't understand '%s'. Type 'help' for available commands.",
	"'%s' isn't a command I recognize. Try 'help' to see what you can do.",
	"I'm not sure what you mean by '%s'. Type 'help' for assistance.",
	"Unknown command: '%s'. Use 'help' to see available actions.",
}

// unknownCommand rotates through the phrasings so repeated mistakes don't
// read identically.
func (e *Engine) unknownCommand(st State, cmd Command) (State, []models.Line) {
	raw := strings.TrimSpace(cmd.Raw)
	var n narrative
	n.add(models.StyleError, fmt.Sprintf(unknownTemplates[e.unknowns%len(unknownTemplates)], raw))
	e.unknowns++

	lower := strings.ToLower(raw)
	switch {
	case containsAny(lower, "go", "move", "travel"):
		n.add(models.StylePrompt, "💡 Try 'travel <destination>' or 'destinations' to see where you can go.")
	case containsAny(lower, "buy", "purchase"):
		n.add(models.StylePrompt, "💡 Try 'buy <commodity>' or 'market' to see what's available.")
	case containsAny(lower, "sell", "trade"):
		n.add(models.StylePrompt, "💡 Try 'sell <commodity>' or 'inventory' to see what you have.")
	}
	return st, n.lines()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
