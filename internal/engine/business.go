package engine

import (
	"fmt"

	"github.com/tatianab/tradewinds/internal/models"
)

// Business and factory commands are recognized so players get a clear answer,
// but they carry no state.

func (e *Engine) business(st State, cmd Command) (State, []models.Line) {
	return st, notAvailable("Business", cmd.Token)
}

func (e *Engine) factory(st State, cmd Command) (State, []models.Line) {
	return st, notAvailable("Factory", cmd.Token)
}

func notAvailable(family, token string) []models.Line {
	var n narrative
	n.add(models.StyleWarning, fmt.Sprintf("%s command '%s' is not yet available.", family, token))
	n.add(models.StylePrompt, "Stick to trading for now: 'market', 'buy <commodity>', 'sell <commodity>'.")
	return n.lines()
}
