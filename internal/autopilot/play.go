package autopilot

import (
	"context"

	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
)

const (
	recentCommands  = 5
	fallbackCommand = "market"
)

// Turn is one played command.
type Turn struct {
	Number  int
	Command string
	Reason  string
	Lines   []models.Line
}

// Play lets the pilot drive an initialized engine for the given number of
// turns. observe, if set, is called after every turn. A failed model call
// falls back to checking the market; only a cancelled context stops play
// early.
func Play(ctx context.Context, eng *engine.Engine, p *Pilot, turns int, observe func(Turn)) error {
	last := eng.SubmitCommand("market")
	var recent []string

	for n := 1; n <= turns; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		d, err := p.NextCommand(ctx, Observe(eng, last, recent))
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn("pilot failed to choose, falling back", zap.Int("turn", n), zap.Error(err))
			d = Decision{Command: fallbackCommand, Reason: "fallback"}
		}

		last = eng.SubmitCommand(d.Command)
		recent = append(recent, d.Command)
		if len(recent) > recentCommands {
			recent = recent[len(recent)-recentCommands:]
		}

		p.logger.Debug("autopilot turn",
			zap.Int("turn", n),
			zap.String("command", d.Command),
			zap.Int("credits", eng.Credits()))
		if observe != nil {
			observe(Turn{Number: n, Command: d.Command, Reason: d.Reason, Lines: last})
		}
	}
	return nil
}
