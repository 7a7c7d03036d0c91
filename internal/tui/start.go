package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"github.com/tatianab/tradewinds/internal/config"
	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/logging"
	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
)

// Start asks for the captain and ship names and runs the game until the
// player quits.
func Start() error {
	captain, ship, err := askNames()
	if err != nil {
		return err
	}
	return StartAs(captain, ship)
}

// StartAs runs the game with the given names. Blank names take the catalog
// defaults.
func StartAs(captain, ship string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	universe := models.DefaultUniverse()
	rng := engine.NewRand(cfg.Seed)
	newEngine := func() *engine.Engine {
		eng := engine.NewEngine(universe, engine.WithRand(rng), engine.WithLogger(logger))
		eng.Initialize(captain, ship)
		return eng
	}

	logger.Info("starting tui", zap.Int64("seed", cfg.Seed), zap.String("transcripts", cfg.TranscriptDir))
	return Run(newEngine, cfg.TranscriptDir, logger)
}

func askNames() (captain, ship string, err error) {
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Captain name").
				Description("Leave blank to be called Captain").
				Value(&captain),
			huh.NewInput().
				Title("Ship name").
				Description("Leave blank for the Starwind").
				Value(&ship),
		),
	).Run()
	if err != nil {
		return "", "", errors.Wrap(err, "name form aborted")
	}
	return captain, ship, nil
}
