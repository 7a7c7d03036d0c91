package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/tatianab/tradewinds/internal/autopilot"
	"github.com/tatianab/tradewinds/internal/config"
	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/logging"
	"github.com/tatianab/tradewinds/internal/models"
)

func main() {
	turns := flag.Int("turns", 20, "number of commands the autopilot plays")
	verbose := flag.Bool("v", false, "print the full game output for every turn")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireGemini(); err != nil {
		log.Fatalf("Autopilot needs Gemini: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	pilot, closeClient, err := autopilot.Dial(ctx, cfg.GeminiAPIKey, cfg.Model, logger)
	if err != nil {
		log.Fatalf("Failed to create player client: %v", err)
	}
	defer closeClient()

	eng := engine.NewEngine(models.DefaultUniverse(),
		engine.WithRand(engine.NewRand(cfg.Seed)),
		engine.WithLogger(logger))
	eng.Initialize("Autopilot", "Gemini")

	start := eng.Credits()
	fmt.Printf("--- %s aboard the %s at %s with %d credits ---\n\n",
		eng.PlayerName(), eng.ShipName(), eng.LocationName(), start)

	err = autopilot.Play(ctx, eng, pilot, *turns, func(t autopilot.Turn) {
		fmt.Printf("--- Turn %d ---\n", t.Number)
		fmt.Printf("Command: %s\n", t.Command)
		if t.Reason != "" {
			fmt.Printf("Reason: %s\n", t.Reason)
		}
		if *verbose {
			for _, l := range t.Lines {
				fmt.Println(l.Text)
			}
		} else if len(t.Lines) > 0 {
			fmt.Printf("Game: %s\n", t.Lines[0].Text)
		}
		fmt.Printf("Credits=%d, Days=%d, Cargo=%d/%d, Location=%s\n\n",
			eng.Credits(), eng.DaysElapsed(), eng.CargoCount(), eng.MaxCargo(), eng.LocationName())
	})
	if err != nil {
		log.Fatalf("Simulation stopped: %v", err)
	}

	fmt.Printf("Final: %d credits (%+d) after %d days, %d locations visited.\n",
		eng.Credits(), eng.Credits()-start, eng.DaysElapsed(), len(eng.Snapshot().Visited))
}
