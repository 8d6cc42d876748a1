// Package main is the entry point for Delvewood.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/delvewood/internal/game"
	"github.com/samdwyer/delvewood/internal/telemetry"
	"github.com/samdwyer/delvewood/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	seed := flag.Uint64("seed", cfg.Seed, "world seed (0 picks one)")
	fov := flag.Int("fov", cfg.FOVRadius, "sight radius in cells")
	dump := flag.String("dump", "", `print a map and exit: "overworld" or "D:L" for dungeon D level L`)
	logPath := flag.String("log", "delvewood.log", "log file while the terminal is in use")
	flag.Parse()

	cfg.Seed = *seed
	cfg.FOVRadius = *fov

	ctx := context.Background()

	if *dump != "" {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if err := dumpMap(ctx, os.Stdout, cfg, *dump, logger); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	cfg.Telemetry.RunID = g.RunID().String()
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
		logger.Info("telemetry disabled")
	case err != nil:
		// Continue without telemetry - the game still works
		logger.Warn("telemetry setup failed", "error", err)
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// dumpMap generates the world and writes one of its maps as text.
func dumpMap(ctx context.Context, out io.Writer, cfg game.Config, which string, logger *slog.Logger) error {
	seed := cfg.ResolveSeed(time.Now())
	w, err := world.NewWorld(ctx, seed, cfg.MapGen)
	if err != nil {
		return err
	}
	logger.Info("world generated", "seed", seed, "dungeons", len(w.Dungeons))

	grid := w.Overworld
	if which != "overworld" {
		var d, l int
		if _, err := fmt.Sscanf(which, "%d:%d", &d, &l); err != nil {
			return fmt.Errorf("parse -dump %q: %w", which, err)
		}
		if d < 0 || d >= len(w.Dungeons) || l < 0 || l >= w.Dungeons[d].Depth() {
			return fmt.Errorf("%w: dungeon %d level %d", world.ErrUnknownDungeon, d, l)
		}
		grid = w.Dungeons[d].Levels[l]
	}

	_, err = fmt.Fprint(out, grid.String())
	return err
}
