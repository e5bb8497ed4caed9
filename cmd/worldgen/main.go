// Package main provides the world generation inspector. It wires together
// configuration, the deterministic generator, and the movement resolver,
// then prints generation statistics and a short sample expedition.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/Linzell/space-looter-sub000/internal/config"
	"github.com/Linzell/space-looter-sub000/internal/game/character"
	"github.com/Linzell/space-looter-sub000/internal/game/dice"
	"github.com/Linzell/space-looter-sub000/internal/game/event"
	"github.com/Linzell/space-looter-sub000/internal/game/movement"
	"github.com/Linzell/space-looter-sub000/internal/game/reward"
	"github.com/Linzell/space-looter-sub000/internal/game/world"
	"github.com/Linzell/space-looter-sub000/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (empty uses defaults)")
	seed := flag.Uint64("seed", 0, "override the world seed (0 keeps the configured seed)")
	steps := flag.Int("steps", 10, "sample expedition length in tiles")
	flag.Parse()

	// Load configuration
	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefaults()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting world generation",
		zap.Uint64("seed", cfg.World.Seed),
		zap.Int("biome_cell_size", cfg.World.BiomeCellSize),
		zap.Int("generation_radius", cfg.World.GenerationRadius),
	)

	// Load event templates
	templates := event.DefaultTemplates()
	if cfg.Events.TemplatesPath != "" {
		templates, err = event.LoadTemplatesFromFile(cfg.Events.TemplatesPath)
		if err != nil {
			logger.Fatal("loading event templates", zap.Error(err))
		}
	}

	// Generate the region around the origin
	gen := world.NewGeneratorWithCellSize(cfg.World.Seed, cfg.World.BiomeCellSize)
	tiles := world.NewTileMap(gen, observability.ForComponent(logger, "world"))

	genStart := time.Now()
	generated := tiles.PopulateAround(world.Origin(), cfg.World.GenerationRadius)
	logger.Info("region generated",
		zap.Int("tiles", generated),
		zap.Duration("elapsed", time.Since(genStart)),
	)

	stats := tiles.Stats()
	fmt.Print(stats)

	// Walk a sample expedition east from the origin
	src := dice.NewCryptoSource()
	resolver := movement.NewResolver(tiles, templates, src, observability.ForComponent(logger, "movement"))
	rewards := reward.NewService(src, observability.ForComponent(logger, "reward"))

	player := character.Player{
		Position:       world.Origin(),
		MovementPoints: cfg.Player.MaxMovementPoints,
		Level:          cfg.Player.StartingLevel,
		Stats:          character.StartingStats(),
	}

	fmt.Printf("\nsample expedition (%d steps east):\n", *steps)
	for i := 0; i < *steps; i++ {
		to := player.Position.Offset(1, 0, 0)
		result, err := resolver.AttemptMovement(player, to)
		if err != nil {
			fmt.Printf("  %s blocked: %v\n", to, err)
			break
		}
		player.Position = result.To
		player.MovementPoints -= result.Cost

		tile := tiles.TileAt(result.To)
		line := fmt.Sprintf("  %s %-11s roll %-8s %s",
			result.To, tile.Terrain, result.Dice, result.Category)
		if result.Event != nil {
			payout, err := rewards.CalculateEventRewards(
				result.Event.Type, result.Dice.FinalResult, player.Level, player.Stats)
			if err != nil {
				logger.Fatal("calculating rewards", zap.Error(err))
			}
			line += fmt.Sprintf(" | %s: %s", result.Event.Title, payout.Outcome.Description)
		}
		fmt.Println(line)

		if player.MovementPoints <= 0 {
			fmt.Println("  out of movement points")
			break
		}
	}

	logger.Info("done",
		zap.Int("tiles_cached", tiles.TileCount()),
		zap.Int("nodes", len(tiles.Nodes())),
		zap.Duration("elapsed", time.Since(start)),
	)
}
