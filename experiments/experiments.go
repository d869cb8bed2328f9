package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
)

// Config describes one random-playout experiment: a number of seeded
// games at a fixed player count on the standard world map.
type Config struct {
	Name    string
	Games   int
	Players int
	Seed    uint64
	OutDir  string
}

// Run plays the configured matchups and stores the results as CSV.
// Game i uses seed Config.Seed+i, so a run is reproducible end to end.
func Run(cfg Config) error {
	log.Info().Msgf("starting %s experiment: %d games with %d players...", cfg.Name, cfg.Games, cfg.Players)

	records := make([]metrics.GameRecord, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)

		log.Info().Msgf("starting game %d of %d with seed %d...", i+1, cfg.Games, seed)

		record, err := runGame(cfg.Players, seed)
		if err != nil {
			return fmt.Errorf("game %d failed: %w", i+1, err)
		}
		record.ID = i + 1
		records = append(records, record)

		log.Info().Msgf("completed game %d of %d in %d moves, winner: %s", i+1, cfg.Games, record.Moves, record.Winner)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteGameRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	return nil
}

// runGame plays a single random-vs-random game and returns its record.
func runGame(players int, seed uint64) (metrics.GameRecord, error) {
	g, err := game.NewGame(game.WorldMap(), players, rand.New(rand.NewSource(seed)))
	if err != nil {
		return metrics.GameRecord{}, err
	}

	actors := make([]engine.Actor, players)
	for i := range actors {
		// Offset the actor seeds so they diverge from the engine draws.
		actors[i] = NewRandomActor(rand.New(rand.NewSource(seed + uint64(i)*1000 + 1)))
	}

	e, err := engine.Local(g, actors)
	if err != nil {
		return metrics.GameRecord{}, err
	}

	start := time.Now()
	winner, moves, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, err
	}

	record := metrics.GameRecord{
		Players:  players,
		Seed:     seed,
		Moves:    moves,
		Duration: time.Since(start),
	}
	if winner != nil {
		record.Winner = winner.Name
	}
	return record, nil
}
