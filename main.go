package main

import (
	"flag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"conquest/experiments"
)

func main() {
	games := flag.Int("games", 30, "Number of games to play")
	players := flag.Int("players", 2, "Number of players per game")
	seed := flag.Uint64("seed", 1, "Base seed; game i uses seed+i")
	out := flag.String("out", "results", "Output directory for experiment results")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	err := experiments.Run(experiments.Config{
		Name:    "random_playout",
		Games:   *games,
		Players: *players,
		Seed:    *seed,
		OutDir:  *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
