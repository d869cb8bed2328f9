package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"conquest/game"
)

// Engine runs a game to completion locally, one actor per player.
type Engine struct {
	Game   *game.Game
	Actors []Actor
}

// Local wires a game to its actors, indexed by player.
func Local(g *game.Game, actors []Actor) (*Engine, error) {
	if len(actors) != len(g.Players()) {
		return nil, fmt.Errorf("need %d actors, got %d", len(g.Players()), len(actors))
	}
	return &Engine{Game: g, Actors: actors}, nil
}

// Run executes the game loop until there is a winner or MaxMoves is
// reached. It returns the winner (nil when the cap was hit) and the
// number of moves played. An actor error aborts the run.
func (e *Engine) Run() (*game.Player, int, error) {
	log.Info().Msgf("%s is starting in stage %s", e.Game.CurrentPlayer().Name, e.Game.Stage())

	moves := 0
	for moves < MaxMoves {
		if e.Game.Stage() == game.StageFinished {
			winner := e.Game.Winner()
			log.Info().Msgf("game over after %d moves, winner: %s", moves, winner.Name)
			return winner, moves, nil
		}

		current := e.Game.CurrentPlayer()
		if err := e.Actors[current.Index].Act(e.Game); err != nil {
			return nil, moves, fmt.Errorf("actor for %s failed at move %d: %w", current.Name, moves, err)
		}
		moves++
	}

	log.Info().Msgf("stopped after %d moves with no winner", moves)
	return nil, moves, nil
}
