package engine

import "conquest/game"

// MaxMoves caps a run so a stalling pair of actors cannot loop forever.
const MaxMoves = 10000

// Actor supplies moves for one player. When it is the player's turn the
// loop hands over the game and the actor issues exactly one facade
// operation. The engine never picks a move itself.
type Actor interface {
	Act(g *game.Game) error
}
