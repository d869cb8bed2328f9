package game

import "fmt"

// Player holds the per-player counters. The slice of players is created
// once by NewGame and never resized; Index is stable for the whole game.
// Fields are exported for the presentation layer to read, but must only
// be mutated through engine operations.
type Player struct {
	Index            int
	Name             string
	Defeated         bool
	OwnedTerritories int
	DraftArmies      int
	SingleStarCards  int
	DoubleStarCards  int
	CapturesThisTurn int
	ContinentBonus   int
}

func newPlayer(index int) *Player {
	return &Player{
		Index: index,
		Name:  fmt.Sprintf("Player%d", index+1),
	}
}

// Stars is the total star value of the player's cards.
func (p *Player) Stars() int {
	return p.SingleStarCards + 2*p.DoubleStarCards
}

// resetTurn clears the per-turn transient counters.
func (p *Player) resetTurn() {
	p.CapturesThisTurn = 0
}
