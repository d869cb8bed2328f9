package game

import "fmt"

// NoOwner marks a territory nobody has claimed yet. Only possible during
// the Claim stage.
const NoOwner = -1

// TerritoryInfo is the engine-owned mutable record for one territory:
// who holds it and with how many armies. Armies is 0 only while the
// territory is unclaimed.
type TerritoryInfo struct {
	Owner  int
	Armies int
}

// checkTerritory validates a caller-supplied handle against the geography.
func (g *Game) checkTerritory(id int) error {
	if id < 0 || id >= len(g.territories) {
		return fmt.Errorf("territory %d: %w", id, ErrNotFound)
	}
	return nil
}

// Territory returns a copy of the record for one territory.
func (g *Game) Territory(id int) (TerritoryInfo, error) {
	if err := g.checkTerritory(id); err != nil {
		return TerritoryInfo{}, err
	}
	return *g.territories[id], nil
}

// TerritoryCount is the number of territories in the game's geography.
func (g *Game) TerritoryCount() int {
	return len(g.territories)
}
