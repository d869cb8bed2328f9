package game

// recomputeContinentBonus replaces p's cached region bonus from current
// ownership. Called after every change to p's owned-territory count;
// the cache is never read without having been recomputed first.
func (g *Game) recomputeContinentBonus(p *Player) {
	bonus := 0
	for _, region := range g.geography.Regions {
		// Cheap reject: cannot hold a region with fewer territories than it has.
		if p.OwnedTerritories < len(region.TerritoryIDs) {
			continue
		}
		holdsAll := true
		for _, id := range region.TerritoryIDs {
			if g.territories[id].Owner != p.Index {
				holdsAll = false
				break
			}
		}
		if holdsAll {
			bonus += region.Bonus
		}
	}
	p.ContinentBonus = bonus
}
