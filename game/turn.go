package game

// advanceTurn scans forward from the current player for the next
// undefeated player satisfying eligible (nil means any), wrapping around
// but stopping before reaching the current player again. On success it
// resets the outgoing player's per-turn counters and moves the pointer.
// With nobody eligible the pointer stays put and it reports false.
func (g *Game) advanceTurn(eligible func(*Player) bool) bool {
	n := len(g.players)
	for offset := 1; offset < n; offset++ {
		candidate := g.players[(g.currentPlayer+offset)%n]
		if candidate.Defeated {
			continue
		}
		if eligible != nil && !eligible(candidate) {
			continue
		}
		g.players[g.currentPlayer].resetTurn()
		g.currentPlayer = candidate.Index
		return true
	}
	return false
}
