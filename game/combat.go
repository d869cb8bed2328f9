package game

import "fmt"

// Attacker win probabilities, indexed by attackers-1. Derived from the
// best-case dice-roll outcome frequencies; kept as literal rationals, do
// not re-derive. A single draw is compared against bothLose first and
// then against the doubleWin cumulative in that order.
var (
	// Defender rolls one die.
	singleWin = [3]float64{15.0 / 36, 125.0 / 216, 855.0 / 1296}
	// Defender rolls two dice and the outcome is not a mutual loss.
	doubleWin = [3]float64{55.0 / 216, 715.0 / 1296, 5501.0 / 7776}
	// Both sides lose one army (two defenders only).
	bothLose = [3]float64{0, 420.0 / 1296, 2611.0 / 7776}
)

// Attack resolves one battle from one territory into an adjacent enemy
// territory, committing attackers in [1,3] against defenders in [1,2].
// It reports whether the defending territory was captured. A capture
// moves the surviving committed armies in, and chains into the Invade
// stage when the source still holds more than one army. A failed attack
// only costs armies; the caller re-clamps its next commitment to the
// reduced totals.
func (g *Game) Attack(from, to, attackers, defenders int) (bool, error) {
	if g.stage != StageAttack {
		return false, fmt.Errorf("cannot attack during %s: %w", g.stage, ErrInvalidState)
	}
	if err := g.checkTerritory(from); err != nil {
		return false, err
	}
	if err := g.checkTerritory(to); err != nil {
		return false, err
	}
	p := g.players[g.currentPlayer]
	src := g.territories[from]
	dst := g.territories[to]
	if src.Owner != p.Index {
		return false, fmt.Errorf("territory %d is not owned by %s: %w", from, p.Name, ErrInvalidArgument)
	}
	if dst.Owner == p.Index {
		return false, fmt.Errorf("cannot attack own territory %d: %w", to, ErrInvalidArgument)
	}
	if !g.geography.AreAdjacent(from, to) {
		return false, fmt.Errorf("territories %d and %d are not adjacent: %w", from, to, ErrInvalidArgument)
	}
	if attackers < 1 || attackers > 3 {
		return false, fmt.Errorf("attackers must be 1 to 3, got %d: %w", attackers, ErrInvalidArgument)
	}
	if src.Armies-1 < attackers {
		return false, fmt.Errorf("territory %d has %d armies, cannot commit %d: %w", from, src.Armies, attackers, ErrInvalidArgument)
	}
	if defenders < 1 || defenders > 2 {
		return false, fmt.Errorf("defenders must be 1 or 2, got %d: %w", defenders, ErrInvalidArgument)
	}
	if dst.Armies < defenders {
		return false, fmt.Errorf("territory %d has %d armies, cannot defend with %d: %w", to, dst.Armies, defenders, ErrInvalidArgument)
	}

	// One draw decides the whole battle.
	r := g.rng.Float64()
	committed := attackers

	if defenders == 1 {
		if r < singleWin[attackers-1] {
			dst.Armies--
		} else {
			src.Armies--
		}
	} else {
		if r < bothLose[attackers-1] {
			// Mutual loss: one of the committed armies died, so one fewer
			// survivor is available to move in.
			src.Armies--
			dst.Armies--
			committed--
		} else {
			loss := 2
			if attackers == 1 {
				loss = 1
			}
			if r < doubleWin[attackers-1] {
				dst.Armies -= loss
			} else {
				src.Armies -= loss
			}
		}
	}

	if dst.Armies > 0 {
		return false, nil
	}

	g.capture(p, from, to, committed)
	return true, nil
}

// capture hands the defending territory to the attacker, moving the
// surviving committed armies in, and settles everything a capture
// touches: ownership counts, region bonuses, the first-capture card,
// elimination and the win condition, and the follow-up Invade stage.
func (g *Game) capture(p *Player, from, to, committed int) {
	src := g.territories[from]
	dst := g.territories[to]
	former := g.players[dst.Owner]

	dst.Owner = p.Index
	dst.Armies = committed
	src.Armies -= committed

	p.OwnedTerritories++
	former.OwnedTerritories--
	g.recomputeContinentBonus(p)
	g.recomputeContinentBonus(former)

	p.CapturesThisTurn++
	if p.CapturesThisTurn == 1 {
		g.giveCard(p)
	}

	if former.OwnedTerritories == 0 {
		g.eliminate(former, p)
	}

	if g.stage == StageAttack && src.Armies > 1 {
		g.stage = StageInvade
		g.invadeFrom = from
		g.invadeTo = to
	}
}

// eliminate marks the loser defeated, hands their cards to the victor
// and finishes the game if the victor is the last player standing.
func (g *Game) eliminate(loser, victor *Player) {
	loser.Defeated = true
	victor.SingleStarCards += loser.SingleStarCards
	victor.DoubleStarCards += loser.DoubleStarCards
	loser.SingleStarCards = 0
	loser.DoubleStarCards = 0

	remaining := 0
	for _, p := range g.players {
		if !p.Defeated {
			remaining++
		}
	}
	if remaining == 1 {
		g.stage = StageFinished
	}
}
