package experiments

import (
	"fmt"

	"golang.org/x/exp/rand"

	"conquest/game"
)

// RandomActor plays a uniformly random legal action each turn. It is the
// baseline driver for matchup experiments; it holds its own generator so
// actor choices never perturb the engine's combat and card draws.
type RandomActor struct {
	rng *rand.Rand
}

func NewRandomActor(rng *rand.Rand) *RandomActor {
	return &RandomActor{rng: rng}
}

func (a *RandomActor) Act(g *game.Game) error {
	switch g.Stage() {
	case game.StageClaim:
		return g.Claim(a.pickTerritory(g, func(t game.TerritoryInfo) bool {
			return t.Owner == game.NoOwner
		}))
	case game.StagePopulate:
		return g.Populate(a.pickOwned(g))
	case game.StageDraft:
		return a.draft(g)
	case game.StageAttack:
		return a.attack(g)
	case game.StageInvade:
		return a.invade(g)
	case game.StageManeuver:
		return a.maneuver(g)
	default:
		return fmt.Errorf("no action for stage %s", g.Stage())
	}
}

func (a *RandomActor) draft(g *game.Game) error {
	p := g.CurrentPlayer()

	// Cash in cards whenever a legal trade exists.
	stars := min(10, p.Stars())
	if p.SingleStarCards == 0 && stars%2 != 0 {
		stars--
	}
	if stars >= 2 {
		return g.TradeInCards(stars)
	}

	count := 1 + a.rng.Intn(p.DraftArmies)
	return g.Draft(a.pickOwned(g), count)
}

func (a *RandomActor) attack(g *game.Game) error {
	if a.rng.Float64() < 0.2 {
		return g.Skip()
	}

	p := g.CurrentPlayer()
	type assault struct{ from, to int }
	var candidates []assault
	for id := 0; id < g.TerritoryCount(); id++ {
		src, _ := g.Territory(id)
		if src.Owner != p.Index || src.Armies < 2 {
			continue
		}
		for _, adj := range g.Geography().Territories[id].AdjacentIDs {
			dst, _ := g.Territory(adj)
			if dst.Owner != p.Index {
				candidates = append(candidates, assault{from: id, to: adj})
			}
		}
	}
	if len(candidates) == 0 {
		return g.Skip()
	}

	pick := candidates[a.rng.Intn(len(candidates))]
	src, _ := g.Territory(pick.from)
	dst, _ := g.Territory(pick.to)
	attackers := min(3, src.Armies-1)
	defenders := min(2, dst.Armies)
	_, err := g.Attack(pick.from, pick.to, attackers, defenders)
	return err
}

func (a *RandomActor) invade(g *game.Game) error {
	from, _, _ := g.PendingInvasion()
	src, _ := g.Territory(from)
	return g.Invade(a.rng.Intn(src.Armies))
}

func (a *RandomActor) maneuver(g *game.Game) error {
	if a.rng.Float64() < 0.7 {
		return g.Skip()
	}

	p := g.CurrentPlayer()
	type shift struct{ from, to int }
	var candidates []shift
	for id := 0; id < g.TerritoryCount(); id++ {
		src, _ := g.Territory(id)
		if src.Owner != p.Index || src.Armies < 2 {
			continue
		}
		for _, adj := range g.Geography().Territories[id].AdjacentIDs {
			dst, _ := g.Territory(adj)
			if dst.Owner == p.Index {
				candidates = append(candidates, shift{from: id, to: adj})
			}
		}
	}
	if len(candidates) == 0 {
		return g.Skip()
	}

	pick := candidates[a.rng.Intn(len(candidates))]
	src, _ := g.Territory(pick.from)
	return g.Maneuver(pick.from, pick.to, 1+a.rng.Intn(src.Armies-1))
}

// pickOwned returns a random territory owned by the current player.
func (a *RandomActor) pickOwned(g *game.Game) int {
	current := g.CurrentPlayer().Index
	return a.pickTerritory(g, func(t game.TerritoryInfo) bool {
		return t.Owner == current
	})
}

func (a *RandomActor) pickTerritory(g *game.Game, match func(game.TerritoryInfo) bool) int {
	var candidates []int
	for id := 0; id < g.TerritoryCount(); id++ {
		t, _ := g.Territory(id)
		if match(t) {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[a.rng.Intn(len(candidates))]
}
