package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// fixedSource forces every draw. Float64 keeps only the low 53 bits of
// a Uint64, so the forced fraction lives there: zero makes the attacker
// draw r=0.0, highDraw lands at 15/16 = 0.9375, above every table entry.
type fixedSource uint64

const highDraw = uint64(15) << 49

func (s fixedSource) Uint64() uint64 { return uint64(s) }
func (s fixedSource) Seed(uint64)    {}

func attackGame(t *testing.T, owners, armies []int) *Game {
	t.Helper()
	g := newTestGame(t, 2)
	assign(g, owners, armies)
	g.stage = StageAttack
	return g
}

func TestAttackValidation(t *testing.T) {
	g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 2, 1, 1})

	cases := []struct {
		name                         string
		from, to, attackers, defends int
		want                         error
	}{
		{"unknown attacker territory", 9, 1, 1, 1, ErrNotFound},
		{"unknown defender territory", 0, -2, 1, 1, ErrNotFound},
		{"attacking from enemy territory", 1, 0, 1, 1, ErrInvalidArgument},
		{"attacking own territory", 0, 3, 1, 1, ErrInvalidArgument},
		{"attacking across the map", 0, 2, 1, 1, ErrInvalidArgument},
		{"zero attackers", 0, 1, 0, 1, ErrInvalidArgument},
		{"four attackers", 0, 1, 4, 1, ErrInvalidArgument},
		{"committing the garrison", 3, 2, 1, 1, ErrInvalidArgument},
		{"zero defenders", 0, 1, 1, 0, ErrInvalidArgument},
		{"three defenders", 0, 1, 1, 3, ErrInvalidArgument},
		{"more defenders than armies", 3, 2, 1, 2, ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before0, _ := g.Territory(tc.from % g.TerritoryCount())
			captured, err := g.Attack(tc.from, tc.to, tc.attackers, tc.defends)

			require.ErrorIs(t, err, tc.want)
			require.False(t, captured, "Failed validation should never capture")
			after0, _ := g.Territory(tc.from % g.TerritoryCount())
			require.Equal(t, before0, after0, "Failed validation should not mutate")
		})
	}

	t.Run("more defenders than garrison", func(t *testing.T) {
		weak := attackGame(t, []int{0, 1, 1, 0}, []int{5, 1, 1, 1})
		_, err := weak.Attack(0, 1, 2, 2)
		require.ErrorIs(t, err, ErrInvalidArgument, "One army cannot defend with two")
	})
}

func TestAttackSingleDefender(t *testing.T) {
	t.Run("low draw wins and captures", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 1, 5, 1})
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 3, 1)

		require.NoError(t, err)
		require.True(t, captured, "r=0 always falls under the win probability")
		src, _ := g.Territory(0)
		dst, _ := g.Territory(1)
		require.Equal(t, 0, dst.Owner, "Captured territory changes hands")
		require.Equal(t, 3, dst.Armies, "All committed armies move in")
		require.Equal(t, 2, src.Armies, "Source keeps the uncommitted armies")
		require.Equal(t, 1, g.Players()[0].CapturesThisTurn)
		require.Equal(t, StageInvade, g.Stage(), "More than one army left should chain into Invade")
	})

	t.Run("high draw costs the attacker one army", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 1, 5, 1})
		g.rng = rand.New(fixedSource(highDraw))

		captured, err := g.Attack(0, 1, 3, 1)

		require.NoError(t, err)
		require.False(t, captured, "A draw above the table entry loses the battle")
		src, _ := g.Territory(0)
		dst, _ := g.Territory(1)
		require.Equal(t, 4, src.Armies, "Losing side loses exactly one army")
		require.Equal(t, 1, dst.Armies, "Defender is untouched")
		require.Equal(t, 1, dst.Owner, "No ownership change on a failed attack")
		require.Equal(t, StageAttack, g.Stage(), "Failed attack keeps the stage")
	})
}

func TestAttackTwoDefenders(t *testing.T) {
	t.Run("zero draw is a mutual loss", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 2, 5, 1})
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 3, 2)

		require.NoError(t, err)
		require.False(t, captured, "Mutual loss never captures")
		src, _ := g.Territory(0)
		dst, _ := g.Territory(1)
		require.Equal(t, 4, src.Armies, "Both sides lose exactly one army")
		require.Equal(t, 1, dst.Armies, "Both sides lose exactly one army")
		require.Equal(t, StageAttack, g.Stage(), "Stage remains Attack")
	})

	t.Run("high draw costs the attacker two armies", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 2, 5, 1})
		g.rng = rand.New(fixedSource(highDraw))

		captured, err := g.Attack(0, 1, 3, 2)

		require.NoError(t, err)
		require.False(t, captured)
		src, _ := g.Territory(0)
		dst, _ := g.Territory(1)
		require.Equal(t, 3, src.Armies, "Attacker loses two against two defenders")
		require.Equal(t, 2, dst.Armies, "Defender is untouched")
	})

	t.Run("single attacker loses only one army", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 2, 5, 1})
		g.rng = rand.New(fixedSource(highDraw))

		captured, err := g.Attack(0, 1, 1, 2)

		require.NoError(t, err)
		require.False(t, captured)
		src, _ := g.Territory(0)
		require.Equal(t, 4, src.Armies, "A lone attacker can only lose one army")
	})
}

func TestCapture(t *testing.T) {
	t.Run("first capture of the turn awards a card", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 1, 5, 1})
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 3, 1)

		require.NoError(t, err)
		require.True(t, captured)
		require.Equal(t, 1, g.Players()[0].Stars(), "First capture should draw one card")
		requireCardConservation(t, g)

		// Clear the pending invasion, then capture again: no second card.
		require.NoError(t, g.Invade(0))
		g.territories[2].Armies = 1
		dst, _ := g.Territory(1)
		require.Greater(t, dst.Armies, 1)
		captured, err = g.Attack(1, 2, 1, 1)
		require.NoError(t, err)
		require.True(t, captured)
		require.Equal(t, 1, g.Players()[0].Stars(), "Only the first capture of a turn draws a card")
		requireCardConservation(t, g)
	})

	t.Run("invade moves the follow-up armies", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{5, 1, 5, 1})
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 3, 1)
		require.NoError(t, err)
		require.True(t, captured)

		from, to, ok := g.PendingInvasion()
		require.True(t, ok, "Invade stage should expose the pending route")
		require.Equal(t, 0, from)
		require.Equal(t, 1, to)

		require.ErrorIs(t, g.Invade(2), ErrInvalidArgument, "Invade must leave one army behind")
		require.NoError(t, g.Invade(1))

		src, _ := g.Territory(0)
		dst, _ := g.Territory(1)
		require.Equal(t, 1, src.Armies)
		require.Equal(t, 4, dst.Armies)
		require.Equal(t, StageAttack, g.Stage(), "Invading returns to Attack")
		_, _, ok = g.PendingInvasion()
		require.False(t, ok, "The pending route is gone after the move")
	})

	t.Run("capture with a single spare army stays in attack", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 1, 0}, []int{2, 1, 5, 1})
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 1, 1)

		require.NoError(t, err)
		require.True(t, captured)
		src, _ := g.Territory(0)
		require.Equal(t, 1, src.Armies)
		require.Equal(t, StageAttack, g.Stage(), "Nothing left to invade with")
	})

	t.Run("capture updates region bonuses", func(t *testing.T) {
		// Player 0 takes territory 1 and with it the Westland region.
		g := attackGame(t, []int{0, 1, 1, 1}, []int{5, 1, 5, 5})
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 3, 1)

		require.NoError(t, err)
		require.True(t, captured)
		require.Equal(t, 2, g.Players()[0].ContinentBonus, "Holding the full region grants its bonus")
		require.Equal(t, 0, g.Players()[1].ContinentBonus)
	})
}

func TestElimination(t *testing.T) {
	t.Run("capturing the last territory finishes a two-player game", func(t *testing.T) {
		g := attackGame(t, []int{0, 1, 0, 0}, []int{5, 1, 1, 1})
		g.players[1].SingleStarCards = 2
		g.players[1].DoubleStarCards = 1
		g.cards.drawSingle -= 2
		g.cards.drawDouble -= 1
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 3, 1)

		require.NoError(t, err)
		require.True(t, captured)
		require.True(t, g.Players()[1].Defeated, "Losing the last territory defeats the player")
		require.Equal(t, 0, g.Players()[1].Stars(), "Cards move to the victor")
		// 2 singles + 1 double transferred, plus the capture card drawn at r=0.
		require.Equal(t, 3, g.Players()[0].SingleStarCards)
		require.Equal(t, 1, g.Players()[0].DoubleStarCards)
		require.Equal(t, StageFinished, g.Stage(), "A single survivor finishes the game")
		require.Equal(t, "Player1", g.Winner().Name)
		requireCardConservation(t, g)
	})

	t.Run("elimination with players left keeps the game running", func(t *testing.T) {
		g, err := NewGame(testMap(), 3, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assign(g, []int{0, 1, 2, 2}, []int{5, 1, 1, 1})
		g.stage = StageAttack
		g.rng = rand.New(fixedSource(0))

		captured, err := g.Attack(0, 1, 3, 1)

		require.NoError(t, err)
		require.True(t, captured)
		require.True(t, g.Players()[1].Defeated)
		require.Equal(t, StageInvade, g.Stage(), "Two survivors keep playing")
		require.Nil(t, g.Winner(), "No winner while the game runs")
	})
}
