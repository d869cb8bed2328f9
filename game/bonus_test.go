package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRecomputeContinentBonus(t *testing.T) {
	t.Run("full region ownership grants the bonus", func(t *testing.T) {
		g := newTestGame(t, 2)
		assign(g, []int{0, 0, 1, 1}, []int{1, 1, 1, 1})

		require.Equal(t, 2, g.players[0].ContinentBonus, "Westland is fully held")
		require.Equal(t, 0, g.players[1].ContinentBonus, "No region is fully held")
	})

	t.Run("partial ownership grants nothing", func(t *testing.T) {
		g := newTestGame(t, 2)
		assign(g, []int{0, 1, 0, 1}, []int{1, 1, 1, 1})

		require.Equal(t, 0, g.players[0].ContinentBonus)
		require.Equal(t, 0, g.players[1].ContinentBonus)
	})

	t.Run("losing a region territory drops the bonus", func(t *testing.T) {
		g := newTestGame(t, 2)
		assign(g, []int{0, 0, 1, 1}, []int{1, 1, 1, 1})
		require.Equal(t, 2, g.players[0].ContinentBonus)

		g.territories[1].Owner = 1
		g.players[0].OwnedTerritories--
		g.players[1].OwnedTerritories++
		g.recomputeContinentBonus(g.players[0])
		g.recomputeContinentBonus(g.players[1])

		require.Equal(t, 0, g.players[0].ContinentBonus, "Bonus follows ownership changes")
	})

	t.Run("sums every fully held region on the world map", func(t *testing.T) {
		m := WorldMap()
		g, err := NewGame(m, 2, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		// Hand everything to player 0.
		owners := make([]int, len(m.Territories))
		armies := make([]int, len(m.Territories))
		for i := range owners {
			armies[i] = 1
		}
		assign(g, owners, armies)

		require.Equal(t, 5+2+5+3+7+2, g.players[0].ContinentBonus, "Owning the world grants every bonus")
	})
}
