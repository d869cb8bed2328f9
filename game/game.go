package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	// MinPlayers and MaxPlayers bound the player count at construction.
	MinPlayers = 2
	MaxPlayers = 6
)

// Game is the rules engine: a stage state machine over an immutable
// geography. All mutation goes through the stage-gated operations below;
// every operation validates completely before touching any state, so a
// failing call leaves the game unchanged. The engine is single-threaded
// by contract: one caller, strictly sequential calls, no internal
// locking.
type Game struct {
	geography   *Map
	rng         *rand.Rand
	stage       Stage
	players     []*Player
	territories []*TerritoryInfo
	cards       cardPiles

	currentPlayer int
	// Count of unowned territories; meaningful only during Claim.
	unclaimed int
	// Pending invasion endpoints; meaningful only during Invade.
	invadeFrom int
	invadeTo   int
}

// NewGame creates a game on the given geography for playerCount players.
// The generator is the engine's only randomness source (combat draws and
// card draws); seeding it makes whole game trajectories reproducible.
// The game starts in the Claim stage with every territory unowned.
func NewGame(geography *Map, playerCount int, rng *rand.Rand) (*Game, error) {
	if geography == nil || len(geography.Territories) == 0 {
		return nil, fmt.Errorf("geography is empty: %w", ErrInvalidArgument)
	}
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, fmt.Errorf("player count must be %d to %d, got %d: %w", MinPlayers, MaxPlayers, playerCount, ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("random generator is required: %w", ErrInvalidArgument)
	}

	g := &Game{
		geography: geography,
		rng:       rng,
		stage:     StageInitializing,
		cards:     newCardPiles(),
	}
	g.players = make([]*Player, playerCount)
	for i := range g.players {
		g.players[i] = newPlayer(i)
	}
	g.territories = make([]*TerritoryInfo, len(geography.Territories))
	for i := range g.territories {
		g.territories[i] = &TerritoryInfo{Owner: NoOwner}
	}

	g.enterClaim()
	return g, nil
}

// enterClaim opens the claiming stage: every territory up for grabs and
// every player holding their initial army allotment.
func (g *Game) enterClaim() {
	armies := InitialArmies(len(g.players))
	for _, p := range g.players {
		p.DraftArmies = armies
	}
	g.unclaimed = len(g.territories)
	g.currentPlayer = 0
	g.stage = StageClaim
}

// InitialArmies is the per-player starting allotment: 40 for 2 players,
// dropping by 5 per extra player down to 20 for 6.
func InitialArmies(playerCount int) int {
	return 40 - (playerCount-2)*5
}

// Claim takes an unowned territory for the acting player, placing one
// army on it. The turn passes to the next player; claiming the last
// unowned territory moves the game to Populate.
func (g *Game) Claim(territory int) error {
	if g.stage != StageClaim {
		return fmt.Errorf("cannot claim during %s: %w", g.stage, ErrInvalidState)
	}
	if err := g.checkTerritory(territory); err != nil {
		return err
	}
	t := g.territories[territory]
	if t.Owner != NoOwner {
		return fmt.Errorf("territory %d is already claimed: %w", territory, ErrInvalidArgument)
	}

	p := g.players[g.currentPlayer]
	t.Owner = p.Index
	t.Armies = 1
	p.OwnedTerritories++
	g.recomputeContinentBonus(p)
	g.unclaimed--

	if g.unclaimed == 0 {
		g.stage = StagePopulate
	}
	g.advanceTurn(nil)
	return nil
}

// Populate places one of the acting player's draft armies on a territory
// they own. The turn passes to the next player still holding draft
// armies; once every player's pool is empty the game enters Draft.
func (g *Game) Populate(territory int) error {
	if g.stage != StagePopulate {
		return fmt.Errorf("cannot populate during %s: %w", g.stage, ErrInvalidState)
	}
	if err := g.checkTerritory(territory); err != nil {
		return err
	}
	p := g.players[g.currentPlayer]
	t := g.territories[territory]
	if t.Owner != p.Index {
		return fmt.Errorf("territory %d is not owned by %s: %w", territory, p.Name, ErrInvalidArgument)
	}
	if p.DraftArmies == 0 {
		return fmt.Errorf("%s has no draft armies left: %w", p.Name, ErrInvalidArgument)
	}

	t.Armies++
	p.DraftArmies--

	if g.allArmiesPlaced() {
		g.advanceTurn(nil)
		g.enterDraft()
	} else {
		g.advanceTurn(func(next *Player) bool { return next.DraftArmies > 0 })
	}
	return nil
}

func (g *Game) allArmiesPlaced() bool {
	for _, p := range g.players {
		if p.DraftArmies > 0 {
			return false
		}
	}
	return true
}

// enterDraft grants the now-current player their reinforcements and
// opens their turn.
func (g *Game) enterDraft() {
	p := g.players[g.currentPlayer]
	p.DraftArmies = max(3, p.OwnedTerritories/3) + p.ContinentBonus
	g.stage = StageDraft
}

// Draft places count of the acting player's draft armies on a territory
// they own. Spending the last draft army moves the game to Attack.
func (g *Game) Draft(territory, count int) error {
	if g.stage != StageDraft {
		return fmt.Errorf("cannot draft during %s: %w", g.stage, ErrInvalidState)
	}
	if err := g.checkTerritory(territory); err != nil {
		return err
	}
	p := g.players[g.currentPlayer]
	t := g.territories[territory]
	if t.Owner != p.Index {
		return fmt.Errorf("territory %d is not owned by %s: %w", territory, p.Name, ErrInvalidArgument)
	}
	if count < 1 || count > p.DraftArmies {
		return fmt.Errorf("cannot place %d of %d draft armies: %w", count, p.DraftArmies, ErrInvalidArgument)
	}

	t.Armies += count
	p.DraftArmies -= count

	if p.DraftArmies == 0 {
		g.stage = StageAttack
	}
	return nil
}

// Invade moves count extra armies along the pending invasion route and
// returns the game to Attack. The mandatory move-in already happened at
// capture time, so count may be zero.
func (g *Game) Invade(count int) error {
	if g.stage != StageInvade {
		return fmt.Errorf("cannot invade during %s: %w", g.stage, ErrInvalidState)
	}
	src := g.territories[g.invadeFrom]
	dst := g.territories[g.invadeTo]
	if count < 0 || count > src.Armies-1 {
		return fmt.Errorf("cannot move %d of %d armies: %w", count, src.Armies, ErrInvalidArgument)
	}

	src.Armies -= count
	dst.Armies += count
	g.stage = StageAttack
	return nil
}

// Maneuver moves count armies between two adjacent territories the
// acting player owns, then ends their turn.
func (g *Game) Maneuver(from, to, count int) error {
	if g.stage != StageManeuver {
		return fmt.Errorf("cannot maneuver during %s: %w", g.stage, ErrInvalidState)
	}
	if err := g.checkTerritory(from); err != nil {
		return err
	}
	if err := g.checkTerritory(to); err != nil {
		return err
	}
	p := g.players[g.currentPlayer]
	src := g.territories[from]
	dst := g.territories[to]
	if src.Owner != p.Index {
		return fmt.Errorf("territory %d is not owned by %s: %w", from, p.Name, ErrInvalidArgument)
	}
	if dst.Owner != p.Index {
		return fmt.Errorf("territory %d is not owned by %s: %w", to, p.Name, ErrInvalidArgument)
	}
	if !g.geography.AreAdjacent(from, to) {
		return fmt.Errorf("territories %d and %d are not adjacent: %w", from, to, ErrInvalidArgument)
	}
	if count < 1 || count > src.Armies-1 {
		return fmt.Errorf("cannot move %d of %d armies: %w", count, src.Armies, ErrInvalidArgument)
	}

	src.Armies -= count
	dst.Armies += count
	g.endTurn()
	return nil
}

// Skip declines the current stage's action: Attack moves on to Maneuver,
// Maneuver ends the turn.
func (g *Game) Skip() error {
	switch g.stage {
	case StageAttack:
		g.stage = StageManeuver
		return nil
	case StageManeuver:
		g.endTurn()
		return nil
	default:
		return fmt.Errorf("cannot skip during %s: %w", g.stage, ErrInvalidState)
	}
}

// endTurn hands the turn to the next undefeated player and opens their
// Draft stage.
func (g *Game) endTurn() {
	g.advanceTurn(nil)
	g.enterDraft()
}

// Stage returns the engine's current stage.
func (g *Game) Stage() Stage {
	return g.stage
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.currentPlayer]
}

// Players returns the fixed player sequence.
func (g *Game) Players() []*Player {
	return g.players
}

// Geography returns the immutable map the game was created on.
func (g *Game) Geography() *Map {
	return g.geography
}

// PendingInvasion returns the endpoints of the capture awaiting a
// follow-up move. Only meaningful during the Invade stage; ok is false
// in every other stage.
func (g *Game) PendingInvasion() (from, to int, ok bool) {
	if g.stage != StageInvade {
		return 0, 0, false
	}
	return g.invadeFrom, g.invadeTo, true
}

// Winner returns the sole undefeated player once the game is finished,
// or nil while it is still running.
func (g *Game) Winner() *Player {
	if g.stage != StageFinished {
		return nil
	}
	for _, p := range g.players {
		if !p.Defeated {
			return p
		}
	}
	return nil
}
