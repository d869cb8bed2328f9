package game

import "fmt"

// The reward deck: 30 single-star and 12 double-star cards. Cards only
// ever sit in a draw pile, a discard pile or a player's holding, so the
// per-denomination totals are conserved for the whole game.
const (
	TotalSingleStarCards = 30
	TotalDoubleStarCards = 12
)

// cardPiles tracks the draw and discard piles by count. Individual cards
// carry no identity beyond their denomination, so counts are enough.
type cardPiles struct {
	drawSingle    int
	drawDouble    int
	discardSingle int
	discardDouble int
}

func newCardPiles() cardPiles {
	return cardPiles{
		drawSingle: TotalSingleStarCards,
		drawDouble: TotalDoubleStarCards,
	}
}

// giveCard draws one card for p, weighted by the remaining pile counts.
// An exhausted draw pile is refilled from the discards first; if both
// piles stay empty the draw is a deliberate no-op.
func (g *Game) giveCard(p *Player) {
	if g.cards.drawSingle == 0 && g.cards.drawDouble == 0 {
		g.cards.drawSingle, g.cards.discardSingle = g.cards.discardSingle, 0
		g.cards.drawDouble, g.cards.discardDouble = g.cards.discardDouble, 0
	}
	total := g.cards.drawSingle + g.cards.drawDouble
	if total == 0 {
		return
	}
	if g.rng.Intn(total) < g.cards.drawSingle {
		g.cards.drawSingle--
		p.SingleStarCards++
	} else {
		g.cards.drawDouble--
		p.DoubleStarCards++
	}
}

// TradeInCards spends cards worth the given number of stars and grants
// the acting player bonus draft armies. Double cards are spent first.
// Legal only during the Draft stage, for stars in [2, min(10, held)].
func (g *Game) TradeInCards(stars int) error {
	if g.stage != StageDraft {
		return fmt.Errorf("cannot trade cards during %s: %w", g.stage, ErrInvalidState)
	}
	p := g.players[g.currentPlayer]
	if stars < 2 || stars > 10 || stars > p.Stars() {
		return fmt.Errorf("cannot trade %d stars holding %d: %w", stars, p.Stars(), ErrInvalidArgument)
	}
	// An odd total cannot be formed from double cards alone.
	if p.SingleStarCards == 0 && stars%2 != 0 {
		return fmt.Errorf("cannot trade %d stars without single-star cards: %w", stars, ErrInvalidArgument)
	}

	doubleSpent := min(stars/2, p.DoubleStarCards)
	singleSpent := stars - doubleSpent*2

	p.DoubleStarCards -= doubleSpent
	p.SingleStarCards -= singleSpent
	g.cards.discardDouble += doubleSpent
	g.cards.discardSingle += singleSpent

	p.DraftArmies += ArmiesForStars(stars)
	return nil
}

// armiesForStars[stars-2] is the draft-army bonus for a trade-in.
var armiesForStars = [9]int{2, 4, 7, 10, 13, 17, 21, 25, 30}

// ArmiesForStars returns the draft armies granted for trading in the
// given number of stars. It panics for stars outside [2, 10]; trade-in
// validation keeps game play inside that range.
func ArmiesForStars(stars int) int {
	if stars < 2 || stars > 10 {
		panic(fmt.Sprintf("stars out of range: %d", stars))
	}
	return armiesForStars[stars-2]
}
