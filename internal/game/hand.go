package game

import (
	"github.com/lox/blackjack-cli/internal/deck"
)

// Hand is the ordered sequence of cards held by one participant during a
// round. It is owned exclusively by that participant and cleared at round
// boundaries rather than reused.
type Hand struct {
	cards []deck.Card
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.cards)
}

// Reset clears the hand for a new round
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// Total returns the blackjack point total. Every Ace is first counted as 11,
// then downgraded to 1 one at a time while the total exceeds 21. The
// check-before-subtract order matters on multi-Ace hands and must not be
// reordered. The total is recomputed on every call; nothing is cached.
func (h *Hand) Total() int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Rank.BaseValue()
		if c.IsAce() {
			aces++
		}
	}

	for i := 0; i < aces; i++ {
		if total <= 21 {
			break
		}
		total -= 10
	}

	return total
}

// IsBust returns true if the hand total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Total() > 21
}

// IsBlackjack returns true if the hand totals exactly 21. Any number of
// cards qualifies; a 21 reached by hitting is reported the same as a natural
// two-card blackjack.
func (h *Hand) IsBlackjack() bool {
	return h.Total() == 21
}
