package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when dealing from an exhausted deck. A standard
// single-deck round consumes at most ~20 of 52 cards, so hitting this in
// normal play indicates a bug rather than a recoverable condition.
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Deck is an ordered, shuffled standard 52-card deck. Cards are dealt from
// the end of the slice, so the deck doubles as a stack.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a shuffled 52-card deck using the provided RNG. The RNG is
// retained for reshuffles, so a fixed seed gives a reproducible order.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.Shuffle()
	return d
}

// NewStacked creates an unshuffled deck containing exactly the given cards,
// dealt in the order provided. Intended for deterministic tests.
func NewStacked(cards ...Card) *Deck {
	// Dealing pops from the end, so store the requested order reversed.
	stacked := make([]Card, len(cards))
	for i, c := range cards {
		stacked[len(cards)-1-i] = c
	}
	return &Deck{cards: stacked}
}

// Shuffle randomizes the deck in place using Fisher-Yates. Every permutation
// of the remaining cards is equally likely. Stacked decks carry no RNG and
// keep their fixed order.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealOne removes and returns the top card. Returns ErrEmptyDeck when no
// cards remain.
func (d *Deck) DealOne() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
