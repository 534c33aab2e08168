package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Rendering helpers produce the plain-text hand views the engine sends to
// the display capability. Styling and screen control live in the UI
// implementations.

func renderHand(p *Participant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-----%s's Hand-----\n", p.Name)
	for _, c := range p.Hand().Cards() {
		fmt.Fprintf(&b, "=> %s\n", c.Description())
	}
	fmt.Fprintf(&b, "=> %s's total is %d", p.Name, p.Hand().Total())
	return b.String()
}

// renderHandHidden shows the dealer's hand during the player's turn: the
// first card stays face down.
func renderHandHidden(p *Participant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-----%s's Hand-----\n", p.Name)
	b.WriteString("=> Facedown card\n")
	cards := p.Hand().Cards()
	for i, c := range cards {
		if i == 0 {
			continue
		}
		fmt.Fprintf(&b, "=> %s", c.Description())
		if i < len(cards)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderDeal(name string, c deck.Card) string {
	return fmt.Sprintf("%s dealt: %s", name, c.Description())
}
