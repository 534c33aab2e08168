package game

// DealerName is the fixed display name for the house participant.
const DealerName = "Dealer"

// Participant is a named entity owning a hand. The player and the dealer
// share all scoring behaviour; the dealer only differs in its display rule
// (first card hidden during the player's turn), which the rendering layer
// handles.
type Participant struct {
	Name string
	hand Hand
}

// NewPlayer creates the human participant with the supplied name
func NewPlayer(name string) *Participant {
	return &Participant{Name: name}
}

// NewDealer creates the house participant
func NewDealer() *Participant {
	return &Participant{Name: DealerName}
}

// Hand returns the participant's hand for mutation and scoring
func (p *Participant) Hand() *Hand {
	return &p.hand
}
