package game

// Prompter is the blocking input capability the game consumes. Both methods
// block until the user answers; neither returns until input arrives or the
// input stream is broken, in which case the error is fatal to the session.
type Prompter interface {
	// PromptChoice asks a question and re-prompts until the answer matches
	// one of valid (case-insensitive). The matched answer is returned in
	// lower case.
	PromptChoice(prompt string, valid []string) (string, error)

	// PromptLine asks a question and returns one free-form line with the
	// trailing newline stripped.
	PromptLine(prompt string) (string, error)
}

// Display is the output capability the game consumes. Show failures are not
// recoverable; implementations terminate the process rather than report them
// back, since nothing can be done with a broken terminal.
type Display interface {
	Show(text string)
	Clear()
}

// UI bundles the two capabilities the round engine and session need.
type UI interface {
	Prompter
	Display
}

// TallyDisplay is an optional extension for UIs that render the running win
// tally somewhere persistent (the TUI sidebar). The session feature-detects
// it after each round.
type TallyDisplay interface {
	SetTally(playerWins, dealerWins int)
}
