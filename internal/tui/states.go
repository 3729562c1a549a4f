package tui

type ApplicationState int

const (
	StateBrowse ApplicationState = iota
	StateEditHex
	StatePeek
	StateConfirmClearAll
	StateError
)
