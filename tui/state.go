package tui

type state int

const (
	playingState state = iota
	menuState
	errorState
)
