package parser

import "strings"

// Markers are the literal substrings that drive round and phase tracking.
type Markers struct {
	RoundStart string
	SmallBlind string
	Flop       string
	Stacks     string
}

// DefaultMarkers returns the markers written by the PokerNow table log.
func DefaultMarkers() Markers {
	return Markers{
		RoundStart: "-- starting hand",
		SmallBlind: "posts a small blind of",
		Flop:       "Flop:",
		Stacks:     "Player stacks:",
	}
}

// WithDefaults fills empty markers from DefaultMarkers.
func (m Markers) WithDefaults() Markers {
	d := DefaultMarkers()
	if m.RoundStart == "" {
		m.RoundStart = d.RoundStart
	}
	if m.SmallBlind == "" {
		m.SmallBlind = d.SmallBlind
	}
	if m.Flop == "" {
		m.Flop = d.Flop
	}
	if m.Stacks == "" {
		m.Stacks = d.Stacks
	}
	return m
}

func (m Markers) isRoundStart(text string) bool { return strings.Contains(text, m.RoundStart) }
func (m Markers) isSmallBlind(text string) bool { return strings.Contains(text, m.SmallBlind) }
func (m Markers) isFlop(text string) bool       { return strings.Contains(text, m.Flop) }
func (m Markers) isStacks(text string) bool     { return strings.Contains(text, m.Stacks) }
