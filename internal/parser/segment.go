package parser

import "github.com/lox/pokerlogs/internal/eventlog"

// Segment numbers rounds: a line's round is the count of round-start
// markers at or before it. Lines before the first marker are round 0.
func Segment(events []eventlog.Event, m Markers) []Line {
	lines := make([]Line, len(events))
	round := 0
	for i, ev := range events {
		if m.isRoundStart(ev.Text) {
			round++
		}
		lines[i] = Line{Seq: ev.Seq, Text: ev.Text, Round: round}
	}
	return lines
}

// phaseMachine carries the betting phase along the ordered stream.
//
//	round start   -> other
//	small blind   -> preflop
//	flop revealed -> other
type phaseMachine struct {
	markers Markers
	state   Phase
}

func (pm *phaseMachine) step(text string) Phase {
	if pm.markers.isRoundStart(text) {
		pm.state = PhaseOther
	}
	if pm.markers.isSmallBlind(text) {
		pm.state = PhasePreflop
	}
	if pm.markers.isFlop(text) {
		pm.state = PhaseOther
	}
	return pm.state
}

// ClassifyPhase tags every line with the phase in force when it was
// written. It must see the whole stream in order.
func ClassifyPhase(lines []Line, m Markers) []Line {
	out := make([]Line, len(lines))
	pm := phaseMachine{markers: m}
	for i, line := range lines {
		line.Phase = pm.step(line.Text)
		out[i] = line
	}
	return out
}
