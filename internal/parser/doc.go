// Package parser turns a globally ordered stream of log lines into
// round-scoped facts.
//
// Processing happens in immutable stages, each returning a new slice:
//
//	lines := parser.Segment(events, markers)       // round numbers
//	lines = parser.ClassifyPhase(lines, markers)   // preflop flag
//	lines, err := parser.ResolvePlayers(lines, table)
//	facts, err := parser.Extract(lines, markers, bigBlind, table)
//
// # Matchers
//
// Every line is offered to a fixed set of independent matchers. Each
// matcher recognises at most one kind of fact and returns it as a Fact
// value: StackSnapshot, PositionTag, ActionTaken or HandShown. A line may
// produce facts of several kinds (a small blind post is both a position
// tag and, through the phase machine, the start of preflop) but never two
// facts of the same kind.
//
// Chip amounts are rescaled into big blinds during extraction. A line whose
// amount cannot be parsed yields no fact rather than an error.
package parser
