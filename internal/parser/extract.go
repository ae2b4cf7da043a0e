package parser

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/internal/eventlog"
	"github.com/lox/pokerlogs/internal/names"
)

// Resolver maps raw display names to canonical names.
type Resolver interface {
	Resolve(raw string) (string, error)
}

// ResolvePlayers sets each line's canonical player. The first unmapped
// name aborts the run.
func ResolvePlayers(lines []Line, r Resolver) ([]Line, error) {
	out := make([]Line, len(lines))
	for i, line := range lines {
		if raw, ok := MatchPlayer(line.Text); ok {
			canon, err := r.Resolve(raw)
			if err != nil {
				return nil, fmt.Errorf("parser: line %d: %w", line.Seq, err)
			}
			line.Player = canon
		}
		out[i] = line
	}
	return out, nil
}

// Extract runs every matcher over every line and turns the matches into
// round-scoped facts. Chip amounts are divided by bigBlind. Stack snapshot
// names are canonicalised through r.
func Extract(lines []Line, m Markers, bigBlind decimal.Decimal, r Resolver) (Facts, error) {
	if !bigBlind.IsPositive() {
		return Facts{}, fmt.Errorf("parser: big blind must be positive, got %s", bigBlind)
	}
	matchers := Matchers(m)

	var facts Facts
	for _, line := range lines {
		for _, match := range matchers {
			fact, ok := match(line.Text)
			if !ok {
				continue
			}
			switch f := fact.(type) {
			case StackSnapshot:
				for _, entry := range f.Entries {
					canon, err := r.Resolve(entry.Name)
					if err != nil {
						return Facts{}, fmt.Errorf("parser: line %d: %w", line.Seq, err)
					}
					facts.Stacks = append(facts.Stacks, StackFact{
						Round:  line.Round,
						Player: canon,
						Stack:  entry.Chips.Div(bigBlind),
					})
				}
			case PositionTag:
				if line.Player == "" {
					continue
				}
				facts.Positions = append(facts.Positions, PositionFact{
					Seq:      line.Seq,
					Round:    line.Round,
					Player:   line.Player,
					Position: f.Position,
				})
			case ActionTaken:
				if line.Player == "" {
					continue
				}
				facts.Actions = append(facts.Actions, ActionFact{
					Seq:    line.Seq,
					Round:  line.Round,
					Player: line.Player,
					Phase:  line.Phase,
					Action: f.Action,
					Sizing: f.Amount.Div(bigBlind),
				})
			case HandShown:
				if line.Player == "" {
					continue
				}
				facts.Hands = append(facts.Hands, HandFact{
					Round:  line.Round,
					Player: line.Player,
					Hand:   f.Hand,
				})
			}
		}
	}
	return facts, nil
}

// RawNames lists every distinct raw player name mentioned in the events,
// including names that only appear inside stack snapshots.
func RawNames(events []eventlog.Event, m Markers) []string {
	seen := map[string]struct{}{}
	for _, ev := range events {
		if raw, ok := MatchPlayer(ev.Text); ok {
			seen[raw] = struct{}{}
		}
		if fact, ok := MatchStacks(ev.Text, m); ok {
			for _, entry := range fact.(StackSnapshot).Entries {
				seen[entry.Name] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Unmapped returns the raw names r cannot resolve.
func Unmapped(raw []string, r Resolver) []string {
	var out []string
	for _, name := range raw {
		if _, err := r.Resolve(name); err != nil {
			out = append(out, name)
		}
	}
	return out
}

var _ Resolver = (*names.Table)(nil)
