package reconcile

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/internal/parser"
)

// indexStacks keys stacks by (round, player). Repeats of the same value
// collapse; different values are a multiplicity error.
func indexStacks(facts []parser.StackFact) (map[key]decimal.Decimal, error) {
	idx := make(map[key]decimal.Decimal, len(facts))
	for _, f := range facts {
		k := key{f.Round, f.Player}
		if prev, ok := idx[k]; ok {
			if !prev.Equal(f.Stack) {
				return nil, &MultiplicityError{
					Fact:   "stack",
					Round:  f.Round,
					Player: f.Player,
					Values: []string{prev.String(), f.Stack.String()},
				}
			}
			continue
		}
		idx[k] = f.Stack
	}
	return idx, nil
}

// indexPositions keeps the first mention of each position in a round, then
// keys the survivors by (round, player). A player who leaves and re-sits can
// post the same blind twice; only the first post counts.
func indexPositions(facts []parser.PositionFact, valid map[int]bool) (map[key]parser.Position, error) {
	ordered := append([]parser.PositionFact(nil), facts...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Seq < ordered[j].Seq })

	type slot struct {
		round    int
		position parser.Position
	}
	taken := map[slot]bool{}
	idx := map[key]parser.Position{}
	for _, f := range ordered {
		if !valid[f.Round] {
			continue
		}
		s := slot{f.Round, f.Position}
		if taken[s] {
			continue
		}
		taken[s] = true

		k := key{f.Round, f.Player}
		if prev, ok := idx[k]; ok && prev != f.Position {
			return nil, &MultiplicityError{
				Fact:   "position",
				Round:  f.Round,
				Player: f.Player,
				Values: []string{prev.String(), f.Position.String()},
			}
		}
		idx[k] = f.Position
	}
	return idx, nil
}

// indexActions keys actions by line. A line carries at most one action.
func indexActions(facts []parser.ActionFact) (map[int]parser.ActionFact, error) {
	idx := make(map[int]parser.ActionFact, len(facts))
	for _, f := range facts {
		if _, ok := idx[f.Seq]; ok {
			return nil, fmt.Errorf("reconcile: line %d has more than one action", f.Seq)
		}
		idx[f.Seq] = f
	}
	return idx, nil
}

// indexHands keys revealed hands by (round, player). Showing the same hand
// twice is fine; two different hands are not.
func indexHands(facts []parser.HandFact) (map[key]parser.Hand, error) {
	idx := make(map[key]parser.Hand, len(facts))
	for _, f := range facts {
		k := key{f.Round, f.Player}
		if prev, ok := idx[k]; ok {
			if prev != f.Hand {
				return nil, &MultiplicityError{
					Fact:   "hand",
					Round:  f.Round,
					Player: f.Player,
					Values: []string{handString(prev), handString(f.Hand)},
				}
			}
			continue
		}
		idx[k] = f.Hand
	}
	return idx, nil
}

func handString(h parser.Hand) string {
	return h.Card1.String() + " " + h.Card2.String()
}
