// Package statistics aggregates preflop tendencies from exported rows.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pokerlogs/internal/parser"
)

// Observation is a single preflop decision
type Observation struct {
	Player   string
	Position parser.Position
	Action   parser.Action
	SizingBB float64 // Amount put in, in big blinds (0 for checks and folds)
}

// ActionStats tracks the decisions of one player or position
type ActionStats struct {
	Actions int
	Calls   int
	Bets    int
	Raises  int
	Checks  int
	Folds   int

	// Sizing of calls, bets and raises
	SumBB  float64
	SumBB2 float64   // Sum of squares for variance calculation
	Values []float64 // Store all sizings for median/percentile calculation
}

// Statistics tracks preflop decisions per player and per position
type Statistics struct {
	ActionStats

	Players   map[string]*ActionStats
	Positions map[parser.Position]*ActionStats
}

// New returns empty statistics.
func New() *Statistics {
	return &Statistics{
		Players:   make(map[string]*ActionStats),
		Positions: make(map[parser.Position]*ActionStats),
	}
}

// Add incorporates a new decision into the statistics
func (s *Statistics) Add(obs Observation) {
	s.ActionStats.add(obs)

	ps, ok := s.Players[obs.Player]
	if !ok {
		ps = &ActionStats{}
		s.Players[obs.Player] = ps
	}
	ps.add(obs)

	pos, ok := s.Positions[obs.Position]
	if !ok {
		pos = &ActionStats{}
		s.Positions[obs.Position] = pos
	}
	pos.add(obs)
}

func (a *ActionStats) add(obs Observation) {
	a.Actions++
	switch obs.Action {
	case parser.Call:
		a.Calls++
	case parser.Bet:
		a.Bets++
	case parser.Raise:
		a.Raises++
	case parser.Check:
		a.Checks++
	case parser.Fold:
		a.Folds++
	}
	if obs.SizingBB > 0 {
		a.SumBB += obs.SizingBB
		a.SumBB2 += obs.SizingBB * obs.SizingBB
		a.Values = append(a.Values, obs.SizingBB)
	}
}

// PlayerNames returns the observed players sorted by decision count, then name.
func (s *Statistics) PlayerNames() []string {
	out := make([]string, 0, len(s.Players))
	for name := range s.Players {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := s.Players[out[i]].Actions, s.Players[out[j]].Actions
		if ai != aj {
			return ai > aj
		}
		return out[i] < out[j]
	})
	return out
}

// VPIP is the share of decisions that put chips in voluntarily.
func (a *ActionStats) VPIP() float64 {
	if a.Actions == 0 {
		return 0
	}
	return float64(a.Calls+a.Bets+a.Raises) / float64(a.Actions)
}

// Aggression is the share of decisions that bet or raise.
func (a *ActionStats) Aggression() float64 {
	if a.Actions == 0 {
		return 0
	}
	return float64(a.Bets+a.Raises) / float64(a.Actions)
}

// FoldRate is the share of decisions that fold.
func (a *ActionStats) FoldRate() float64 {
	if a.Actions == 0 {
		return 0
	}
	return float64(a.Folds) / float64(a.Actions)
}

// Mean returns the arithmetic mean sizing in big blinds
func (a *ActionStats) Mean() float64 {
	if len(a.Values) == 0 {
		return 0
	}
	return a.SumBB / float64(len(a.Values))
}

// Variance returns the sample variance of the sizings
func (a *ActionStats) Variance() float64 {
	n := len(a.Values)
	if n < 2 {
		return 0
	}
	mean := a.Mean()
	return (a.SumBB2 - float64(n)*mean*mean) / float64(n-1)
}

// StdDev returns the sample standard deviation of the sizings
func (a *ActionStats) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// Median returns the median sizing
func (a *ActionStats) Median() float64 {
	return a.Percentile(0.5)
}

// Percentile returns the sizing at the given percentile (0.0 to 1.0)
func (a *ActionStats) Percentile(p float64) float64 {
	if len(a.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(a.Values))
	copy(sorted, a.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the per-player and per-position breakdowns add up to the totals
func (s *Statistics) Validate() error {
	counted := s.Calls + s.Bets + s.Raises + s.Checks + s.Folds
	if counted != s.Actions {
		return fmt.Errorf("action kinds total (%d) does not match actions (%d)", counted, s.Actions)
	}

	playerActions := 0
	for _, ps := range s.Players {
		playerActions += ps.Actions
	}
	if playerActions != s.Actions {
		return fmt.Errorf("player actions total (%d) does not match actions (%d)", playerActions, s.Actions)
	}

	positionActions := 0
	for _, ps := range s.Positions {
		positionActions += ps.Actions
	}
	if positionActions != s.Actions {
		return fmt.Errorf("position actions total (%d) does not match actions (%d)", positionActions, s.Actions)
	}
	return nil
}
