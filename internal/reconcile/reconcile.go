// Package reconcile joins round-scoped facts back onto the log lines they
// describe.
//
// Every join is keyed by (round, canonical player) and is many lines to
// one fact: a key that maps to two different facts is an error, never
// resolved by picking one. Rounds with fewer than MinPlayers stacked
// players are dropped before positions are joined.
package reconcile

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/internal/parser"
)

// MinPlayers is the smallest number of stacked players for a valid round.
const MinPlayers = 3

// Record is a log line with every fact that applies to it.
type Record struct {
	Seq      int
	Text     string
	Round    int
	Phase    parser.Phase
	Player   string
	Stack    decimal.NullDecimal
	Position parser.Position
	Action   parser.Action
	Sizing   decimal.NullDecimal
	Hand     *parser.Hand
}

// Result is the reconciled table plus round bookkeeping.
type Result struct {
	Records       []Record
	Rounds        int
	ValidRounds   []int
	DroppedRounds []int
}

type key struct {
	round  int
	player string
}

// Reconciler joins facts onto lines.
type Reconciler struct {
	logger     *log.Logger
	minPlayers int
}

// New creates a reconciler using MinPlayers.
func New(logger *log.Logger) *Reconciler {
	return &Reconciler{logger: logger, minPlayers: MinPlayers}
}

// Reconcile builds one record per line of every valid round.
func (r *Reconciler) Reconcile(lines []parser.Line, facts parser.Facts) (*Result, error) {
	stacks, err := indexStacks(facts.Stacks)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		rec := Record{
			Seq:    line.Seq,
			Text:   line.Text,
			Round:  line.Round,
			Phase:  line.Phase,
			Player: line.Player,
		}
		if stack, ok := stacks[key{line.Round, line.Player}]; ok {
			rec.Stack = decimal.NewNullDecimal(stack)
		}
		records = append(records, rec)
	}

	valid, dropped := r.partitionRounds(lines, stacks)
	records = filterRounds(records, valid)

	positions, err := indexPositions(facts.Positions, valid)
	if err != nil {
		return nil, err
	}
	actions, err := indexActions(facts.Actions)
	if err != nil {
		return nil, err
	}
	hands, err := indexHands(facts.Hands)
	if err != nil {
		return nil, err
	}

	for i := range records {
		rec := &records[i]
		if rec.Player != "" {
			rec.Position = positions[key{rec.Round, rec.Player}]
			if rec.Position == parser.PositionNone {
				rec.Position = parser.Middle
			}
		}
		if action, ok := actions[rec.Seq]; ok {
			rec.Action = action.Action
			rec.Sizing = decimal.NewNullDecimal(action.Sizing)
		}
		if hand, ok := hands[key{rec.Round, rec.Player}]; ok {
			h := hand
			rec.Hand = &h
		}
	}

	return &Result{
		Records:       records,
		Rounds:        len(valid) + len(dropped),
		ValidRounds:   sortedRounds(valid),
		DroppedRounds: dropped,
	}, nil
}

// partitionRounds splits the rounds seen in lines by stacked player count.
func (r *Reconciler) partitionRounds(lines []parser.Line, stacks map[key]decimal.Decimal) (map[int]bool, []int) {
	players := map[int]int{}
	for k := range stacks {
		players[k.round]++
	}

	valid := map[int]bool{}
	var dropped []int
	seen := map[int]bool{}
	for _, line := range lines {
		if line.Round == 0 || seen[line.Round] {
			continue
		}
		seen[line.Round] = true
		if players[line.Round] >= r.minPlayers {
			valid[line.Round] = true
			continue
		}
		dropped = append(dropped, line.Round)
		r.logger.Debug("Dropping short round", "round", line.Round, "players", players[line.Round])
	}
	return valid, dropped
}

func filterRounds(records []Record, valid map[int]bool) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if valid[rec.Round] {
			out = append(out, rec)
		}
	}
	return out
}

func sortedRounds(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for round := range set {
		out = append(out, round)
	}
	sort.Ints(out)
	return out
}
