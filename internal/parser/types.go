package parser

import (
	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/poker"
)

// Phase is the betting phase a line belongs to.
type Phase uint8

const (
	PhaseOther Phase = iota
	PhasePreflop
)

func (p Phase) String() string {
	if p == PhasePreflop {
		return "preflop"
	}
	return "other"
}

// Position is a player's blind or dealer obligation within a round.
type Position uint8

const (
	PositionNone Position = iota
	SmallBlind
	BigBlind
	Dealer
	Middle
)

func (p Position) String() string {
	switch p {
	case SmallBlind:
		return "small_blind"
	case BigBlind:
		return "big_blind"
	case Dealer:
		return "dealer"
	case Middle:
		return "middle"
	default:
		return ""
	}
}

// Action is a betting action keyword.
type Action uint8

const (
	ActionNone Action = iota
	Call
	Bet
	Raise
	Check
	Fold
)

func (a Action) String() string {
	switch a {
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case Check:
		return "check"
	case Fold:
		return "fold"
	default:
		return ""
	}
}

// Hand is a revealed pair of hole cards.
type Hand struct {
	Card1 poker.Card
	Card2 poker.Card
}

// Line is a log line annotated with its round, phase and canonical player.
// Player is empty when the line names nobody.
type Line struct {
	Seq    int
	Text   string
	Round  int
	Phase  Phase
	Player string
}

// StackFact is a player's stack in big blinds at the start of a round.
type StackFact struct {
	Round  int
	Player string
	Stack  decimal.Decimal
}

// PositionFact records an explicit position mention.
type PositionFact struct {
	Seq      int
	Round    int
	Player   string
	Position Position
}

// ActionFact is a single betting action. Sizing is in big blinds and zero
// for checks and folds.
type ActionFact struct {
	Seq    int
	Round  int
	Player string
	Phase  Phase
	Action Action
	Sizing decimal.Decimal
}

// HandFact is a player's revealed hand for a round.
type HandFact struct {
	Round  int
	Player string
	Hand   Hand
}

// Facts holds everything extracted from a stream, in line order.
type Facts struct {
	Stacks    []StackFact
	Positions []PositionFact
	Actions   []ActionFact
	Hands     []HandFact
}
