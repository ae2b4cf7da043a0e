package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/poker"
)

var (
	playerPattern   = regexp.MustCompile(`"(\S+) @ \S+"`)
	stackPattern    = regexp.MustCompile(`"(\S+) @ \S+" \((\d+(?:\.\d+)?)\)`)
	positionPattern = regexp.MustCompile(`small blind|big blind|dealer`)
	actionPattern   = regexp.MustCompile(`\b(?:(calls|bets|raises to) (\d+(?:\.\d+)?)|(checks|folds))\b`)
)

const showsPrefix = "shows a "

// FactKind identifies the kind of fact a matcher produces.
type FactKind uint8

const (
	KindStacks FactKind = iota + 1
	KindPosition
	KindAction
	KindHand
)

// Fact is a value recognised in a single line of text.
type Fact interface {
	Kind() FactKind
}

// StackEntry is one player's chip count inside a stacks snapshot.
type StackEntry struct {
	Name  string
	Chips decimal.Decimal
}

// StackSnapshot lists every seated player's chips; raw names, chip units.
type StackSnapshot struct {
	Entries []StackEntry
}

// PositionTag is the first position keyword in a line.
type PositionTag struct {
	Position Position
}

// ActionTaken is a betting action with its chip amount (zero for check/fold).
type ActionTaken struct {
	Action Action
	Amount decimal.Decimal
}

// HandShown is a player's revealed hole cards.
type HandShown struct {
	Hand Hand
}

func (StackSnapshot) Kind() FactKind { return KindStacks }
func (PositionTag) Kind() FactKind   { return KindPosition }
func (ActionTaken) Kind() FactKind   { return KindAction }
func (HandShown) Kind() FactKind     { return KindHand }

// Matcher recognises one kind of fact in a line of text.
type Matcher func(text string) (Fact, bool)

// Matchers returns the matcher set for the given markers, one per fact kind.
func Matchers(m Markers) []Matcher {
	return []Matcher{
		func(text string) (Fact, bool) { return MatchStacks(text, m) },
		MatchPosition,
		MatchAction,
		MatchHand,
	}
}

// MatchPlayer returns the raw name of the first quoted "<name> @ <id>" in text.
func MatchPlayer(text string) (string, bool) {
	sub := playerPattern.FindStringSubmatch(text)
	if sub == nil {
		return "", false
	}
	return sub[1], true
}

// MatchStacks recognises a stacks snapshot and returns every "<name> @ <id>" (<chips>) pair.
func MatchStacks(text string, m Markers) (Fact, bool) {
	if !m.isStacks(text) {
		return nil, false
	}
	var snap StackSnapshot
	for _, sub := range stackPattern.FindAllStringSubmatch(text, -1) {
		chips, err := decimal.NewFromString(sub[2])
		if err != nil {
			continue
		}
		snap.Entries = append(snap.Entries, StackEntry{Name: sub[1], Chips: chips})
	}
	if len(snap.Entries) == 0 {
		return nil, false
	}
	return snap, true
}

// MatchPosition returns the first position keyword in text.
func MatchPosition(text string) (Fact, bool) {
	switch positionPattern.FindString(text) {
	case "small blind":
		return PositionTag{Position: SmallBlind}, true
	case "big blind":
		return PositionTag{Position: BigBlind}, true
	case "dealer":
		return PositionTag{Position: Dealer}, true
	}
	return nil, false
}

// MatchAction recognises "calls N", "bets N", "raises to N", "checks" and "folds".
func MatchAction(text string) (Fact, bool) {
	sub := actionPattern.FindStringSubmatch(text)
	if sub == nil {
		return nil, false
	}
	switch sub[3] {
	case "checks":
		return ActionTaken{Action: Check, Amount: decimal.Zero}, true
	case "folds":
		return ActionTaken{Action: Fold, Amount: decimal.Zero}, true
	}

	amount, err := decimal.NewFromString(sub[2])
	if err != nil {
		return nil, false
	}
	var action Action
	switch sub[1] {
	case "calls":
		action = Call
	case "bets":
		action = Bet
	case "raises to":
		action = Raise
	default:
		return nil, false
	}
	return ActionTaken{Action: action, Amount: amount}, true
}

// MatchHand parses the two cards following "shows a " up to the end of the line.
func MatchHand(text string) (Fact, bool) {
	idx := strings.LastIndex(text, showsPrefix)
	if idx < 0 {
		return nil, false
	}
	rest := strings.TrimSpace(text[idx+len(showsPrefix):])
	rest = strings.TrimSuffix(rest, ".")

	tokens := strings.Split(rest, ",")
	if len(tokens) != 2 {
		return nil, false
	}
	card1, err := poker.ParseCard(tokens[0])
	if err != nil {
		return nil, false
	}
	card2, err := poker.ParseCard(tokens[1])
	if err != nil {
		return nil, false
	}
	return HandShown{Hand: Hand{Card1: card1, Card2: card2}}, true
}
