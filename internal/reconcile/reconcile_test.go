package reconcile

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerlogs/internal/parser"
	"github.com/lox/pokerlogs/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func bb(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// threeHanded builds round 1 with three stacked players and round 2 with two.
func threeHanded() ([]parser.Line, parser.Facts) {
	lines := []parser.Line{
		{Seq: 0, Round: 0, Player: "dave", Text: "joined"},
		{Seq: 1, Round: 1, Player: "carol", Text: "start (dealer)"},
		{Seq: 2, Round: 1, Player: "alice", Text: "stacks"},
		{Seq: 3, Round: 1, Player: "alice", Phase: parser.PhasePreflop, Text: "sb"},
		{Seq: 4, Round: 1, Player: "bob", Phase: parser.PhasePreflop, Text: "bb"},
		{Seq: 5, Round: 1, Player: "carol", Phase: parser.PhasePreflop, Text: "raise"},
		{Seq: 6, Round: 1, Player: "", Text: "flop"},
		{Seq: 7, Round: 1, Player: "alice", Text: "shows"},
		{Seq: 8, Round: 2, Player: "alice", Text: "start"},
		{Seq: 9, Round: 2, Player: "alice", Text: "stacks"},
		{Seq: 10, Round: 2, Player: "alice", Phase: parser.PhasePreflop, Text: "fold"},
	}
	facts := parser.Facts{
		Stacks: []parser.StackFact{
			{Round: 1, Player: "alice", Stack: bb(100)},
			{Round: 1, Player: "bob", Stack: bb(50)},
			{Round: 1, Player: "carol", Stack: bb(25)},
			{Round: 2, Player: "alice", Stack: bb(93)},
			{Round: 2, Player: "bob", Stack: bb(49)},
		},
		Positions: []parser.PositionFact{
			{Seq: 1, Round: 1, Player: "carol", Position: parser.Dealer},
			{Seq: 3, Round: 1, Player: "alice", Position: parser.SmallBlind},
			{Seq: 4, Round: 1, Player: "bob", Position: parser.BigBlind},
			{Seq: 8, Round: 2, Player: "alice", Position: parser.Dealer},
			{Seq: 10, Round: 2, Player: "alice", Position: parser.SmallBlind},
		},
		Actions: []parser.ActionFact{
			{Seq: 5, Round: 1, Player: "carol", Phase: parser.PhasePreflop, Action: parser.Raise, Sizing: bb(3)},
			{Seq: 10, Round: 2, Player: "alice", Phase: parser.PhasePreflop, Action: parser.Fold, Sizing: decimal.Zero},
		},
		Hands: []parser.HandFact{
			{Round: 1, Player: "carol", Hand: parser.Hand{Card1: poker.MustParseCard("K♦"), Card2: poker.MustParseCard("K♣")}},
			{Round: 1, Player: "carol", Hand: parser.Hand{Card1: poker.MustParseCard("K♦"), Card2: poker.MustParseCard("K♣")}},
		},
	}
	return lines, facts
}

func TestReconcile(t *testing.T) {
	lines, facts := threeHanded()
	res, err := New(quietLogger()).Reconcile(lines, facts)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, []int{1}, res.ValidRounds)
	assert.Equal(t, []int{2}, res.DroppedRounds)
	require.Len(t, res.Records, 7, "round 0 and round 2 are dropped")

	for _, rec := range res.Records {
		assert.Equal(t, 1, rec.Round)
	}

	bySeq := map[int]Record{}
	for _, rec := range res.Records {
		bySeq[rec.Seq] = rec
	}

	raise := bySeq[5]
	assert.Equal(t, "carol", raise.Player)
	assert.True(t, raise.Stack.Valid)
	assert.True(t, bb(25).Equal(raise.Stack.Decimal))
	assert.Equal(t, parser.Dealer, raise.Position)
	assert.Equal(t, parser.Raise, raise.Action)
	assert.True(t, bb(3).Equal(raise.Sizing.Decimal))
	require.NotNil(t, raise.Hand)
	assert.Equal(t, poker.MustParseCard("K♦"), raise.Hand.Card1)

	assert.Equal(t, parser.SmallBlind, bySeq[3].Position)
	assert.Equal(t, parser.BigBlind, bySeq[4].Position)
	assert.Nil(t, bySeq[3].Hand, "alice never showed")
	assert.Equal(t, parser.ActionNone, bySeq[3].Action)
	assert.False(t, bySeq[3].Sizing.Valid)

	flop := bySeq[6]
	assert.Equal(t, parser.PositionNone, flop.Position, "lines without a player get no default")
	assert.False(t, flop.Stack.Valid)
}

func TestReconcileDefaultsMiddle(t *testing.T) {
	lines := []parser.Line{
		{Seq: 0, Round: 1, Player: "alice"},
		{Seq: 1, Round: 1, Player: "erin"},
	}
	facts := parser.Facts{
		Stacks: []parser.StackFact{
			{Round: 1, Player: "alice", Stack: bb(10)},
			{Round: 1, Player: "bob", Stack: bb(10)},
			{Round: 1, Player: "carol", Stack: bb(10)},
		},
		Positions: []parser.PositionFact{{Seq: 0, Round: 1, Player: "alice", Position: parser.SmallBlind}},
	}
	res, err := New(quietLogger()).Reconcile(lines, facts)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, parser.SmallBlind, res.Records[0].Position)
	assert.Equal(t, parser.Middle, res.Records[1].Position)
	assert.False(t, res.Records[1].Stack.Valid, "erin has no stack in this round")
}

func TestReconcilePositionDedupOnResit(t *testing.T) {
	lines, facts := threeHanded()
	// alice leaves and re-sits, posting the small blind a second time
	lines = append(lines[:6:6], parser.Line{Seq: 20, Round: 1, Player: "alice", Phase: parser.PhasePreflop, Text: "sb again"})
	facts.Positions = append(facts.Positions,
		parser.PositionFact{Seq: 20, Round: 1, Player: "alice", Position: parser.SmallBlind})

	res, err := New(quietLogger()).Reconcile(lines, facts)
	require.NoError(t, err)
	for _, rec := range res.Records {
		if rec.Player == "alice" {
			assert.Equal(t, parser.SmallBlind, rec.Position)
		}
	}
}

func TestReconcileSecondPosterOfBlindIgnored(t *testing.T) {
	lines, facts := threeHanded()
	facts.Positions = append(facts.Positions,
		parser.PositionFact{Seq: 6, Round: 1, Player: "carol", Position: parser.SmallBlind})

	res, err := New(quietLogger()).Reconcile(lines, facts)
	require.NoError(t, err, "carol's late small blind is not a second position")
	for _, rec := range res.Records {
		if rec.Player == "carol" {
			assert.Equal(t, parser.Dealer, rec.Position)
		}
	}
}

func TestReconcileMultiplicity(t *testing.T) {
	t.Run("conflicting stacks", func(t *testing.T) {
		lines, facts := threeHanded()
		facts.Stacks = append(facts.Stacks, parser.StackFact{Round: 1, Player: "bob", Stack: bb(51)})
		_, err := New(quietLogger()).Reconcile(lines, facts)
		require.Error(t, err)

		var multi *MultiplicityError
		require.True(t, errors.As(err, &multi))
		assert.Equal(t, "stack", multi.Fact)
		assert.Equal(t, 1, multi.Round)
		assert.Equal(t, "bob", multi.Player)
		assert.Equal(t, []string{"50", "51"}, multi.Values)
	})

	t.Run("conflicting hands", func(t *testing.T) {
		lines, facts := threeHanded()
		facts.Hands = append(facts.Hands, parser.HandFact{
			Round: 1, Player: "carol",
			Hand: parser.Hand{Card1: poker.MustParseCard("2♦"), Card2: poker.MustParseCard("7♣")},
		})
		_, err := New(quietLogger()).Reconcile(lines, facts)
		assert.ErrorIs(t, err, ErrMultiplicity)
	})

	t.Run("two positions for one player", func(t *testing.T) {
		lines, facts := threeHanded()
		facts.Positions = append(facts.Positions,
			parser.PositionFact{Seq: 5, Round: 1, Player: "carol", Position: parser.Middle})
		_, err := New(quietLogger()).Reconcile(lines, facts)
		assert.ErrorIs(t, err, ErrMultiplicity)
	})

	t.Run("short rounds are not checked", func(t *testing.T) {
		lines, facts := threeHanded()
		// heads-up: the dealer also posts the big blind
		facts.Positions = append(facts.Positions,
			parser.PositionFact{Seq: 10, Round: 2, Player: "alice", Position: parser.BigBlind})
		_, err := New(quietLogger()).Reconcile(lines, facts)
		assert.NoError(t, err)
	})

	t.Run("duplicate action for a line", func(t *testing.T) {
		lines, facts := threeHanded()
		facts.Actions = append(facts.Actions, facts.Actions[0])
		_, err := New(quietLogger()).Reconcile(lines, facts)
		assert.Error(t, err)
	})
}
