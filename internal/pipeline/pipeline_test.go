package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerlogs/internal/eventlog"
	"github.com/lox/pokerlogs/internal/export"
	"github.com/lox/pokerlogs/internal/names"
	"github.com/lox/pokerlogs/internal/parser"
	"github.com/lox/pokerlogs/internal/reconcile"
	"github.com/lox/pokerlogs/poker"
)

var session = []string{
	`-- starting hand #1 (id: h1) (No Limit Texas Hold'em) (dealer: "carol @ c1") --`,
	`Player stacks: #1 "alice @ a1" (400) | #2 "bob @ b1" (200) | #3 "carol @ c1" (100)`,
	`"alice @ a1" posts a small blind of 2`,
	`"bob @ b1" posts a big blind of 4`,
	`"carol @ c1" raises to 40`,
	`"alice @ a1" calls 40`,
	`"bob @ b1" folds`,
	`Flop:  [K♠, 7♦, 2♣]`,
	`"alice @ a1" checks`,
	`"carol @ c1" bets 20`,
	`"alice @ a1" calls 20`,
	`"alice @ a1" shows a 10♥, A♠.`,
	`"carol @ c1" shows a K♦, K♣.`,
	`-- ending hand #1 --`,
	`-- starting hand #2 (id: h2) (No Limit Texas Hold'em) (dealer: "alice_2 @ a1") --`,
	`Player stacks: #1 "alice_2 @ a1" (372) | #2 "bob @ b1" (196)`,
	`"alice_2 @ a1" posts a small blind of 2`,
	`"bob @ b1" posts a big blind of 4`,
	`"alice_2 @ a1" calls 2`,
	`"bob @ b1" checks`,
	`"alice_2 @ a1" shows a 9♣, 9♦.`,
	`-- ending hand #2 --`,
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func table() *names.Table {
	return names.NewTable(map[string]string{
		"alice_2": "alice",
		"bob":     "bob",
		"carol":   "carol",
	})
}

// interleaved splits the session across two sources by alternating rows.
func interleaved() []eventlog.Source {
	a := eventlog.Source{Name: "a.csv"}
	b := eventlog.Source{Name: "b.csv"}
	for i, text := range session {
		rec := eventlog.Record{Order: int64(1000 + i), Entry: text}
		if i%2 == 0 {
			a.Records = append(a.Records, rec)
		} else {
			b.Records = append(b.Records, rec)
		}
	}
	return []eventlog.Source{b, a}
}

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	return New(Config{BigBlind: decimal.NewFromInt(4)}, table(), quietLogger(), quartz.NewMock(t))
}

func TestRun(t *testing.T) {
	res, err := newPipeline(t).Run(context.Background(), interleaved())
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)

	carol := res.Rows[0]
	assert.Equal(t, "carol", carol.Player)
	assert.Equal(t, parser.Dealer, carol.Position)
	assert.Equal(t, parser.Raise, carol.Action)
	assert.Equal(t, 10.0, carol.Sizing.InexactFloat64())
	assert.Equal(t, 25.0, carol.Stack.InexactFloat64())
	assert.Equal(t, poker.HoleCardFeatures{Premium: true, Pocket: true}, carol.Features)

	alice := res.Rows[1]
	assert.Equal(t, "alice", alice.Player)
	assert.Equal(t, parser.SmallBlind, alice.Position)
	assert.Equal(t, parser.Call, alice.Action)
	assert.Equal(t, 100.0, alice.Stack.InexactFloat64())
	assert.Equal(t, poker.HoleCardFeatures{Premium: true}, alice.Features)

	stats := res.Stats
	assert.Equal(t, 2, stats.Sources)
	assert.Equal(t, len(session), stats.Events)
	assert.Equal(t, 2, stats.Rounds)
	assert.Equal(t, 1, stats.ValidRounds)
	assert.Equal(t, 1, stats.DroppedRounds)
	assert.Equal(t, 8, stats.Actions)
	assert.Equal(t, 5, stats.PreflopActions)
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, map[poker.HoleCardCategory]int{poker.CategoryPremium: 1, poker.CategoryTrash: 1}, stats.Categories)
	assert.Zero(t, stats.Elapsed, "mock clock does not move")

	require.NotNil(t, stats.Decisions)
	require.NoError(t, stats.Decisions.Validate())
	assert.Equal(t, 2, stats.Decisions.Actions)
	assert.Equal(t, 1, stats.Decisions.Players["carol"].Raises)
	assert.Equal(t, 1, stats.Decisions.Players["alice"].Calls)
	assert.Equal(t, 1.0, stats.Decisions.VPIP())
	assert.Equal(t, 0.5, stats.Decisions.Aggression())
}

func TestRunEveryRowComplete(t *testing.T) {
	res, err := newPipeline(t).Run(context.Background(), interleaved())
	require.NoError(t, err)
	for _, row := range res.Rows {
		for i, v := range row.Values(false) {
			assert.NotEmpty(t, v, "column %s", export.Columns[i])
		}
	}
}

func TestRunUnmappedNameAborts(t *testing.T) {
	sources := interleaved()
	sources[0].Records = append(sources[0].Records, eventlog.Record{Order: 5000, Entry: `"mallory @ m1" folds`})

	res, err := newPipeline(t).Run(context.Background(), sources)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, names.ErrUnmappedName))
}

func TestRunMultiplicityAborts(t *testing.T) {
	sources := interleaved()
	sources[0].Records = append(sources[0].Records,
		eventlog.Record{Order: 1012, Entry: `Player stacks: #1 "bob @ b1" (204) | #2 "carol @ c1" (100)`})

	_, err := newPipeline(t).Run(context.Background(), sources)
	assert.ErrorIs(t, err, reconcile.ErrMultiplicity)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newPipeline(t).Run(ctx, interleaved())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunDirAndExport(t *testing.T) {
	dir := t.TempDir()
	var sb strings.Builder
	sb.WriteString("entry,at,order\n")
	for i, text := range session {
		sb.WriteString(`"` + strings.ReplaceAll(text, `"`, `""`) + `",2024-01-01T00:00:00Z,` + strconv.Itoa(100+i) + "\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.csv"), []byte(sb.String()), 0o644))

	p := newPipeline(t)
	res, err := p.RunDir(context.Background(), dir, "*.csv")
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	out := filepath.Join(t.TempDir(), "out.csv")
	sink, err := export.Open(export.Options{Path: out})
	require.NoError(t, err)
	require.NoError(t, p.Export(context.Background(), res, sink))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"player_name,stack,position,action,sizing,is_connect,is_suit,is_premium,is_pocket\n"+
			"carol,25,dealer,raise,10,false,false,true,true\n"+
			"alice,100,small_blind,call,10,false,false,true,false\n",
		string(data))
}
