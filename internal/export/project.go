// Package export projects reconciled records onto the training table and
// writes it to a sink.
package export

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/internal/parser"
	"github.com/lox/pokerlogs/internal/reconcile"
	"github.com/lox/pokerlogs/poker"
)

// Row is one preflop action with every feature resolved.
type Row struct {
	Player   string
	Stack    decimal.Decimal
	Position parser.Position
	Action   parser.Action
	Sizing   decimal.Decimal
	Card1    poker.Card
	Card2    poker.Card
	Features poker.HoleCardFeatures
}

// Columns is the exported column order.
var Columns = []string{
	"player_name",
	"stack",
	"position",
	"action",
	"sizing",
	"is_connect",
	"is_suit",
	"is_premium",
	"is_pocket",
}

// CardColumns are appended when raw hole cards are exported.
var CardColumns = []string{
	"hand1_rank",
	"hand1_suit",
	"hand2_rank",
	"hand2_suit",
}

// Project keeps preflop records whose stack, position, action, sizing and
// hand are all resolved, and derives the hand features. Partial records are
// dropped, never imputed.
func Project(records []reconcile.Record) []Row {
	var rows []Row
	for _, rec := range records {
		if rec.Phase != parser.PhasePreflop || !complete(rec) {
			continue
		}
		rows = append(rows, Row{
			Player:   rec.Player,
			Stack:    rec.Stack.Decimal,
			Position: rec.Position,
			Action:   rec.Action,
			Sizing:   rec.Sizing.Decimal,
			Card1:    rec.Hand.Card1,
			Card2:    rec.Hand.Card2,
			Features: poker.DeriveFeatures(rec.Hand.Card1, rec.Hand.Card2),
		})
	}
	return rows
}

func complete(rec reconcile.Record) bool {
	return rec.Player != "" &&
		rec.Stack.Valid &&
		rec.Position != parser.PositionNone &&
		rec.Action != parser.ActionNone &&
		rec.Sizing.Valid &&
		rec.Hand != nil
}

// Header returns the column names, with the card columns when includeCards is set.
func Header(includeCards bool) []string {
	cols := append([]string(nil), Columns...)
	if includeCards {
		cols = append(cols, CardColumns...)
	}
	return cols
}

// Values renders the row in Header order.
func (r Row) Values(includeCards bool) []string {
	vals := []string{
		r.Player,
		r.Stack.String(),
		r.Position.String(),
		r.Action.String(),
		r.Sizing.String(),
		strconv.FormatBool(r.Features.Connected),
		strconv.FormatBool(r.Features.Suited),
		strconv.FormatBool(r.Features.Premium),
		strconv.FormatBool(r.Features.Pocket),
	}
	if includeCards {
		vals = append(vals,
			strconv.Itoa(int(r.Card1.Rank)),
			r.Card1.Suit.String(),
			strconv.Itoa(int(r.Card2.Rank)),
			r.Card2.Suit.String(),
		)
	}
	return vals
}
