package export

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS preflop_actions (
		run_id      TEXT NOT NULL,
		row_index   INTEGER NOT NULL,
		player_name TEXT NOT NULL,
		stack       REAL NOT NULL,
		position    TEXT NOT NULL,
		action      TEXT NOT NULL,
		sizing      REAL NOT NULL,
		is_connect  INTEGER NOT NULL,
		is_suit     INTEGER NOT NULL,
		is_premium  INTEGER NOT NULL,
		is_pocket   INTEGER NOT NULL,
		hand1_rank  INTEGER,
		hand1_suit  TEXT,
		hand2_rank  INTEGER,
		hand2_suit  TEXT,
		PRIMARY KEY (run_id, row_index)
	);
`

const sqliteInsert = `
	INSERT INTO preflop_actions (
		run_id, row_index, player_name, stack, position, action, sizing,
		is_connect, is_suit, is_premium, is_pocket,
		hand1_rank, hand1_suit, hand2_rank, hand2_suit
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// SQLiteSink appends rows to the preflop_actions table, tagged with a run id
// so several runs can share one database file.
type SQLiteSink struct {
	db           *sql.DB
	runID        string
	includeCards bool
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string, includeCards bool) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("export: open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("export: create schema: %w", err)
	}
	return &SQLiteSink{db: db, runID: uuid.NewString(), includeCards: includeCards}, nil
}

// RunID identifies the rows written by this sink.
func (s *SQLiteSink) RunID() string {
	return s.runID
}

func (s *SQLiteSink) Write(ctx context.Context, rows []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, sqliteInsert)
	if err != nil {
		return fmt.Errorf("export: prepare: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		var r1, r2, s1, s2 any
		if s.includeCards {
			r1, s1 = int(row.Card1.Rank), row.Card1.Suit.String()
			r2, s2 = int(row.Card2.Rank), row.Card2.Suit.String()
		}
		_, err := stmt.ExecContext(ctx,
			s.runID, i, row.Player,
			row.Stack.InexactFloat64(), row.Position.String(), row.Action.String(), row.Sizing.InexactFloat64(),
			row.Features.Connected, row.Features.Suited, row.Features.Premium, row.Features.Pocket,
			r1, s1, r2, s2,
		)
		if err != nil {
			return fmt.Errorf("export: insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit: %w", err)
	}
	return nil
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
