package parser

import (
	"github.com/lox/pokerlogs/internal/eventlog"
)

// sessionLines is a three-handed hand followed by a heads-up hand.
var sessionLines = []string{
	`The player "dave @ d1" joined the game with a stack of 400.`,
	`-- starting hand #1 (id: h1) (No Limit Texas Hold'em) (dealer: "carol @ c1") --`,
	`Player stacks: #1 "alice @ a1" (400) | #2 "bob @ b1" (200) | #3 "carol @ c1" (100)`,
	`"alice @ a1" posts a small blind of 2`,
	`"bob @ b1" posts a big blind of 4`,
	`"carol @ c1" raises to 12`,
	`"alice @ a1" calls 12`,
	`"bob @ b1" folds`,
	`Flop:  [K♠, 7♦, 2♣]`,
	`"alice @ a1" checks`,
	`"carol @ c1" bets 20`,
	`"alice @ a1" calls 20`,
	`"alice @ a1" shows a 10♥, A♠.`,
	`"carol @ c1" shows a K♦, K♣.`,
	`"carol @ c1" collected 100 from pot`,
	`-- ending hand #1 --`,
	`-- starting hand #2 (id: h2) (No Limit Texas Hold'em) (dealer: "alice @ a1") --`,
	`Player stacks: #1 "alice @ a1" (372) | #2 "bob_2 @ b1" (196)`,
	`"alice @ a1" posts a small blind of 2`,
	`"bob_2 @ b1" posts a big blind of 4`,
	`"alice @ a1" folds`,
	`-- ending hand #2 --`,
}

func sessionEvents() []eventlog.Event {
	events := make([]eventlog.Event, len(sessionLines))
	for i, text := range sessionLines {
		events[i] = eventlog.Event{Seq: i, Text: text}
	}
	return events
}

type mapResolver map[string]string

func (m mapResolver) Resolve(raw string) (string, error) {
	if canon, ok := m[raw]; ok {
		return canon, nil
	}
	return "", &unknownName{raw}
}

type unknownName struct{ name string }

func (e *unknownName) Error() string { return "unknown " + e.name }

func sessionResolver() mapResolver {
	return mapResolver{
		"alice": "alice",
		"bob":   "bob",
		"bob_2": "bob",
		"carol": "carol",
		"dave":  "dave",
	}
}
