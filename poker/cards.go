package poker

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit name used in exported tables
func (s Suit) String() string {
	switch s {
	case Spades:
		return "spade"
	case Hearts:
		return "heart"
	case Diamonds:
		return "diamond"
	case Clubs:
		return "club"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph as it appears in hand logs
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// ParseSuit maps a suit glyph (♠♥♦♣) or letter (s, h, d, c) to a Suit.
func ParseSuit(r rune) (Suit, error) {
	switch r {
	case '♠', 's', 'S':
		return Spades, nil
	case '♥', 'h', 'H':
		return Hearts, nil
	case '♦', 'd', 'D':
		return Diamonds, nil
	case '♣', 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", r)
	}
}

// Rank is the numeric card rank, 2 through 14 (ace high)
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank as printed in logs
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Ten {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// ParseRank accepts the face letters A, K, Q, J (and T for ten) or a number in 2..10.
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T":
		return Ten, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(Two) || n > int(Ten) {
		return 0, fmt.Errorf("invalid rank %q", s)
	}
	return Rank(n), nil
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the log representation of a card (e.g. "10♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// ParseCard parses a shown card token such as "A♠", "10♥" or "Qd".
// The last rune is the suit and everything before it is the rank.
func ParseCard(token string) (Card, error) {
	token = strings.TrimSpace(token)
	r, size := utf8.DecodeLastRuneInString(token)
	if r == utf8.RuneError || size == len(token) {
		return Card{}, fmt.Errorf("invalid card %q", token)
	}
	suit, err := ParseSuit(r)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", token, err)
	}
	rank, err := ParseRank(token[:len(token)-size])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", token, err)
	}
	return NewCard(rank, suit), nil
}

// MustParseCard is like ParseCard but panics on error. Intended for tests.
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return c
}
