package poker

// HoleCardFeatures are the categorical hand-shape features of a starting hand.
type HoleCardFeatures struct {
	Connected bool // ranks adjacent, including the A-2 wheel wrap
	Suited    bool
	Premium   bool // both cards ten or higher
	Pocket    bool
}

// DeriveFeatures computes the hand-shape features of two hole cards.
func DeriveFeatures(card1, card2 Card) HoleCardFeatures {
	gap := absDiff(int(card1.Rank), int(card2.Rank))
	return HoleCardFeatures{
		Connected: gap == 1 || gap == int(Ace-Two),
		Suited:    card1.Suit == card2.Suit,
		Premium:   card1.Rank >= Ten && card2.Rank >= Ten,
		Pocket:    card1.Rank == card2.Rank,
	}
}
