package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// Categories lists every category from strongest to weakest, Unknown last.
var Categories = []HoleCardCategory{
	CategoryPremium,
	CategoryStrong,
	CategoryMedium,
	CategoryWeak,
	CategoryTrash,
	CategoryUnknown,
}

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	if !card1.Rank.valid() || !card2.Rank.valid() {
		return CategoryUnknown
	}

	small, big := int(card1.Rank), int(card2.Rank)
	if small > big {
		small, big = big, small
	}
	suited := card1.Suit == card2.Suit
	isPair := small == big

	switch {
	case isPair && small >= int(Jack), small == int(King) && big == int(Ace):
		return CategoryPremium
	case isPair && small == int(Ten), big == int(Ace) && (small == int(Queen) || small == int(Jack)):
		return CategoryStrong
	case isPair && small >= int(Seven), suited && small >= int(Ten):
		return CategoryMedium
	case isPair, suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

// absDiff returns the absolute difference between two integers
func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
