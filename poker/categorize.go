package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// Categorize provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func (h HoleCards) Categorize() HoleCardCategory {
	small, big := h[0].Rank, h[1].Rank
	if small > big {
		small, big = big, small
	}
	suited := h[0].Suit == h[1].Suit
	isPair := small == big

	switch {
	case isPair && small >= Jack, small == King && big == Ace:
		return CategoryPremium
	case isPair && small == Ten, big == Ace && (small == Queen || small == Jack):
		return CategoryStrong
	case isPair && small >= Seven, suited && small >= Ten:
		return CategoryMedium
	case isPair, suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}
