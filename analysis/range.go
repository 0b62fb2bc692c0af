// Package analysis provides poker hand analysis tools including ranges and
// Monte Carlo equity estimation.
package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/holdem/poker"
)

// RangeSpec is range notation as typed by a user, e.g. "AsKd", "TT+,AKs",
// "A*K*" or "random".
type RangeSpec string

// Range is a parsed range: a de-duplicated set of two card combinations. Hands
// written out card by card are remembered as literals, because a literal that
// collides with a known card is an error rather than something to drop.
type Range struct {
	spec     RangeSpec
	hands    map[poker.CardSet]poker.HoleCards
	literals map[poker.CardSet]poker.HoleCards
}

// NewRange creates a new empty range.
func NewRange() *Range {
	return &Range{
		hands:    make(map[poker.CardSet]poker.HoleCards),
		literals: make(map[poker.CardSet]poker.HoleCards),
	}
}

// ParseRange creates a range from poker notation. Parts are separated by
// commas and combined.
//
//	AsKd, As Kd     one exact hand
//	As**, A*K*      card patterns, '*' matches any rank or suit
//	****, random    every two card combination
//	AA, AKs, AKo    pocket pairs, suited, offsuit
//	AK              suited and offsuit
//	TT+, ATs+       pairs upwards, kicker upwards
//	22-55, A5s-A2s  inclusive spans
func ParseRange(spec RangeSpec) (*Range, error) {
	r := NewRange()
	r.spec = spec

	parts := strings.SplitSeq(string(spec), ",")
	for part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if err := r.addRangePart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	if len(r.hands) == 0 {
		return nil, &poker.ParseError{Input: string(spec), Reason: "empty range"}
	}
	return r, nil
}

// Expand parses spec and returns its combinations minus any that use an
// excluded card.
func Expand(spec RangeSpec, excluded poker.CardSet) ([]poker.HoleCards, error) {
	r, err := ParseRange(spec)
	if err != nil {
		return nil, err
	}
	return r.Expand(excluded)
}

// Expand returns every combination that avoids the excluded cards, ordered by
// card index. An exact hand that uses an excluded card is a conflict, as is a
// range with nothing left once the excluded cards are removed.
func (r *Range) Expand(excluded poker.CardSet) ([]poker.HoleCards, error) {
	for _, key := range sortedKeys(r.literals) {
		if key.Intersects(excluded) {
			return nil, fmt.Errorf("%w: %s uses a known card", poker.ErrConflict, r.literals[key])
		}
	}

	hands := make([]poker.HoleCards, 0, len(r.hands))
	for _, key := range sortedKeys(r.hands) {
		if !key.Intersects(excluded) {
			hands = append(hands, r.hands[key])
		}
	}
	if len(hands) == 0 {
		return nil, fmt.Errorf("%w: every hand in %q uses a known card", poker.ErrConflict, r.spec)
	}
	return hands, nil
}

// addRangePart adds a single range notation part to the range.
func (r *Range) addRangePart(part string) error {
	switch strings.ToLower(part) {
	case "random", "any":
		return r.addPattern(wildcard, wildcard)
	}

	// Check for range patterns like "TT+" or "A5s-A2s" or "22-66"
	if strings.Contains(part, "+") {
		return r.addPlusRange(part)
	}
	if strings.Contains(part, "-") {
		return r.addDashRange(part)
	}

	compact := strings.Join(strings.Fields(part), "")
	if len(compact) == 4 {
		return r.addCards(compact)
	}

	// Single hand notation
	return r.addSingleHand(part)
}

// cardPattern matches cards by rank and suit; a nil field matches anything.
type cardPattern struct {
	rank *poker.Rank
	suit *poker.Suit
}

var wildcard = cardPattern{}

func (p cardPattern) exact() bool {
	return p.rank != nil && p.suit != nil
}

func (p cardPattern) matches(c poker.Card) bool {
	return (p.rank == nil || *p.rank == c.Rank) && (p.suit == nil || *p.suit == c.Suit)
}

func parsePattern(s string) (cardPattern, error) {
	var p cardPattern
	if s[0] != '*' {
		rank, ok := poker.ParseRank(s[0])
		if !ok {
			return p, fmt.Errorf("%w: unknown rank '%c'", poker.ErrParse, s[0])
		}
		p.rank = &rank
	}
	if s[1] != '*' {
		suit, ok := poker.ParseSuit(s[1])
		if !ok {
			return p, fmt.Errorf("%w: unknown suit '%c'", poker.ErrParse, s[1])
		}
		p.suit = &suit
	}
	return p, nil
}

// addCards handles two card tokens such as "AsKd", "As**" or "A*K*".
func (r *Range) addCards(s string) error {
	first, err := parsePattern(s[:2])
	if err != nil {
		return err
	}
	second, err := parsePattern(s[2:])
	if err != nil {
		return err
	}

	if first.exact() && second.exact() {
		hole, err := poker.NewHoleCards(poker.NewCard(*first.rank, *first.suit), poker.NewCard(*second.rank, *second.suit))
		if err != nil {
			return err
		}
		r.literals[hole.Set()] = hole
		r.add(hole)
		return nil
	}
	return r.addPattern(first, second)
}

func (r *Range) addPattern(first, second cardPattern) error {
	deck := poker.Standard()
	added := false
	for _, a := range deck {
		if !first.matches(a) {
			continue
		}
		for _, b := range deck {
			if a == b || !second.matches(b) {
				continue
			}
			r.add(poker.HoleCards{a, b})
			added = true
		}
	}
	if !added {
		return fmt.Errorf("%w: pattern matches no hands", poker.ErrParse)
	}
	return nil
}

// add keeps the first spelling seen for a combination.
func (r *Range) add(hole poker.HoleCards) {
	key := hole.Set()
	if _, ok := r.hands[key]; !ok {
		r.hands[key] = hole
	}
}

// addSingleHand adds all combinations of a single hand notation.
func (r *Range) addSingleHand(notation string) error {
	if len(notation) < 2 || len(notation) > 3 {
		return fmt.Errorf("%w: invalid notation length: %s", poker.ErrParse, notation)
	}

	rank1, rank2, err := parseRanks(notation)
	if err != nil {
		return err
	}

	// Pocket pair
	if rank1 == rank2 {
		if len(notation) == 3 {
			return fmt.Errorf("%w: pocket pairs cannot have suited/offsuit modifier: %s", poker.ErrParse, notation)
		}
		r.addPocketPair(rank1)
		return nil
	}

	// Unpaired hand
	if len(notation) == 2 {
		r.addSuitedCombos(rank1, rank2)
		r.addOffsuitCombos(rank1, rank2)
		return nil
	}

	// Suited or offsuit specifically
	switch notation[2] {
	case 's':
		r.addSuitedCombos(rank1, rank2)
	case 'o':
		r.addOffsuitCombos(rank1, rank2)
	default:
		return fmt.Errorf("%w: invalid modifier: %c", poker.ErrParse, notation[2])
	}
	return nil
}

// addPlusRange handles notations like "TT+" (all pairs TT and higher)
func (r *Range) addPlusRange(notation string) error {
	base, rest, _ := strings.Cut(notation, "+")
	if rest != "" {
		return fmt.Errorf("%w: unexpected text after '+'", poker.ErrParse)
	}
	if len(base) < 2 || len(base) > 3 {
		return fmt.Errorf("%w: invalid base notation: %s", poker.ErrParse, base)
	}

	rank1, rank2, err := parseRanks(base)
	if err != nil {
		return err
	}

	// Handle pocket pairs like "TT+"
	if rank1 == rank2 {
		if len(base) == 3 {
			return fmt.Errorf("%w: pocket pairs cannot have suited/offsuit modifier: %s", poker.ErrParse, base)
		}
		for rank := rank1; rank <= poker.Ace; rank++ {
			r.addPocketPair(rank)
		}
		return nil
	}

	suited, offsuit, err := parseModifier(base)
	if err != nil {
		return err
	}

	// For hands like "KTs+", increment the lower card up to one below the higher
	high, low := max(rank1, rank2), min(rank1, rank2)
	for rank := low; rank < high; rank++ {
		if suited {
			r.addSuitedCombos(high, rank)
		}
		if offsuit {
			r.addOffsuitCombos(high, rank)
		}
	}
	return nil
}

// addDashRange handles notations like "22-66" or "A5s-A2s"
func (r *Range) addDashRange(notation string) error {
	start, end, _ := strings.Cut(notation, "-")
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	if len(start) < 2 || len(end) < 2 || len(start) > 3 || len(end) > 3 {
		return fmt.Errorf("%w: invalid notation in range", poker.ErrParse)
	}

	startRank1, startRank2, err := parseRanks(start)
	if err != nil {
		return err
	}
	endRank1, endRank2, err := parseRanks(end)
	if err != nil {
		return err
	}

	// Handle pocket pair ranges like "22-66"
	if startRank1 == startRank2 && endRank1 == endRank2 {
		for rank := min(startRank1, endRank1); rank <= max(startRank1, endRank1); rank++ {
			r.addPocketPair(rank)
		}
		return nil
	}

	// Handle suited/offsuit ranges like "A5s-A2s"
	if startRank1 != endRank1 || startRank1 == startRank2 || endRank1 == endRank2 {
		return fmt.Errorf("%w: unsupported range format: %s", poker.ErrParse, notation)
	}
	suited, offsuit, err := parseModifier(start)
	if err != nil {
		return err
	}
	endSuited, endOffsuit, err := parseModifier(end)
	if err != nil {
		return err
	}
	if suited != endSuited || offsuit != endOffsuit {
		return fmt.Errorf("%w: mismatched modifiers in %s", poker.ErrParse, notation)
	}

	for rank := min(startRank2, endRank2); rank <= max(startRank2, endRank2); rank++ {
		if rank == startRank1 {
			continue
		}
		if suited {
			r.addSuitedCombos(startRank1, rank)
		}
		if offsuit {
			r.addOffsuitCombos(startRank1, rank)
		}
	}
	return nil
}

// addPocketPair adds all 6 combinations of a pocket pair
func (r *Range) addPocketPair(rank poker.Rank) {
	for i, suit1 := range poker.Suits {
		for _, suit2 := range poker.Suits[i+1:] {
			r.add(poker.HoleCards{poker.NewCard(rank, suit1), poker.NewCard(rank, suit2)})
		}
	}
}

// addSuitedCombos adds all 4 suited combinations
func (r *Range) addSuitedCombos(rank1, rank2 poker.Rank) {
	for _, suit := range poker.Suits {
		r.add(poker.HoleCards{poker.NewCard(rank1, suit), poker.NewCard(rank2, suit)})
	}
}

// addOffsuitCombos adds all 12 offsuit combinations
func (r *Range) addOffsuitCombos(rank1, rank2 poker.Rank) {
	for _, suit1 := range poker.Suits {
		for _, suit2 := range poker.Suits {
			if suit1 != suit2 {
				r.add(poker.HoleCards{poker.NewCard(rank1, suit1), poker.NewCard(rank2, suit2)})
			}
		}
	}
}

// Contains checks if the combination is in the range, in either card order.
func (r *Range) Contains(c1, c2 poker.Card) bool {
	_, ok := r.hands[poker.NewCardSet(c1, c2)]
	return ok
}

// Size returns the number of hand combinations in the range
func (r *Range) Size() int {
	return len(r.hands)
}

// Hands returns all hands in the range ordered by card index.
func (r *Range) Hands() []poker.HoleCards {
	hands := make([]poker.HoleCards, 0, len(r.hands))
	for _, key := range sortedKeys(r.hands) {
		hands = append(hands, r.hands[key])
	}
	return hands
}

// String returns the notation the range was parsed from.
func (r *Range) String() string {
	return string(r.spec)
}

func sortedKeys(m map[poker.CardSet]poker.HoleCards) []poker.CardSet {
	keys := make([]poker.CardSet, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func parseRanks(notation string) (poker.Rank, poker.Rank, error) {
	rank1, ok1 := poker.ParseRank(notation[0])
	rank2, ok2 := poker.ParseRank(notation[1])
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("%w: invalid rank in: %s", poker.ErrParse, notation)
	}
	return rank1, rank2, nil
}

// parseModifier reads the optional 's' or 'o' suffix of an unpaired hand.
func parseModifier(notation string) (suited, offsuit bool, err error) {
	switch {
	case len(notation) == 2:
		return true, true, nil
	case notation[2] == 's':
		return true, false, nil
	case notation[2] == 'o':
		return false, true, nil
	default:
		return false, false, fmt.Errorf("%w: invalid modifier: %c", poker.ErrParse, notation[2])
	}
}
