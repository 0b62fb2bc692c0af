package analysis

import (
	"math"
	"time"
)

// EquityResult is the outcome of a Monte Carlo equity estimate. Trials may be
// lower than Requested when the estimate was cancelled. With zero trials every
// rate, and Equity, is 0.
type EquityResult struct {
	Wins      int
	Ties      int
	Losses    int
	Trials    int
	Requested int
	Duration  time.Duration

	// Classes breaks the counts down by the hero's starting hand class
	// ("AKs", "QQ"). It has a single entry when the hero holds one hand.
	Classes map[string]ClassResult
}

// ClassResult holds the counts for one starting hand class.
type ClassResult struct {
	Wins   int
	Ties   int
	Losses int
	Trials int
}

// WinRate returns the fraction of trials the hero won outright (0.0 to 1.0)
func (e EquityResult) WinRate() float64 {
	return rate(e.Wins, e.Trials)
}

// TieRate returns the fraction of trials the hero tied for best (0.0 to 1.0)
func (e EquityResult) TieRate() float64 {
	return rate(e.Ties, e.Trials)
}

// LossRate returns the fraction of trials the hero lost (0.0 to 1.0)
func (e EquityResult) LossRate() float64 {
	return rate(e.Losses, e.Trials)
}

// Equity returns the overall equity (0.0 to 1.0)
// Wins count as 1.0, ties count as 0.5
func (e EquityResult) Equity() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return (float64(e.Wins) + float64(e.Ties)*0.5) / float64(e.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	equity := e.Equity()
	n := float64(e.Trials)

	if n == 0 {
		return 0.0, 0.0
	}

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / n)

	// 95% confidence interval (±1.96 * SE)
	margin := 1.96 * se

	lower = math.Max(0.0, equity-margin)
	upper = math.Min(1.0, equity+margin)

	return lower, upper
}

// Complete reports whether every requested trial ran.
func (e EquityResult) Complete() bool {
	return e.Trials == e.Requested
}

// WinRate returns the class's outright win fraction.
func (c ClassResult) WinRate() float64 {
	return rate(c.Wins, c.Trials)
}

// TieRate returns the class's tie fraction.
func (c ClassResult) TieRate() float64 {
	return rate(c.Ties, c.Trials)
}

// LossRate returns the class's loss fraction.
func (c ClassResult) LossRate() float64 {
	return rate(c.Losses, c.Trials)
}

func rate(n, trials int) float64 {
	if trials == 0 {
		return 0.0
	}
	return float64(n) / float64(trials)
}
