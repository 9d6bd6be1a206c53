// Package rating implements the Elo update applied after each pairwise
// comparison outcome.
package rating

import (
	"math"
)

// DefaultKFactor controls the magnitude of each rating adjustment when no
// explicit value is configured.
const DefaultKFactor = 32

// Engine computes Elo score updates. The K-factor is fixed at construction
// so callers never share mutable global state.
type Engine struct {
	k float64
}

// NewEngine creates an Elo engine with the given K-factor. Non-positive
// values fall back to DefaultKFactor.
func NewEngine(kFactor int) *Engine {
	if kFactor <= 0 {
		kFactor = DefaultKFactor
	}
	return &Engine{k: float64(kFactor)}
}

// KFactor returns the configured K-factor.
func (e *Engine) KFactor() int {
	return int(e.k)
}

// Update returns the new scores for two products after one comparison.
// aWon is true when product A was preferred. The adjustment is zero-sum
// before rounding; scores are unbounded in both directions.
func (e *Engine) Update(scoreA, scoreB int, aWon bool) (int, int) {
	expectedA := expectedScore(scoreA, scoreB)
	expectedB := 1 - expectedA

	actualA, actualB := 0.0, 1.0
	if aWon {
		actualA, actualB = 1.0, 0.0
	}

	newA := scoreA + int(math.Round(e.k*(actualA-expectedA)))
	newB := scoreB + int(math.Round(e.k*(actualB-expectedB)))
	return newA, newB
}

// expectedScore is the logistic expected outcome for a player with scoreA
// against scoreB.
func expectedScore(scoreA, scoreB int) float64 {
	return 1 / (1 + math.Pow(10, float64(scoreB-scoreA)/400))
}
