package domain

import (
	"time"
)

// Product category constants. The catalog is limited to this enumerated set;
// comparative reviews only ever pair products within one category.
const (
	CategoryPelicula    = "pelicula"
	CategorySerie       = "serie"
	CategoryVideojuego  = "videojuego"
	CategoryRestaurante = "restaurante"
	CategoryAlimento    = "alimento"
)

// DefaultEloScore is the rating assigned to every product at creation.
const DefaultEloScore = 1500

// Product represents a catalog item ranked by pairwise comparisons.
// EloScore is mutated only through the review approval path.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	EloScore  int       `json:"elo_score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidCategories returns the set of valid product categories.
func ValidCategories() []string {
	return []string{
		CategoryPelicula,
		CategorySerie,
		CategoryVideojuego,
		CategoryRestaurante,
		CategoryAlimento,
	}
}

// IsValidCategory checks whether the given string is a valid product category.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}
