package domain

import (
	"time"
)

// Review status constants. A review is created as pending and transitions
// exactly once to approved or rejected during the synchronous submission
// flow; only terminal statuses are ever persisted.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review represents a pairwise comparison between two products of the same
// category, with the author's preferred product and a free-text
// justification. Category is denormalized from the two products at
// submission time so feeds and reports can group without joins.
type Review struct {
	ID                 string    `json:"id"`
	ProductAID         string    `json:"product_a_id"`
	ProductBID         string    `json:"product_b_id"`
	PreferredProductID string    `json:"preferred_product_id"`
	UserID             string    `json:"user_id"`
	Category           string    `json:"category"`
	Justification      string    `json:"justification"`
	AllowComments      bool      `json:"allow_comments"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Comments is populated by the feed composer for personalized feeds.
	Comments []Comment `json:"comments,omitempty"`
}

// IsTerminalStatus reports whether the given status is approved or rejected.
func IsTerminalStatus(status string) bool {
	return status == ReviewStatusApproved || status == ReviewStatusRejected
}
