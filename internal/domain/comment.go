package domain

import (
	"time"
)

// Comment is a user comment on a review. Creation is rejected when the
// review's author has disabled comments.
type Comment struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"review_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
