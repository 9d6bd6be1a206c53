package domain

import (
	"time"
)

// Report status constants. Reports start pending and are resolved by an
// admin; resolution is independent of the rating computation.
const (
	ReportStatusPending  = "pending"
	ReportStatusApproved = "approved"
	ReportStatusRejected = "rejected"
)

// Report is a user-filed complaint about a review.
type Report struct {
	ID         string    `json:"id"`
	ReviewID   string    `json:"review_id"`
	ReporterID string    `json:"reporter_id"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsValidReportResolution checks whether the given status is a valid
// terminal report status.
func IsValidReportResolution(status string) bool {
	return status == ReportStatusApproved || status == ReportStatusRejected
}
