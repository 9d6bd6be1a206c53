package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Report Resolution Tests
// ============================================================================

func TestIsValidReportResolution_Valid(t *testing.T) {
	assert.True(t, IsValidReportResolution(ReportStatusApproved))
	assert.True(t, IsValidReportResolution(ReportStatusRejected))
}

func TestIsValidReportResolution_Invalid(t *testing.T) {
	assert.False(t, IsValidReportResolution(ReportStatusPending))
	assert.False(t, IsValidReportResolution(""))
	assert.False(t, IsValidReportResolution("escalated"))
}
