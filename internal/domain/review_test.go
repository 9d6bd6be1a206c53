package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Review Status Tests
// ============================================================================

func TestIsTerminalStatus_Terminal(t *testing.T) {
	assert.True(t, IsTerminalStatus(ReviewStatusApproved))
	assert.True(t, IsTerminalStatus(ReviewStatusRejected))
}

func TestIsTerminalStatus_NonTerminal(t *testing.T) {
	assert.False(t, IsTerminalStatus(ReviewStatusPending))
	assert.False(t, IsTerminalStatus(""))
	assert.False(t, IsTerminalStatus("APPROVED"))
}
