package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// User Admin Tests
// ============================================================================

func TestIsAdmin_WithAdminProfile(t *testing.T) {
	u := User{ID: "user-001", Profile: &Profile{Admin: true}}
	assert.True(t, u.IsAdmin())
}

func TestIsAdmin_WithRegularProfile(t *testing.T) {
	u := User{ID: "user-001", Profile: &Profile{Admin: false}}
	assert.False(t, u.IsAdmin())
}

func TestIsAdmin_WithoutProfile(t *testing.T) {
	u := User{ID: "user-001"}
	assert.False(t, u.IsAdmin())
}
