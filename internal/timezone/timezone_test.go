package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackOnUnknownZone(t *testing.T) {
	assert.Equal(t, Location(DefaultTimezone), Location("Not/AZone"))
	assert.Equal(t, Location(DefaultTimezone), Location(""))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}
