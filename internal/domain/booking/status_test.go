package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		next    Status
		wantErr error
	}{
		{"pending to accepted", StatusPending, StatusAccepted, nil},
		{"pending to rejected", StatusPending, StatusRejected, nil},
		{"pending to pending", StatusPending, StatusPending, ErrInvalidStatus},
		{"accepted is terminal", StatusAccepted, StatusRejected, ErrInvalidTransition},
		{"rejected is terminal", StatusRejected, StatusAccepted, ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.current, tc.next)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseDecision(t *testing.T) {
	s, err := ParseDecision("accepted")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, s)

	_, err = ParseDecision("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseDecision("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApplyDecision_LeavesTerminalBookingUntouched(t *testing.T) {
	b := &models.Booking{Status: string(StatusAccepted)}

	err := ApplyDecision(b, StatusRejected)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, string(StatusAccepted), b.Status)
}

func TestStartTime(t *testing.T) {
	loc := time.UTC

	start, err := StartTime("2024-01-10", "10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 10, 0, 0, 0, loc), start)

	_, err = StartTime("10/01/2024", "10:00", loc)
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}
