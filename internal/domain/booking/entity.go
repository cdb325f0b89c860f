package booking

import (
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

const (
	SessionOnline   = "online"
	SessionInPerson = "in-person"

	MaxNotesLength = 200
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = dateLayout + " " + timeLayout
)

// ===============================
// Domain Actions
// ===============================

// ApplyDecision moves a pending booking to accepted or rejected.
func ApplyDecision(b *models.Booking, next Status) error {
	if err := CanTransition(Status(b.Status), next); err != nil {
		return err
	}
	b.Status = string(next)
	return nil
}

func ValidSessionType(t string) bool {
	return t == SessionOnline || t == SessionInPerson
}

// StartTime parses the booking date and time in loc.
func StartTime(date, clock string, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return start, nil
}

// IsActive reports whether b represents an ongoing trainer relationship.
func IsActive(b models.Booking) bool {
	return Status(b.Status) == StatusAccepted
}
