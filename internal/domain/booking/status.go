package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// ===============================
// Validations
// ===============================

// ParseDecision accepts only the statuses a trainer can answer with.
func ParseDecision(s string) (Status, error) {
	switch Status(s) {
	case StatusAccepted, StatusRejected:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// CanTransition allows pending -> accepted|rejected only. Accepted and
// rejected are terminal.
func CanTransition(current, next Status) error {
	if current != StatusPending {
		return ErrInvalidTransition
	}
	if next != StatusAccepted && next != StatusRejected {
		return ErrInvalidStatus
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
