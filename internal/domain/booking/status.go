package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCheckedIn Status = "checked-in"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses are the statuses that still occupy the calendar.
var ActiveStatuses = []Status{StatusPending, StatusApproved, StatusCheckedIn}

var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCompleted},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCheckedIn, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCheckedIn:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
