package amenity

import "errors"

var (
	ErrEmptyName           = errors.New("amenity name cannot be empty")
	ErrNameTooLong         = errors.New("amenity name is too long (max 255 characters)")
	ErrInvalidType         = errors.New("invalid amenity type")
	ErrInvalidCapacity     = errors.New("amenity capacity must be at least 1")
	ErrInvalidHours        = errors.New("opening hours must satisfy 0 <= start < end <= 24")
	ErrInvalidWeekday      = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidSlotDuration = errors.New("slot duration must be 15, 30 or 60 minutes")
	ErrOutsideOpeningHours = errors.New("booking is outside the amenity's opening hours")
	ErrNotBookable         = errors.New("amenity is not available for booking")
)
