package errs

// Use-case level sentinels shared by commands, queries and handlers
var (
	// Amenity errors
	ErrAmenityNotFound    = New("amenity not found")
	ErrAmenityUnavailable = New("amenity is not available for booking")

	// Booking errors
	ErrBookingNotFound = New("booking not found")
	ErrInvalidTimeSlot = New("invalid time slot")
	ErrForbidden       = New("forbidden")

	// Event errors
	ErrEventNotFound = New("event not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
