package amenity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 255

type Type string

const (
	TypeDesk        Type = "desk"
	TypeMeetingRoom Type = "meeting-room"
	TypePodcastRoom Type = "podcast-room"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeDesk, TypeMeetingRoom, TypePodcastRoom:
		return true
	default:
		return false
	}
}

// DefaultDuration is the length proposed for a new booking of this type.
func (t Type) DefaultDuration() time.Duration {
	switch t {
	case TypeDesk:
		return 4 * time.Hour
	case TypeMeetingRoom:
		return 2 * time.Hour
	case TypePodcastRoom:
		return 3 * time.Hour
	default:
		return time.Hour
	}
}

type Amenity struct {
	id           uuid.UUID
	name         string
	amenityType  Type
	capacity     int
	description  string
	isAvailable  bool
	availability Availability
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAmenity(name string, amenityType Type, capacity int, description string, availability Availability, now time.Time) (*Amenity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if !amenityType.IsValid() {
		return nil, ErrInvalidType
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Amenity{
		id:           uuid.New(),
		name:         name,
		amenityType:  amenityType,
		capacity:     capacity,
		description:  strings.TrimSpace(description),
		isAvailable:  true,
		availability: availability,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAmenity(
	id uuid.UUID,
	name string,
	amenityType Type,
	capacity int,
	description string,
	isAvailable bool,
	availability Availability,
	createdAt, updatedAt time.Time,
) *Amenity {
	return &Amenity{
		id:           id,
		name:         name,
		amenityType:  amenityType,
		capacity:     capacity,
		description:  description,
		isAvailable:  isAvailable,
		availability: availability,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// CanHost checks that a booking interval may be placed on this amenity at all,
// independently of other bookings.
func (a *Amenity) CanHost(start, end time.Time) error {
	if !a.isAvailable {
		return ErrNotBookable
	}
	if !a.availability.Covers(start, end) {
		return ErrOutsideOpeningHours
	}
	return nil
}

func (a *Amenity) SetAvailable(available bool, now time.Time) {
	a.isAvailable = available
	a.updatedAt = now
}

func (a *Amenity) ID() uuid.UUID              { return a.id }
func (a *Amenity) Name() string               { return a.name }
func (a *Amenity) Type() Type                 { return a.amenityType }
func (a *Amenity) Capacity() int              { return a.capacity }
func (a *Amenity) Description() string        { return a.description }
func (a *Amenity) IsAvailable() bool          { return a.isAvailable }
func (a *Amenity) Availability() Availability { return a.availability }
func (a *Amenity) Location() *time.Location   { return a.availability.Location }
func (a *Amenity) CreatedAt() time.Time       { return a.createdAt }
func (a *Amenity) UpdatedAt() time.Time       { return a.updatedAt }
