//go:build unit || e2e

package builder

import (
	"time"

	"hub-booking/internal/domain/amenity"

	"github.com/google/uuid"
)

type AmenityBuilder struct {
	ID           uuid.UUID
	Name         string
	Type         amenity.Type
	Capacity     int
	Description  string
	IsAvailable  bool
	Availability amenity.Availability
	CreatedAt    time.Time
}

func NewAmenityBuilder() *AmenityBuilder {
	return &AmenityBuilder{
		ID:           uuid.New(),
		Name:         "Meeting Room A",
		Type:         amenity.TypeMeetingRoom,
		Capacity:     8,
		Description:  "Second floor, whiteboard and screen",
		IsAvailable:  true,
		Availability: amenity.DefaultAvailability(time.UTC),
		CreatedAt:    defaultBookingStart.AddDate(0, -1, 0),
	}
}

func (a *AmenityBuilder) With(mutate func(*AmenityBuilder)) *AmenityBuilder {
	mutate(a)
	return a
}

func (a *AmenityBuilder) BuildDomain() (*amenity.Amenity, error) {
	return amenity.NewAmenity(a.Name, a.Type, a.Capacity, a.Description, a.Availability, a.CreatedAt)
}

func (a *AmenityBuilder) BuildStored() *amenity.Amenity {
	return amenity.ReconstructAmenity(
		a.ID, a.Name, a.Type, a.Capacity, a.Description, a.IsAvailable, a.Availability,
		a.CreatedAt, a.CreatedAt,
	)
}

func (a *AmenityBuilder) WithID(id uuid.UUID) *AmenityBuilder {
	a.ID = id
	return a
}

func (a *AmenityBuilder) WithName(name string) *AmenityBuilder {
	a.Name = name
	return a
}

func (a *AmenityBuilder) WithType(t amenity.Type) *AmenityBuilder {
	a.Type = t
	return a
}

func (a *AmenityBuilder) WithCapacity(capacity int) *AmenityBuilder {
	a.Capacity = capacity
	return a
}

func (a *AmenityBuilder) WithAvailability(av amenity.Availability) *AmenityBuilder {
	a.Availability = av
	return a
}

func (a *AmenityBuilder) AsUnavailable() *AmenityBuilder {
	a.IsAvailable = false
	return a
}
