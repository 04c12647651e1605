package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber    = errors.New("room number must be positive")
	ErrEmptyType        = errors.New("room type is required")
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrNegativePrice    = errors.New("price per night cannot be negative")
)

type Room struct {
	id            uuid.UUID
	number        int
	roomType      string
	capacity      int
	pricePerNight int
	photoURL      string
	content       Content
	createdAt     time.Time
	updatedAt     time.Time
}

// Attributes holds every mutable field of a room.
type Attributes struct {
	Number        int
	Type          string
	Capacity      int
	PricePerNight int
	PhotoURL      string
	Content       Content
}

func (a Attributes) validate() error {
	if a.Number <= 0 {
		return ErrInvalidNumber
	}
	if strings.TrimSpace(a.Type) == "" {
		return ErrEmptyType
	}
	if a.Capacity < 0 {
		return ErrNegativeCapacity
	}
	if a.PricePerNight < 0 {
		return ErrNegativePrice
	}
	if a.Number > MaxValue || a.Capacity > MaxValue || a.PricePerNight > MaxValue {
		return ErrValueTooLarge
	}
	return a.Content.Validate()
}

func NewRoom(attrs Attributes) (*Room, error) {
	r := &Room{id: uuid.New()}
	if err := r.Apply(attrs); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:            id,
		number:        attrs.Number,
		roomType:      attrs.Type,
		capacity:      attrs.Capacity,
		pricePerNight: attrs.PricePerNight,
		photoURL:      attrs.PhotoURL,
		content:       attrs.Content,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply validates attrs and overwrites the room's attributes; identity is unchanged.
func (r *Room) Apply(attrs Attributes) error {
	if err := attrs.validate(); err != nil {
		return err
	}
	r.number = attrs.Number
	r.roomType = strings.TrimSpace(attrs.Type)
	r.capacity = attrs.Capacity
	r.pricePerNight = attrs.PricePerNight
	r.photoURL = strings.TrimSpace(attrs.PhotoURL)
	r.content = attrs.Content
	return nil
}

func (r *Room) Attributes() Attributes {
	return Attributes{
		Number:        r.number,
		Type:          r.roomType,
		Capacity:      r.capacity,
		PricePerNight: r.pricePerNight,
		PhotoURL:      r.photoURL,
		Content:       r.content,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() int          { return r.number }
func (r *Room) Type() string         { return r.roomType }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) PricePerNight() int   { return r.pricePerNight }
func (r *Room) PhotoURL() string     { return r.photoURL }
func (r *Room) Content() Content     { return r.content }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
