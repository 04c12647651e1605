package room

import (
	"errors"
	"math"
)

var (
	ErrNegativeContent = errors.New("room content counts cannot be negative")
	ErrValueTooLarge   = errors.New("room value is too large")
)

// MaxValue bounds every numeric room field.
const MaxValue = math.MaxInt32

// Content counts the furniture and equipment in a room.
type Content struct {
	Chairs    int
	Beds      int
	Desks     int
	Balconies int
	TVs       int
	Fridges   int
	Kettles   int
}

func (c Content) Validate() error {
	for _, n := range []int{c.Chairs, c.Beds, c.Desks, c.Balconies, c.TVs, c.Fridges, c.Kettles} {
		if n < 0 {
			return ErrNegativeContent
		}
		if n > MaxValue {
			return ErrValueTooLarge
		}
	}
	return nil
}
