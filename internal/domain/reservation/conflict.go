package reservation

import "github.com/google/uuid"

// FindConflict returns the first reservation in existing whose dates overlap
// candidate, ignoring the reservation identified by self.
func FindConflict(candidate DateRange, existing []*Reservation, self uuid.UUID) *Reservation {
	for _, other := range existing {
		if other == nil || other.ID() == self {
			continue
		}
		if candidate.Overlaps(other.Dates()) {
			return other
		}
	}
	return nil
}
