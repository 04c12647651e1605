package commands

import (
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
)

// lookupErr maps a missing row to notFound and anything else to a store failure.
func lookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// reservationWriteErr maps store backstop violations to a booking conflict.
func reservationWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrReservationConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrRoomNotFound)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func invalid(err error) error {
	return errs.Mark(err, errs.ErrInvalidArgument)
}
