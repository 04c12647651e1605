package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/shared"
)

// eventNotifier publishes after commit; failures never reach the caller.
type eventNotifier struct {
	publisher shared.EventPublisher
	clock     clock.Clock
}

func (n eventNotifier) notify(ctx context.Context, t shared.EventType, res *reservation.Reservation) {
	if n.publisher == nil || res == nil {
		return
	}
	n.publish(ctx, shared.NewReservationEvent(t, res, n.clock.Now()))
}

func (n eventNotifier) notifyArchived(ctx context.Context, rec *reservation.HistoryRecord) {
	if n.publisher == nil || rec == nil {
		return
	}
	n.publish(ctx, shared.NewArchivedEvent(rec))
}

func (n eventNotifier) publish(ctx context.Context, evt shared.ReservationEvent) {
	if err := n.publisher.Publish(ctx, evt); err != nil {
		slog.Warn("failed to publish reservation event",
			"type", string(evt.Type),
			"reservation_id", evt.ReservationID.String(),
			"error", err.Error())
	}
}
