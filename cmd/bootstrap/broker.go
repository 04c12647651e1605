package bootstrap

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/broker"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if !cfg.Broker.Enabled() {
		slog.Info("AMQP_URL not set, reservation events are not published")
		return broker.NopPublisher{}, nil
	}

	pub, err := broker.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
