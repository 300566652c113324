package components

import (
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func(cfg config.Config) config.ReservationConfig {
			return cfg.Reservation
		},
		usecase.NewReservationManager,
	),
)
