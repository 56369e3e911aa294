package app

import (
	"github.com/tidepool-org/vitals/alerts"
	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/logger"
	"github.com/tidepool-org/vitals/medical"
	"github.com/tidepool-org/vitals/patients"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(
		config.NewConfig,
		logger.NewProductionLogger,
		logger.Suggar,
		patients.NewRepository,
		alerts.NewNotifier,
		medical.NewService,
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
)

// New assembles the monitoring service. Extra options can replace or
// consume any of the provided components.
func New(opts ...fx.Option) *fx.App {
	return fx.New(append([]fx.Option{Module}, opts...)...)
}
