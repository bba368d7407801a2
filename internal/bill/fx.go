package bill

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/qrbill/internal/bill/render"
	"github.com/smallbiznis/qrbill/internal/bill/service"
	"github.com/smallbiznis/qrbill/internal/config"
	"github.com/smallbiznis/qrbill/internal/observability/metrics"
)

var Module = fx.Module("bill.service",
	fx.Provide(func(cfg config.Config) *metrics.GeneratorMetrics {
		return metrics.GeneratorWithConfig(metrics.Config{
			ServiceName: cfg.ServiceName,
			Environment: cfg.Environment,
		})
	}),
	fx.Provide(render.NewRenderer),
	fx.Provide(service.NewService),
)
