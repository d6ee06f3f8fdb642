package market_fx

import (
	"go.uber.org/fx"

	"kissan/internal/services"
)

var Module = fx.Provide(services.NewMarketService)
