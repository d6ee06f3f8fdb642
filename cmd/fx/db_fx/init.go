package db_fx

import (
	"go.uber.org/fx"

	"kissan/internal/infra"
)

var Module = fx.Provide(infra.InitPostgresql)
