package bootstrap

import (
	"storefront-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	AuthorityModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
