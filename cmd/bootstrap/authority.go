package bootstrap

import (
	"storefront-console/internal/domain/authority"

	"go.uber.org/fx"
)

// AuthorityModule provides the role permission table. The table is static
// policy data, so one shared instance serves every request.
var AuthorityModule = fx.Module("authority",
	fx.Provide(
		authority.NewDefault,
	),
)
