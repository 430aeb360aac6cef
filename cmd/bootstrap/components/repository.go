package components

import (
	"storefront-console/internal/infra/readstore"
	"storefront-console/internal/infra/repo_impl"
	"storefront-console/internal/usecase/commands"
	"storefront-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
	),
)
