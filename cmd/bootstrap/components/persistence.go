package components

import (
	"tee-sheet/internal/infra/readstore"
	"tee-sheet/internal/infra/repository"
	"tee-sheet/internal/infra/uow"
	"tee-sheet/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		repository.NewSlotRepository,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewSlotSeeder,
			fx.As(new(queries.SlotSeeder)),
		),
	),
)
