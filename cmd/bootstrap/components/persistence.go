package components

import (
	"github.com/djsutherland/chips-with-friends/internal/infra/readstore"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/internal/infra/uow"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"
	"github.com/djsutherland/chips-with-friends/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	// The generated query set backs every per-table view interface.
	fx.Annotate(NewSQLQueries, fx.As(new(readstore.CardViewQueries))),
	fx.Annotate(NewSQLQueries, fx.As(new(readstore.UseViewQueries))),
	fx.Annotate(NewSQLQueries, fx.As(new(readstore.UserReadQueries))),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Card
		fx.Annotate(
			readstore.NewCardReadStore,
			fx.As(new(queries.CardReadStore)),
		),
		// Use
		fx.Annotate(
			readstore.NewUseReadStore,
			fx.As(new(queries.UseReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write-side repositories are created lazily per transaction by the
// UnitOfWork, so only the UoW itself is provided here.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
