package components

import (
	"car-rental-ops/internal/infra/query"
	"car-rental-ops/internal/infra/readstore"
	"car-rental-ops/internal/infra/uow"
	"car-rental-ops/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Agreement
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.AgreementReadQueries)),
		),
		fx.Annotate(
			readstore.NewAgreementReadStore,
			fx.As(new(queries.AgreementReadStore)),
		),
		// Fleet
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.FleetReadQueries)),
		),
		fx.Annotate(
			readstore.NewFleetReadStore,
			fx.As(new(queries.FleetReadStore)),
		),
	),
)

// Write-side repositories are built per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
