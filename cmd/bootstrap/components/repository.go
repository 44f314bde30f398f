package components

import (
	"time"

	"huntbook/internal/infra/db"
	"huntbook/internal/infra/readstore"
	"huntbook/internal/infra/repository"
	"huntbook/internal/pkg/config"
	"huntbook/internal/usecase/commands"
	"huntbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQuerier,
		NewPool,
		NewBookingRepository,
		NewPolicyRepository,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewQuerier(pool *pgxpool.Pool) db.Querier {
	return pool
}

func NewPool(pool *pgxpool.Pool) db.Pool {
	return pool
}

func NewBookingRepository(pool db.Querier) commands.BookingRepository {
	return repository.NewBookingRepository(pool)
}

func NewPolicyRepository(pool db.Querier, cfg config.Config) commands.PolicyRepository {
	loc, err := time.LoadLocation(cfg.Booking.DefaultTimeZone)
	if err != nil {
		loc = time.UTC
	}
	return repository.NewPolicyRepository(pool, loc)
}
