package components

import (
	"decor-market/internal/infra/db"
	"decor-market/internal/infra/gateway"
	"decor-market/internal/infra/readstore"
	"decor-market/internal/infra/repository"
	"decor-market/internal/infra/uow"
	"decor-market/internal/pkg/config"
	"decor-market/internal/usecase/commands"
	"decor-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewCheckoutClient,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repository.NewDecoratorRepository,
			fx.As(new(commands.DecoratorRepository)),
			fx.As(new(commands.DecoratorDirectory)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(commands.ServiceReader)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponReader)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewDecoratorReadStore,
			fx.As(new(queries.DecoratorReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCheckoutClient(cfg config.Config, redisClient *redislib.Client) commands.PaymentGateway {
	return gateway.NewCheckoutClient(cfg.Checkout, redisClient)
}
