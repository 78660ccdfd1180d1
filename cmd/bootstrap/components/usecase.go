package components

import (
	"decor-market/internal/domain/booking"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/config"
	"decor-market/internal/usecase"
	"decor-market/internal/usecase/commands"
	"decor-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewAssignmentCommands,
		commands.NewDecoratorCommands,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewDecoratorQueries,
		queries.NewCatalogQueries,
		queries.NewPricingQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPaymentCommands(
	cfg config.Config,
	bookingRepo commands.BookingRepository,
	paymentRepo commands.PaymentRepository,
	gateway commands.PaymentGateway,
	unitOfWork commands.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(
		bookingRepo,
		paymentRepo,
		gateway,
		unitOfWork,
		bookingQueries,
		clk,
		cfg.Checkout.Currency,
	)
}
