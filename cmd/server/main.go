package main

import (
	main_config "github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/repositories"
	"github.com/vysogota0399/bank_ledger/internal/servers/api"
	api_handlers "github.com/vysogota0399/bank_ledger/internal/servers/api/handlers"
	"github.com/vysogota0399/bank_ledger/internal/storage"
	"go.uber.org/fx"
)

func main() {
	fx.New(CreateApp()).Run()
}

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(
			logging.NewZapLogger,
			storage.NewLedger,

			api.NewRouter,
			api.NewServer,

			api_handlers.NewRootHandler,
			api_handlers.NewHealthHandler,
			api_handlers.NewCreateTransactionHandler,
			fx.Annotate(repositories.NewTransactionsRepository, fx.As(new(api_handlers.TransactionsRepository))),

			api_handlers.NewSummaryHandler,
			fx.Annotate(repositories.NewAnalyticsRepository, fx.As(new(api_handlers.SummaryRepository))),
			api_handlers.NewByAccountHandler,
			fx.Annotate(repositories.NewAnalyticsRepository, fx.As(new(api_handlers.ByAccountRepository))),
			api_handlers.NewTimelineHandler,
			fx.Annotate(repositories.NewAnalyticsRepository, fx.As(new(api_handlers.TimelineRepository))),
			api_handlers.NewRecentHandler,
			fx.Annotate(repositories.NewAnalyticsRepository, fx.As(new(api_handlers.RecentRepository))),
			api_handlers.NewTypeDistributionHandler,
			fx.Annotate(repositories.NewAnalyticsRepository, fx.As(new(api_handlers.TypeDistributionRepository))),
		),
		fx.Supply(
			main_config.MustNewConfig(),
		),
		fx.Invoke(
			startServer,
		),
	)
}

func startServer(*api.Server) {}
