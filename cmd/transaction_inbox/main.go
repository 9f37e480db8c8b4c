package main

import (
	main_config "github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/repositories"
	"github.com/vysogota0399/bank_ledger/internal/storage"
	"github.com/vysogota0399/bank_ledger/internal/transaction_inbox"
	"github.com/vysogota0399/bank_ledger/internal/transaction_inbox/transaction_received"
	"go.uber.org/fx"
)

func main() {
	fx.New(CreateApp()).Run()
}

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(
			logging.NewZapLogger,
			logging.NewKafkaErrorLogger,
			logging.NewKafkaLogger,
			storage.NewLedger,

			transaction_received.NewConsumer,
			fx.Annotate(repositories.NewTransactionsRepository, fx.As(new(transaction_received.ConsumerTransactionsRepository))),
		),
		fx.Supply(main_config.MustNewConfig(), transaction_inbox.MustNewConfig()),
		fx.Invoke(startConsumer),
	)
}

func startConsumer(*transaction_received.Consumer) {}
