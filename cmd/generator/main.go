package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	main_config "github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/generator"
	"github.com/vysogota0399/bank_ledger/internal/logging"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8000/transactions", "receiver ingestion endpoint")
	count := flag.Int("count", 1, "number of transactions to generate")
	rate := flag.Float64("rate", 1.0, "transactions per second, <=0 disables pacing")
	accounts := flag.String("accounts", "A123,B456,C789", "comma-separated account identifiers")
	apiKey := flag.String("api-key", "##SECRET_KEY", "value sent in the x-api-key header")
	flag.Parse()

	lg, err := logging.NewZapLogger(main_config.MustNewConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.NewGenerator(
		&generator.Config{
			Endpoint: *endpoint,
			Count:    *count,
			Rate:     *rate,
			Accounts: strings.Split(*accounts, ","),
			APIKey:   *apiKey,
		},
		lg,
	)

	if err := gen.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "generator error: %v\n", err)
		os.Exit(1)
	}
}
