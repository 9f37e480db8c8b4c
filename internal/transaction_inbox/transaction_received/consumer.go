package transaction_received

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"github.com/vysogota0399/bank_ledger/internal/transaction_inbox"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Consumer is the second ingestion path next to the HTTP endpoint:
// upstream emitters publish transaction events to a topic and the
// consumer appends them to the same ledger through the same validation.
type Consumer struct {
	lg           *logging.ZapLogger
	reader       *kafka.Reader
	transactions ConsumerTransactionsRepository
	cancaller    context.CancelFunc
	globalCtx    context.Context
}

type ConsumerTransactionsRepository interface {
	Create(ctx context.Context, in *models.Transaction) error
}

func NewConsumer(
	lc fx.Lifecycle,
	lg *logging.ZapLogger,
	cfg *transaction_inbox.Config,
	globalCFG *config.Config,
	errLogger *logging.KafkaErrorLogger,
	logger *logging.KafkaLogger,
	transactions ConsumerTransactionsRepository,
) *Consumer {
	lg.DebugCtx(context.Background(), "start transaction received events consumer", zap.String("consumer_group", cfg.KafkaTransactionReceivedGroupID), zap.Any("config", cfg))

	r := kafka.NewReader(kafka.ReaderConfig{
		GroupID:                cfg.KafkaTransactionReceivedGroupID,
		PartitionWatchInterval: time.Duration(cfg.KafkaTransactionReceivedPartitionWatchInterval) * time.Millisecond,
		Brokers:                globalCFG.KafkaBrokers,
		Topic:                  cfg.KafkaTransactionReceivedTopic,
		MinBytes:               10e2, // 1KB
		MaxBytes:               10e6, // 10MB
		ErrorLogger:            errLogger,
		MaxWait:                time.Duration(cfg.KafkaTransactionReceivedMaxWaitInterval) * time.Millisecond,
		Logger:                 logger,
	})

	cns := &Consumer{
		lg:           lg,
		reader:       r,
		transactions: transactions,
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				consumeCtx, cancel := context.WithCancel(context.Background())
				cns.globalCtx = consumeCtx
				cns.cancaller = cancel

				go cns.consume()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				cns.cancaller()
				return cns.reader.Close()
			},
		},
	)

	return cns
}

func (cns *Consumer) consume() {
	ctx := cns.globalCtx

	for {
		select {
		case <-ctx.Done():
			cns.lg.DebugCtx(ctx, "consumer graceful shutdown")
			return
		default:
			if err := cns.processMessage(cns.globalCtx); err != nil {
				cns.lg.ErrorCtx(ctx, "transaction_received/consumer: process message error", zap.Error(err))
			}
		}
	}
}

func (cns *Consumer) processMessage(ctx context.Context) error {
	m, err := cns.reader.FetchMessage(cns.globalCtx)
	if err != nil {
		return fmt.Errorf("transaction_received/consumer: fetch message error %w", err)
	}

	event := models.TransactionEvent{}
	if err := json.Unmarshal(m.Value, &event); err != nil {
		// an unparsable event can never succeed, commit and move on
		cns.lg.ErrorCtx(ctx, "transaction_received/consumer: skip malformed event", zap.Error(err))
		return cns.reader.CommitMessages(ctx, m)
	}

	cns.lg.InfoCtx(ctx, "consumed message", zap.String("event_uuid", event.UUID))

	if event.Transaction == nil {
		cns.lg.ErrorCtx(ctx, "transaction_received/consumer: skip event without transaction", zap.String("event_uuid", event.UUID))
		return cns.reader.CommitMessages(ctx, m)
	}

	if err := event.Transaction.Validate(); err != nil {
		cns.lg.ErrorCtx(ctx, "transaction_received/consumer: skip invalid transaction", zap.String("event_uuid", event.UUID), zap.Error(err))
		return cns.reader.CommitMessages(ctx, m)
	}

	if err := cns.transactions.Create(ctx, event.Transaction); err != nil {
		return fmt.Errorf("transaction_received/consumer: save transaction error %w", err)
	}

	if err := cns.reader.CommitMessages(ctx, m); err != nil {
		return fmt.Errorf("transaction_received/consumer: failed to commit messages %w", err)
	}

	return nil
}
