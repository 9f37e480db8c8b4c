package transaction_inbox

import (
	"github.com/caarlos0/env"
)

type Config struct {
	KafkaTransactionReceivedTopic                  string `json:"kafka_transaction_received_topic" env:"KAFKA_TRANSACTION_RECEIVED_TOPIC" envDefault:"transaction_received"`
	KafkaTransactionReceivedGroupID                string `json:"kafka_transaction_received_group_id" env:"KAFKA_TRANSACTION_RECEIVED_GROUP_ID" envDefault:"ledger_transaction_received_consumer_group"`
	KafkaTransactionReceivedPartitionWatchInterval int    `json:"kafka_transaction_received_partition_watch_interval" env:"KAFKA_TRANSACTION_RECEIVED_PARTITION_WATCH_INTERVAL" envDefault:"50000"`
	KafkaTransactionReceivedMaxWaitInterval        int    `json:"kafka_transaction_received_max_wait_interval" env:"KAFKA_TRANSACTION_RECEIVED_MAX_WAIT_INTERVAL" envDefault:"250"`
}

func MustNewConfig() *Config {
	c := &Config{}
	env.Parse(c)

	return c
}
