//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"context"

	"github.com/IBM/sarama"
)

type sender interface {
	Send(ctx context.Context, msg *sarama.ProducerMessage) error
}
