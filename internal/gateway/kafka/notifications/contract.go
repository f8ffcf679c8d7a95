//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_test
package notifications

import (
	"context"

	"github.com/IBM/sarama"
)

type sender interface {
	Send(ctx context.Context, msg *sarama.ProducerMessage) error
}
