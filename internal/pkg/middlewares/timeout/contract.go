//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timeout_test
package timeout

import "marketplace/pkg/logger"

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}
