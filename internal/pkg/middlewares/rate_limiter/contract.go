package rate_limiter

import "marketplace/pkg/logger"

// Limiter решает, пропустить ли запрос с данным ключом (актор или адрес клиента).
type Limiter interface {
	Allow(key string) bool
}

type handlerLogger interface {
	With(fields ...logger.Field) logger.Logger
}
