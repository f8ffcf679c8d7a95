// Package errs задает виды ошибок, общие для всех сервисов.
// Сервисные sentinel-ошибки оборачивают один из видов, поэтому
// транспортный слой решает, как ответить, через errors.Is.
package errs

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

// Kind возвращает вид ошибки или nil, если ошибка не из таксономии.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrForbidden} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// IsExpected сообщает, что ошибка - штатный исход (конфликт состояния или отсутствие сущности),
// а не сбой системы.
func IsExpected(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound)
}
