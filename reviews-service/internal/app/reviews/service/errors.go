package service

import "errors"

var (
	// ErrStorageUnavailable - хранилище не удалось прочитать или записать (файл отсутствует или поврежден, MongoDB недоступна)
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrValidation - тело запроса не является корректным JSON
	ErrValidation = errors.New("validation error")
)

// StorageCause возвращает исходную ошибку хранилища без обертки ErrStorageUnavailable
func StorageCause(err error) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !errors.Is(e, ErrStorageUnavailable) {
				return e
			}
		}
	}
	return err
}
