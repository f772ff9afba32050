package profiles

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль инструктора не найден
	ErrProfileNotFound = errors.New("instructor profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
