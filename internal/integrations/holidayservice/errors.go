package holidayservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidayservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("holidayservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Календарь праздников недоступен - вызывающая сторона продолжает с пустым
	// календарем, т.е. запрещённые зоны остаются в силе.
	ErrServiceDegraded = errors.New("holidayservice unavailable: graceful degradation applied")
)
