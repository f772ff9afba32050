package holidayservice

// YearResponse ответ сервиса праздников за один год:
// дата "YYYY-MM-DD" -> название праздника
type YearResponse map[string]string

// ErrorResponse модель ошибки от сервиса праздников
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
