package holidayservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// Client клиент календаря государственных праздников
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса праздников
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetYear получает календарь праздников за один год
func (c *Client) GetYear(ctx context.Context, year int) (YearResponse, error) {
	url := fmt.Sprintf("%s/api/v1/holidays/%d", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// Год без данных - пустой календарь, не ошибка
		return YearResponse{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var calendar YearResponse
	if err := json.NewDecoder(resp.Body).Decode(&calendar); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return calendar, nil
}

// GetCalendar получает объединённый календарь праздников, покрывающий
// диапазон дат [from, to]. Запрашивает каждый затронутый год.
func (c *Client) GetCalendar(ctx context.Context, from, to time.Time) (domain.HolidayCalendar, error) {
	merged := domain.HolidayCalendar{}

	for year := from.Year(); year <= to.Year(); year++ {
		yearCalendar, err := c.GetYear(ctx, year)
		if err != nil {
			// Недоступность календаря не валит операцию: вызывающая сторона
			// продолжает с пустым календарем, зоны остаются запрещёнными
			c.log.Error("HolidayService unavailable for year=%d, applying graceful degradation: %v", year, err)
			return nil, fmt.Errorf("%w: year=%d, error=%v", ErrServiceDegraded, year, err)
		}
		for date, name := range yearCalendar {
			merged[date] = name
		}
	}

	c.log.Info("Fetched holiday calendar %s..%s, %d entries",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat), len(merged))
	return merged, nil
}
