package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"vindecoder/internal/config"
	"vindecoder/internal/domain/vehicle"
)

const userAgent = "VINDecoder-Client/1.0"

// DecodeClient обращается к сервису декодирования VIN (vPIC).
// Один запрос на VIN, без повторов.
type DecodeClient struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

// NewDecodeClient создает клиент; transport == nil означает транспорт по умолчанию
func NewDecodeClient(cfg *config.Config, log *slog.Logger, transport http.RoundTripper) *DecodeClient {
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		}
	}

	return &DecodeClient{
		client: &http.Client{
			// 0 - без таймаута, запрос завершается по правилам транспорта
			Timeout:   time.Duration(cfg.DecodeTimeout) * time.Second,
			Transport: transport,
		},
		log:     log.With(slog.String("component", "decode_client")),
		baseURL: cfg.DecodeBaseURL,
	}
}

// Decode запрашивает атрибуты автомобиля по VIN
func (c *DecodeClient) Decode(ctx context.Context, vin string) (vehicle.Record, error) {
	endpoint := fmt.Sprintf("%s/%s?format=json", c.baseURL, url.PathEscape(vin))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка создания запроса: %v", vehicle.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.log.Debug("Отправка запроса", "url", endpoint)

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка выполнения запроса: %v", vehicle.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка чтения ответа: %v", vehicle.ErrTransport, err)
	}

	c.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: сервер вернул статус %d", vehicle.ErrTransport, resp.StatusCode)
	}

	var decoded vehicle.DecodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: ошибка парсинга ответа: %v", vehicle.ErrTransport, err)
	}

	if decoded.Results == nil {
		return nil, fmt.Errorf("%w: %s", vehicle.ErrDecodeFailed, decoded.Message)
	}

	return vehicle.FromResults(decoded.Results), nil
}
