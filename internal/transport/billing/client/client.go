package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"io"
	"net/http"
)

const RouteCharges = "/api/charges"

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

type StatusType string

const (
	StatusSucceeded StatusType = "SUCCEEDED"
	StatusDeclined  StatusType = "DECLINED"
)

type ChargeRequest struct {
	MerchantRef    string          `json:"merchant_ref"`
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

type Response struct {
	Status StatusType `json:"status"`
	Ref    string     `json:"ref"`
	Reason string     `json:"reason,omitempty"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к платежному шлюзу.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Charge проводит списание через платежный шлюз. Отказ шлюза возвращается как
// DeclinedError, статус отличный от http.StatusOK - как StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) Charge(
	ctx context.Context,
	charge ChargeRequest,
) (response *Response, err error) {
	// Формируем URL запроса.
	url := c.baseURL + RouteCharges

	payload, marshalErr := json.Marshal(charge)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		minValue := decimal.NewFromInt(minRetryAfter)
		maxValue := decimal.NewFromInt(maxRetryAfter)

		retryAfterStr := resp.Header.Get("Retry-After")

		retryAfter, parseErr := decimal.NewFromString(retryAfterStr)
		if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
			// в случае ошибки или неверных данных ставим 60 секунд
			retryAfter = decimal.NewFromInt(60) //nolint:mnd
		}

		ra := time.Duration(retryAfter.IntPart()) * time.Second
		return nil, NewTooManyRequestError(ra)
	}

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	// Парсим успешный ответ.
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	if response.Status == StatusDeclined {
		return response, NewDeclinedError(response.Reason)
	}

	return response, nil
}
