package client

import (
	"fmt"
	"time"
)

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("Too many requests. Need retry after %.f seconds", e.RetryAfter.Seconds())
}

// DeclinedError отказ платежного шлюза по конкретному списанию, не транспортная
// ошибка. Reason приходит из тела ответа.
type DeclinedError struct {
	Reason string
}

func NewDeclinedError(reason string) *DeclinedError {
	return &DeclinedError{Reason: reason}
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("Charge declined: %s", e.Reason)
}
