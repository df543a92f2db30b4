package billing

import (
	"errors"
)

var (
	ErrNoSubscriptions = errors.New("no subscriptions due")
)
