package billing

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/transport/billing/client"
)

type Client interface {
	Charge(ctx context.Context, charge client.ChargeRequest) (*client.Response, error)
}

type Servicer interface {
	DueCharges(ctx context.Context, limit uint) ([]service.ChargeCandidate, error)
	ApplyChargeResults(ctx context.Context, updates []service.ChargeResultArgs) error
}
