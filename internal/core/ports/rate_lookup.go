package ports

import (
	"context"
	"errors"

	"shiporder/internal/core/domain/model/cost"
	"shiporder/internal/core/domain/model/kernel"
)

// ErrRateLookupFailed wraps every failure of the rate lookup collaborator. The
// caller treats the breakdown as unavailable and blocks submission.
var ErrRateLookupFailed = errors.New("rate lookup failed")

// RateLookup quotes the base shipping fee for a weight, service tier and route.
type RateLookup interface {
	GetBaseShippingFee(ctx context.Context, in cost.Inputs) (kernel.Money, error)
}
