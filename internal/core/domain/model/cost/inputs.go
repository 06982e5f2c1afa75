package cost

import (
	"errors"
	"fmt"
	"strings"

	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/pkg/errs"
)

// Inputs is the order state a cost is derived from.
type Inputs struct {
	Weight                  kernel.Weight
	ServiceTierID           string
	OriginRegionCode        kernel.RegionCode
	DestinationRegionCode   kernel.RegionCode
	CollectOnDeliveryAmount kernel.Money
	DeclaredGoodsValue      kernel.Money
}

// Validate rejects values that can never become valid by filling in more of the
// form: negative weight and negative or oversized amounts.
func (in Inputs) Validate() error {
	var weightErr error
	if in.Weight < 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is negative", int64(in.Weight)))
	}
	return errors.Join(
		weightErr,
		in.CollectOnDeliveryAmount.Validate("collect on delivery amount"),
		in.DeclaredGoodsValue.Validate("declared goods value"),
	)
}

// IsComplete reports whether a cost can be requested: a positive weight and a
// service tier. Route codes are only needed by the rate lookup.
func (in Inputs) IsComplete() bool {
	return in.Weight > 0 && strings.TrimSpace(in.ServiceTierID) != ""
}

// HasRoute reports whether both region codes are filled in.
func (in Inputs) HasRoute() bool {
	return strings.TrimSpace(string(in.OriginRegionCode)) != "" &&
		strings.TrimSpace(string(in.DestinationRegionCode)) != ""
}
