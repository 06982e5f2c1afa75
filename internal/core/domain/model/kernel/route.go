package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shiporder/internal/pkg/errs"
	"shiporder/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a zero-value Route is used.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute")

// RegionCode identifies a province/district in the carrier's region catalog.
type RegionCode string

// Route is the origin/destination region pair that, together with weight and
// service tier, selects a base shipping fee.
type Route struct { //nolint:recvcheck //using for validation
	origin      RegionCode
	destination RegionCode
	guard       guard.ConstructorGuard
}

// NewRoute trims both codes and requires them to be non-empty.
// Origin and destination may be equal (intra-region delivery).
func NewRoute(origin, destination string) (Route, error) {
	r := Route{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setOrigin(origin),
		r.setDestination(destination),
	); err != nil {
		return Route{}, err
	}

	return r, nil
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r Route) Origin() RegionCode {
	return r.origin
}

func (r Route) Destination() RegionCode {
	return r.destination
}

func (r Route) IsEqual(other Route) bool {
	return r.origin == other.origin && r.destination == other.destination
}

func (r Route) String() string {
	return fmt.Sprintf("%s->%s", r.origin, r.destination)
}

func (r *Route) setOrigin(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("origin region code")
	}
	r.origin = RegionCode(code)
	return nil
}

func (r *Route) setDestination(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("destination region code")
	}
	r.destination = RegionCode(code)
	return nil
}
