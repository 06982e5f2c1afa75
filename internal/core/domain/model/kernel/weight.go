package kernel

import (
	"fmt"
	"math"

	"shiporder/internal/pkg/errs"
)

// MaxWeight is the heaviest parcel accepted for a single shipment order.
const MaxWeight Weight = 1_000_000_000

// Weight is a parcel weight in grams. The zero value means "not provided yet".
type Weight int64

// NewWeight validates grams against (0, MaxWeight].
func NewWeight(grams int64) (Weight, error) {
	w := Weight(grams)
	if w <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", grams))
	}
	if w > MaxWeight {
		return 0, errs.NewValueIsOutOfRangeError("weight", grams, 1, int64(MaxWeight))
	}
	return w, nil
}

// NewWeightFromKilograms converts kg to grams, rounding to the nearest gram.
func NewWeightFromKilograms(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a number", kg))
	}
	if kg > float64(MaxWeight)/1000 {
		return 0, errs.NewValueIsOutOfRangeError("weight", kg, 0.001, float64(MaxWeight)/1000)
	}
	return NewWeight(int64(math.Round(kg * 1000)))
}

func (w Weight) Grams() int64 {
	return int64(w)
}

func (w Weight) Kilograms() float64 {
	return float64(w) / 1000
}

// IsZero reports a weight that has not been provided.
func (w Weight) IsZero() bool {
	return w == 0
}

func (w Weight) String() string {
	return fmt.Sprintf("%.3fkg", w.Kilograms())
}
