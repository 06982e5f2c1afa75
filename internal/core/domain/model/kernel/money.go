package kernel

import (
	"fmt"

	"shiporder/internal/pkg/errs"
)

// MaxMoney bounds any single amount so surcharge and tax arithmetic on int64
// cannot overflow (a trillion major units at two minor digits).
const MaxMoney Money = 100_000_000_000_000

// Money is a non-negative currency amount in the smallest currency unit.
// Amounts never go through floating point.
type Money int64

// NewMoney validates amount against [0, MaxMoney].
func NewMoney(amount int64) (Money, error) {
	m := Money(amount)
	if err := m.Validate("amount"); err != nil {
		return 0, err
	}
	return m, nil
}

// Validate reports a negative or oversized amount under paramName.
func (m Money) Validate(paramName string) error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is negative", int64(m)))
	}
	if m > MaxMoney {
		return errs.NewValueIsOutOfRangeError(paramName, int64(m), 0, int64(MaxMoney))
	}
	return nil
}

func (m Money) Int64() int64 {
	return int64(m)
}

// Sub subtracts other, clamping at zero.
func (m Money) Sub(other Money) Money {
	if other >= m {
		return 0
	}
	return m - other
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

// MulRatio returns m*num/den rounded by mode. den must be positive.
func (m Money) MulRatio(num, den int64, mode Rounding) Money {
	product := int64(m) * num
	q, r := product/den, product%den
	switch mode {
	case RoundHalfUp:
		if 2*r >= den {
			q++
		}
	case RoundUp:
		if r > 0 {
			q++
		}
	case RoundDown:
	}
	return Money(q)
}

// Rounding selects how MulRatio resolves a fractional minor unit.
type Rounding int

const (
	// RoundDown truncates toward zero.
	RoundDown Rounding = iota
	// RoundHalfUp rounds .5 and above away from zero.
	RoundHalfUp
	// RoundUp rounds any remainder away from zero (ceiling for non-negative values).
	RoundUp
)
