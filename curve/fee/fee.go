// Package fee converts between the nominal and net amounts of the quote leg of
// a trade. Rates are expressed against a fixed scale; with the default scale a
// rate of 100 is 1%.
package fee

import (
	"fmt"

	"github.com/krazyTry/pumpcurve-go/curve/math"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// Schedule is a fee rate together with the scale that represents 100%.
type Schedule struct {
	Rate  uint64
	Scale uint64
}

// DefaultSchedule returns a schedule on the program's full scale.
func DefaultSchedule(rate uint64) Schedule {
	return Schedule{Rate: rate, Scale: shared.FullScale}
}

func (s Schedule) Validate() error {
	if s.Scale == 0 {
		return fmt.Errorf("fee scale is zero: %w", shared.ErrInvalidFeeRate)
	}
	if s.Rate > s.Scale {
		return fmt.Errorf("fee rate %d above scale %d: %w", s.Rate, s.Scale, shared.ErrInvalidFeeRate)
	}
	return nil
}

// Amount returns floor(amount * rate / scale).
func (s Schedule) Amount(amount uint64) (uint64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return math.MulDiv(amount, s.Rate, s.Scale, shared.RoundingDown)
}

// NetAmount returns amount less its fee, along with the fee.
func (s Schedule) NetAmount(amount uint64) (uint64, uint64, error) {
	feeAmount, err := s.Amount(amount)
	if err != nil {
		return 0, 0, err
	}
	net, err := math.Sub(amount, feeAmount)
	if err != nil {
		return 0, 0, err
	}
	return net, feeAmount, nil
}

// GrossAmount returns the total a payer must provide so that netAmount remains
// after the fee: floor(netAmount * scale / (scale - rate)).
//
// Amount and GrossAmount floor independently, so composing them may be off by
// one unit from the identity.
func (s Schedule) GrossAmount(netAmount uint64) (uint64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.Rate == s.Scale {
		return 0, fmt.Errorf("fee rate %d equals scale: %w", s.Rate, shared.ErrInvalidFeeRate)
	}
	return math.MulDiv(netAmount, s.Scale, s.Scale-s.Rate, shared.RoundingDown)
}

// Amount is Schedule.Amount on the default scale.
func Amount(rate, amount uint64) (uint64, error) {
	return DefaultSchedule(rate).Amount(amount)
}

// GrossAmount is Schedule.GrossAmount on the default scale.
func GrossAmount(rate, netAmount uint64) (uint64, error) {
	return DefaultSchedule(rate).GrossAmount(netAmount)
}
