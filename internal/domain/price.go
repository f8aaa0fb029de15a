package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxUnitPrice is the most a single item may cost.
var MaxUnitPrice = decimal.NewFromInt(10000)

const (
	maxUnitPriceDigits = 5  // integer digits of MaxUnitPrice
	maxUnitPriceScale  = 10 // decimal places accepted before trailing zeros are checked
)

var (
	ErrNegativePrice   = errors.New("price must be non-negative")
	ErrPriceTooLarge   = errors.New("price must be at most 10000.00")
	ErrPriceNotInCents = errors.New("price must be a whole number of cents")
)

// CheckUnitPrice returns nil when p is a whole number of cents between zero
// and MaxUnitPrice. Exponent and digit count are checked before any
// comparison so that values like 1e50000000 are never rescaled.
func CheckUnitPrice(p decimal.Decimal) error {
	switch {
	case p.IsNegative():
		return ErrNegativePrice
	case p.Exponent() < -maxUnitPriceScale:
		return ErrPriceNotInCents
	case p.NumDigits()+int(p.Exponent()) > maxUnitPriceDigits || p.GreaterThan(MaxUnitPrice):
		return ErrPriceTooLarge
	case !p.Equal(p.Round(2)):
		return ErrPriceNotInCents
	}
	return nil
}
