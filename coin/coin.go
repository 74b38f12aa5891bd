// Package coin converts between lunas, the smallest indivisible unit of NIM,
// and decimal coin amounts.
package coin

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// Decimals is the number of fractional digits of one coin.
	Decimals = 5
	// LunasPerCoin is 10^Decimals.
	LunasPerCoin = 100000
	// Symbol is the display ticker of the coin.
	Symbol = "NIM"
)

var (
	ErrAmountOverflow = errors.New("amount does not fit in 64 bits of lunas")
	ErrInvalidAmount  = errors.New("invalid coin amount")

	lunasPerCoin = decimal.New(LunasPerCoin, 0)
	maxLunas     = decimal.NewFromInt(math.MaxInt64)
	minLunas     = decimal.NewFromInt(math.MinInt64)
)

// CoinsToLunas converts a coin amount to lunas. Digits beyond the fifth
// fractional place are rounded half away from zero.
func CoinsToLunas(coins decimal.Decimal) (int64, error) {
	lunas := coins.Mul(lunasPerCoin).Round(0)
	if lunas.GreaterThan(maxLunas) || lunas.LessThan(minLunas) {
		return 0, errors.Wrapf(ErrAmountOverflow, "%s %s", coins.String(), Symbol)
	}
	return lunas.IntPart(), nil
}

// LunasToCoins converts lunas to an exact coin amount.
func LunasToCoins(lunas int64) decimal.Decimal {
	return decimal.New(lunas, -Decimals)
}

// ParseCoins parses a decimal coin string such as "12.5" into lunas.
// A trailing "NIM" ticker is accepted.
func ParseCoins(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(strings.ToUpper(s), Symbol))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q", s)
	}
	return CoinsToLunas(d)
}

// FormatLunas renders lunas as a coin amount with all five decimals.
func FormatLunas(lunas int64) string {
	return LunasToCoins(lunas).StringFixed(Decimals)
}
