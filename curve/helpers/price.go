// Package helpers renders curve quantities for display. Nothing here feeds
// back into pricing.
package helpers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/pumpcurve-go/curve"
)

const pricePrecision = 18

var (
	N0   = decimal.Zero
	N100 = decimal.NewFromInt(100)
)

// ToUIAmount scales a raw token amount down by its decimals.
func ToUIAmount(amount uint64, tokenDecimal int32) decimal.Decimal {
	return decimal.NewFromUint64(amount).Shift(-tokenDecimal)
}

// ConvertToLamports parses a UI amount into raw units, truncating any digits
// beyond the token's decimals.
func ConvertToLamports(amount string, tokenDecimal int32) (uint64, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, err
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", amount)
	}
	raw := value.Shift(tokenDecimal).Truncate(0).BigInt()
	if !raw.IsUint64() {
		return 0, fmt.Errorf("amount %s overflows u64", amount)
	}
	return raw.Uint64(), nil
}

// SpotPrice is the marginal price of one base token in quote tokens,
// effQuote / effBase adjusted for decimals.
func SpotPrice(pool *curve.PoolState, baseDecimal, quoteDecimal int32) (decimal.Decimal, error) {
	effBase, err := pool.EffectiveBaseReserves()
	if err != nil {
		return N0, err
	}
	effQuote, err := pool.EffectiveQuoteReserves()
	if err != nil {
		return N0, err
	}
	if effBase == 0 {
		return N0, fmt.Errorf("effective base reserves are zero")
	}
	return ToUIAmount(effQuote, quoteDecimal).DivRound(ToUIAmount(effBase, baseDecimal), pricePrecision), nil
}

// MarketCap values totalSupply base tokens at the spot price.
func MarketCap(pool *curve.PoolState, totalSupply uint64, baseDecimal, quoteDecimal int32) (decimal.Decimal, error) {
	price, err := SpotPrice(pool, baseDecimal, quoteDecimal)
	if err != nil {
		return N0, err
	}
	return price.Mul(ToUIAmount(totalSupply, baseDecimal)), nil
}

// Progress is the percentage of the quote threshold deposited, capped at 100.
func Progress(pool *curve.PoolState) decimal.Decimal {
	if pool.Complete || pool.RealQuoteThreshold == 0 {
		return N100
	}
	progress := decimal.NewFromUint64(pool.RealQuoteReserves).
		Mul(N100).
		DivRound(decimal.NewFromUint64(pool.RealQuoteThreshold), 4)
	if progress.GreaterThan(N100) {
		return N100
	}
	return progress
}
