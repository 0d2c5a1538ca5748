package curve

import (
	"fmt"

	"github.com/krazyTry/pumpcurve-go/curve/math"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// Every formula multiplies in 128 bits and divides once, rounding down. The
// trader always absorbs the rounding loss.

// QuoteOutputForQuoteInput returns the base amount bought with quoteAmountIn:
//
//	baseOut = effBase * quoteIn / (effQuote + quoteIn)
func QuoteOutputForQuoteInput(pool *PoolState, quoteAmountIn uint64) (uint64, error) {
	if quoteAmountIn == 0 {
		return 0, fmt.Errorf("quote amount in is zero: %w", shared.ErrInvalidTradeAmount)
	}
	effBase, err := pool.EffectiveBaseReserves()
	if err != nil {
		return 0, err
	}
	effQuote, err := pool.EffectiveQuoteReserves()
	if err != nil {
		return 0, err
	}
	return getOutputAmount(quoteAmountIn, effQuote, effBase)
}

// QuoteInputForBaseOutput returns the quote amount needed to buy exactly
// baseAmountOut:
//
//	quoteIn = effQuote * baseOut / (effBase - baseOut)
func QuoteInputForBaseOutput(pool *PoolState, baseAmountOut uint64) (uint64, error) {
	if baseAmountOut == 0 {
		return 0, fmt.Errorf("base amount out is zero: %w", shared.ErrInvalidTradeAmount)
	}
	effBase, err := pool.EffectiveBaseReserves()
	if err != nil {
		return 0, err
	}
	effQuote, err := pool.EffectiveQuoteReserves()
	if err != nil {
		return 0, err
	}
	return getInputAmount(baseAmountOut, effQuote, effBase)
}

// QuoteOutputForSell returns the quote amount received for selling
// baseAmountIn back to the curve:
//
//	quoteOut = effQuote * baseIn / (effBase + baseIn)
func QuoteOutputForSell(pool *PoolState, baseAmountIn uint64) (uint64, error) {
	if baseAmountIn == 0 {
		return 0, fmt.Errorf("base amount in is zero: %w", shared.ErrInvalidTradeAmount)
	}
	effBase, err := pool.EffectiveBaseReserves()
	if err != nil {
		return 0, err
	}
	effQuote, err := pool.EffectiveQuoteReserves()
	if err != nil {
		return 0, err
	}
	return getOutputAmount(baseAmountIn, effBase, effQuote)
}

// IsComplete reports whether the curve has reached its quote threshold.
func IsComplete(pool *PoolState) bool {
	return pool.IsComplete()
}

// getOutputAmount: outputReserve * inputAmount / (inputReserve + inputAmount)
func getOutputAmount(inputAmount, inputReserve, outputReserve uint64) (uint64, error) {
	denominator := math.Widen(inputReserve, inputAmount)
	return math.MulDivWide(outputReserve, inputAmount, denominator, shared.RoundingDown)
}

// getInputAmount: inputReserve * outputAmount / (outputReserve - outputAmount)
func getInputAmount(outputAmount, inputReserve, outputReserve uint64) (uint64, error) {
	if outputAmount >= outputReserve {
		return 0, fmt.Errorf("amount out %d exceeds available reserve %d: %w", outputAmount, outputReserve, shared.ErrInvalidTradeAmount)
	}
	return math.MulDiv(inputReserve, outputAmount, outputReserve-outputAmount, shared.RoundingDown)
}
