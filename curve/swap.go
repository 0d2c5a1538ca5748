package curve

import (
	"fmt"

	"github.com/krazyTry/pumpcurve-go/curve/math"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// ApplyBuy returns the state after quoteIn enters the curve and baseOut leaves
// it. The curve completes when the real quote reserve reaches the threshold;
// any overshoot stays in the reserve.
func ApplyBuy(pool PoolState, quoteIn, baseOut uint64) (PoolState, error) {
	if pool.Complete {
		return PoolState{}, shared.ErrPoolComplete
	}
	if quoteIn == 0 || baseOut == 0 {
		return PoolState{}, fmt.Errorf("buy of %d for %d: %w", baseOut, quoteIn, shared.ErrInvalidTradeAmount)
	}
	realBase, err := math.Sub(pool.RealBaseReserves, baseOut)
	if err != nil {
		return PoolState{}, fmt.Errorf("base out %d above real reserve %d: %w", baseOut, pool.RealBaseReserves, shared.ErrInsufficientLiquidity)
	}
	realQuote, err := math.Add(pool.RealQuoteReserves, quoteIn)
	if err != nil {
		return PoolState{}, err
	}
	if _, err := math.Add(pool.VirtQuoteReserves, realQuote); err != nil {
		return PoolState{}, err
	}

	pool.RealBaseReserves = realBase
	pool.RealQuoteReserves = realQuote
	if pool.ReachesThreshold(realQuote) {
		pool.Complete = true
	}
	return pool, nil
}

// ApplySell returns the state after baseIn returns to the curve and quoteOut
// leaves it. baseSupply is the real base allocated at creation, which the
// real base reserve may never exceed.
func ApplySell(pool PoolState, baseIn, quoteOut, baseSupply uint64) (PoolState, error) {
	if pool.Complete {
		return PoolState{}, shared.ErrPoolComplete
	}
	if baseIn == 0 || quoteOut == 0 {
		return PoolState{}, fmt.Errorf("sell of %d for %d: %w", baseIn, quoteOut, shared.ErrInvalidTradeAmount)
	}
	realQuote, err := math.Sub(pool.RealQuoteReserves, quoteOut)
	if err != nil {
		return PoolState{}, fmt.Errorf("quote out %d above real reserve %d: %w", quoteOut, pool.RealQuoteReserves, shared.ErrInsufficientLiquidity)
	}
	realBase, err := math.Add(pool.RealBaseReserves, baseIn)
	if err != nil {
		return PoolState{}, err
	}
	if realBase > baseSupply {
		return PoolState{}, fmt.Errorf("real base %d above supply %d: %w", realBase, baseSupply, shared.ErrExceedsSupply)
	}

	pool.RealBaseReserves = realBase
	pool.RealQuoteReserves = realQuote
	return pool, nil
}
