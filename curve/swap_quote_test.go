package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/pumpcurve-go/curve/fee"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

const testSupply = 1_000_000

func quotePool() *PoolState {
	pool := testPool(1_000_000, testSupply, 3_000, 0)
	pool.RealQuoteThreshold = 1_000_000
	return pool
}

func TestSwapQuoteBuy(t *testing.T) {
	pool := quotePool()
	result, err := SwapQuote(SwapQuoteParams{
		Pool:           pool,
		Fee:            fee.DefaultSchedule(100),
		TradeDirection: shared.TradeDirectionQuoteToBase,
		AmountIn:       1_000,
		SlippageBps:    100,
		BaseSupply:     testSupply,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1_000), result.AmountIn)
	assert.Equal(t, uint64(10), result.Fee)
	assert.Equal(t, uint64(496_240), result.AmountOut)
	assert.Equal(t, uint64(491_277), result.MinimumAmountOut)
	assert.Equal(t, uint64(990), result.NextState.RealQuoteReserves)
	assert.Equal(t, uint64(503_760), result.NextState.RealBaseReserves)
	assert.False(t, result.NextState.Complete)

	assert.Zero(t, pool.RealQuoteReserves, "snapshot is not mutated")
}

func TestSwapQuoteSell(t *testing.T) {
	pool := quotePool()
	pool.RealBaseReserves = 503_760
	pool.RealQuoteReserves = 990

	result, err := SwapQuote(SwapQuoteParams{
		Pool:           pool,
		Fee:            fee.DefaultSchedule(100),
		TradeDirection: shared.TradeDirectionBaseToQuote,
		AmountIn:       496_240,
		BaseSupply:     testSupply,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(980), result.AmountOut)
	assert.Equal(t, uint64(9), result.Fee)
	assert.Equal(t, result.AmountOut, result.MinimumAmountOut)
	assert.Equal(t, uint64(1), result.NextState.RealQuoteReserves)
	assert.Equal(t, uint64(testSupply), result.NextState.RealBaseReserves)

	// selling more than was ever bought would push base past the supply
	_, err = SwapQuote(SwapQuoteParams{
		Pool:           pool,
		Fee:            fee.DefaultSchedule(100),
		TradeDirection: shared.TradeDirectionBaseToQuote,
		AmountIn:       1_000,
		BaseSupply:     503_760,
	})
	assert.ErrorIs(t, err, shared.ErrExceedsSupply)
}

func TestSwapQuoteExactOut(t *testing.T) {
	pool := quotePool()
	result, err := SwapQuoteExactOut(SwapQuoteExactOutParams{
		Pool:        pool,
		Fee:         fee.DefaultSchedule(100),
		AmountOut:   496_240,
		SlippageBps: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(998), result.AmountIn)
	assert.Equal(t, uint64(9), result.Fee)
	assert.Equal(t, uint64(1_008), result.MaximumAmountIn)
	assert.Equal(t, uint64(496_240), result.MinimumAmountOut)
	assert.Equal(t, uint64(989), result.NextState.RealQuoteReserves)

	_, err = SwapQuoteExactOut(SwapQuoteExactOutParams{
		Pool:      pool,
		Fee:       fee.DefaultSchedule(100),
		AmountOut: 2_000_000,
	})
	assert.ErrorIs(t, err, shared.ErrInvalidTradeAmount)

	// priceable but more than the real reserve holds
	_, err = SwapQuoteExactOut(SwapQuoteExactOutParams{
		Pool:      pool,
		Fee:       fee.DefaultSchedule(100),
		AmountOut: testSupply + 1,
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientLiquidity)
}

func TestSwapQuoteRejects(t *testing.T) {
	pool := quotePool()
	base := SwapQuoteParams{
		Pool:           pool,
		Fee:            fee.DefaultSchedule(100),
		TradeDirection: shared.TradeDirectionQuoteToBase,
		AmountIn:       1_000,
		BaseSupply:     testSupply,
	}

	params := base
	params.AmountIn = 0
	_, err := SwapQuote(params)
	assert.ErrorIs(t, err, shared.ErrInvalidTradeAmount)

	params = base
	params.SlippageBps = shared.MaxBasisPoint + 1
	_, err = SwapQuote(params)
	assert.ErrorIs(t, err, shared.ErrInvalidSlippage)

	params = base
	params.Fee = fee.Schedule{Rate: 20_000, Scale: shared.FullScale}
	_, err = SwapQuote(params)
	assert.ErrorIs(t, err, shared.ErrInvalidFeeRate)

	params = base
	params.Fee = fee.DefaultSchedule(shared.FullScale)
	_, err = SwapQuote(params)
	assert.ErrorIs(t, err, shared.ErrInvalidTradeAmount, "nothing left after the fee")

	params = base
	params.Pool = nil
	_, err = SwapQuote(params)
	assert.ErrorIs(t, err, shared.ErrPoolNotFound)

	completed := *pool
	completed.Complete = true
	params = base
	params.Pool = &completed
	_, err = SwapQuote(params)
	assert.ErrorIs(t, err, shared.ErrPoolComplete)
}

func TestSwapQuoteCompletesCurve(t *testing.T) {
	pool := quotePool()
	pool.RealQuoteThreshold = 950

	result, err := SwapQuote(SwapQuoteParams{
		Pool:           pool,
		Fee:            fee.DefaultSchedule(100),
		TradeDirection: shared.TradeDirectionQuoteToBase,
		AmountIn:       1_000,
		BaseSupply:     testSupply,
	})
	require.NoError(t, err)
	assert.True(t, result.NextState.Complete)
	assert.Equal(t, uint64(990), result.NextState.RealQuoteReserves)
}

func TestSideQuotesMatchSwapQuote(t *testing.T) {
	pool := quotePool()
	schedule := fee.DefaultSchedule(100)

	buy, err := BuyQuote(pool, schedule, 1_000, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(496_240), buy.AmountOut)
	assert.Equal(t, uint64(491_277), buy.MinimumAmountOut)

	exact, err := BuyExactQuote(pool, schedule, 496_240, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(998), exact.AmountIn)

	sell, err := SellQuote(&buy.NextState, schedule, 496_240, testSupply, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(980), sell.AmountOut)
}
