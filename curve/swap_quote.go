package curve

import (
	"fmt"

	"github.com/krazyTry/pumpcurve-go/curve/fee"
	"github.com/krazyTry/pumpcurve-go/curve/math"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// SwapResult describes a trade against a snapshot. AmountIn is what the trader
// pays and AmountOut what the trader receives, both after fees. The fee is
// always taken on the quote leg.
type SwapResult struct {
	TradeDirection shared.TradeDirection
	AmountIn       uint64
	AmountOut      uint64
	Fee            uint64
	NextState      PoolState
}

type SwapQuoteResult struct {
	SwapResult
	MinimumAmountOut uint64
	MaximumAmountIn  uint64
}

type SwapQuoteParams struct {
	Pool           *PoolState
	Fee            fee.Schedule
	TradeDirection shared.TradeDirection
	AmountIn       uint64
	SlippageBps    uint64
	// BaseSupply is the real base allocated at creation. Required for sells.
	BaseSupply uint64
}

// SwapQuote prices an exact-input trade in either direction.
func SwapQuote(params SwapQuoteParams) (SwapQuoteResult, error) {
	if params.Pool == nil {
		return SwapQuoteResult{}, shared.ErrPoolNotFound
	}
	if params.Pool.Complete {
		return SwapQuoteResult{}, shared.ErrPoolComplete
	}
	if params.AmountIn == 0 {
		return SwapQuoteResult{}, fmt.Errorf("amount is zero: %w", shared.ErrInvalidTradeAmount)
	}
	if params.SlippageBps > shared.MaxBasisPoint {
		return SwapQuoteResult{}, fmt.Errorf("slippage %d bps: %w", params.SlippageBps, shared.ErrInvalidSlippage)
	}

	var (
		result SwapResult
		err    error
	)
	switch params.TradeDirection {
	case shared.TradeDirectionQuoteToBase:
		result, err = getBuyResult(params.Pool, params.Fee, params.AmountIn)
	case shared.TradeDirectionBaseToQuote:
		result, err = getSellResult(params.Pool, params.Fee, params.AmountIn, params.BaseSupply)
	default:
		return SwapQuoteResult{}, fmt.Errorf("unknown trade direction %d", params.TradeDirection)
	}
	if err != nil {
		return SwapQuoteResult{}, err
	}

	minimumAmountOut, err := math.MulDiv(result.AmountOut, shared.MaxBasisPoint-params.SlippageBps, shared.MaxBasisPoint, shared.RoundingDown)
	if err != nil {
		return SwapQuoteResult{}, err
	}
	return SwapQuoteResult{
		SwapResult:       result,
		MinimumAmountOut: minimumAmountOut,
		MaximumAmountIn:  result.AmountIn,
	}, nil
}

type SwapQuoteExactOutParams struct {
	Pool        *PoolState
	Fee         fee.Schedule
	AmountOut   uint64
	SlippageBps uint64
}

// SwapQuoteExactOut prices buying exactly AmountOut base tokens.
func SwapQuoteExactOut(params SwapQuoteExactOutParams) (SwapQuoteResult, error) {
	if params.Pool == nil {
		return SwapQuoteResult{}, shared.ErrPoolNotFound
	}
	if params.Pool.Complete {
		return SwapQuoteResult{}, shared.ErrPoolComplete
	}
	if params.SlippageBps > shared.MaxBasisPoint {
		return SwapQuoteResult{}, fmt.Errorf("slippage %d bps: %w", params.SlippageBps, shared.ErrInvalidSlippage)
	}

	netIn, err := QuoteInputForBaseOutput(params.Pool, params.AmountOut)
	if err != nil {
		return SwapQuoteResult{}, err
	}
	grossIn, err := params.Fee.GrossAmount(netIn)
	if err != nil {
		return SwapQuoteResult{}, err
	}
	next, err := ApplyBuy(*params.Pool, netIn, params.AmountOut)
	if err != nil {
		return SwapQuoteResult{}, err
	}

	maximumAmountIn, err := math.MulDiv(grossIn, shared.MaxBasisPoint+params.SlippageBps, shared.MaxBasisPoint, shared.RoundingUp)
	if err != nil {
		return SwapQuoteResult{}, err
	}
	return SwapQuoteResult{
		SwapResult: SwapResult{
			TradeDirection: shared.TradeDirectionQuoteToBase,
			AmountIn:       grossIn,
			AmountOut:      params.AmountOut,
			Fee:            grossIn - netIn,
			NextState:      next,
		},
		MinimumAmountOut: params.AmountOut,
		MaximumAmountIn:  maximumAmountIn,
	}, nil
}

// getBuyResult strips the fee from quoteIn and sends the remainder to the curve.
func getBuyResult(pool *PoolState, schedule fee.Schedule, quoteIn uint64) (SwapResult, error) {
	netIn, feeAmount, err := schedule.NetAmount(quoteIn)
	if err != nil {
		return SwapResult{}, err
	}
	baseOut, err := QuoteOutputForQuoteInput(pool, netIn)
	if err != nil {
		return SwapResult{}, err
	}
	next, err := ApplyBuy(*pool, netIn, baseOut)
	if err != nil {
		return SwapResult{}, err
	}
	return SwapResult{
		TradeDirection: shared.TradeDirectionQuoteToBase,
		AmountIn:       quoteIn,
		AmountOut:      baseOut,
		Fee:            feeAmount,
		NextState:      next,
	}, nil
}

// getSellResult charges the fee on the quote the curve pays out.
func getSellResult(pool *PoolState, schedule fee.Schedule, baseIn, baseSupply uint64) (SwapResult, error) {
	grossOut, err := QuoteOutputForSell(pool, baseIn)
	if err != nil {
		return SwapResult{}, err
	}
	netOut, feeAmount, err := schedule.NetAmount(grossOut)
	if err != nil {
		return SwapResult{}, err
	}
	next, err := ApplySell(*pool, baseIn, grossOut, baseSupply)
	if err != nil {
		return SwapResult{}, err
	}
	return SwapResult{
		TradeDirection: shared.TradeDirectionBaseToQuote,
		AmountIn:       baseIn,
		AmountOut:      netOut,
		Fee:            feeAmount,
		NextState:      next,
	}, nil
}

// BuyQuote prices spending quoteIn (fee included) on base tokens.
func BuyQuote(pool *PoolState, schedule fee.Schedule, quoteIn, slippageBps uint64) (SwapQuoteResult, error) {
	return SwapQuote(SwapQuoteParams{
		Pool:           pool,
		Fee:            schedule,
		TradeDirection: shared.TradeDirectionQuoteToBase,
		AmountIn:       quoteIn,
		SlippageBps:    slippageBps,
	})
}

func BuyExactQuote(pool *PoolState, schedule fee.Schedule, baseOut, slippageBps uint64) (SwapQuoteResult, error) {
	return SwapQuoteExactOut(SwapQuoteExactOutParams{
		Pool:        pool,
		Fee:         schedule,
		AmountOut:   baseOut,
		SlippageBps: slippageBps,
	})
}

// SellQuote prices returning baseIn to the curve. AmountOut is net of the fee.
func SellQuote(pool *PoolState, schedule fee.Schedule, baseIn, baseSupply, slippageBps uint64) (SwapQuoteResult, error) {
	return SwapQuote(SwapQuoteParams{
		Pool:           pool,
		Fee:            schedule,
		TradeDirection: shared.TradeDirectionBaseToQuote,
		AmountIn:       baseIn,
		SlippageBps:    slippageBps,
		BaseSupply:     baseSupply,
	})
}
