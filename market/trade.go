package market

import (
	"context"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/pumpcurve-go/curve"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// Buy spends quoteIn, fee included, and fails with ErrSlippageExceeded when the
// curve would pay out less than minBaseOut.
func (m *Market) Buy(ctx context.Context, address solanago.PublicKey, quoteIn, minBaseOut uint64) (curve.SwapResult, error) {
	return m.execute(ctx, address, "buy", func(state *curve.PoolState, _ uint64) (curve.SwapResult, error) {
		quote, err := curve.BuyQuote(state, m.schedule, quoteIn, 0)
		if err != nil {
			return curve.SwapResult{}, err
		}
		if quote.AmountOut < minBaseOut {
			return curve.SwapResult{}, fmt.Errorf("base out %d below minimum %d: %w", quote.AmountOut, minBaseOut, shared.ErrSlippageExceeded)
		}
		return quote.SwapResult, nil
	})
}

// BuyExact buys exactly baseOut and fails when the gross quote cost exceeds maxQuoteIn.
func (m *Market) BuyExact(ctx context.Context, address solanago.PublicKey, baseOut, maxQuoteIn uint64) (curve.SwapResult, error) {
	return m.execute(ctx, address, "buy_exact", func(state *curve.PoolState, _ uint64) (curve.SwapResult, error) {
		quote, err := curve.BuyExactQuote(state, m.schedule, baseOut, 0)
		if err != nil {
			return curve.SwapResult{}, err
		}
		if quote.AmountIn > maxQuoteIn {
			return curve.SwapResult{}, fmt.Errorf("quote in %d above maximum %d: %w", quote.AmountIn, maxQuoteIn, shared.ErrSlippageExceeded)
		}
		return quote.SwapResult, nil
	})
}

// Sell returns baseIn to the curve. minQuoteOut is checked against the amount
// received after the fee.
func (m *Market) Sell(ctx context.Context, address solanago.PublicKey, baseIn, minQuoteOut uint64) (curve.SwapResult, error) {
	return m.execute(ctx, address, "sell", func(state *curve.PoolState, baseSupply uint64) (curve.SwapResult, error) {
		quote, err := curve.SellQuote(state, m.schedule, baseIn, baseSupply, 0)
		if err != nil {
			return curve.SwapResult{}, err
		}
		if quote.AmountOut < minQuoteOut {
			return curve.SwapResult{}, fmt.Errorf("quote out %d below minimum %d: %w", quote.AmountOut, minQuoteOut, shared.ErrSlippageExceeded)
		}
		return quote.SwapResult, nil
	})
}

type priceFunc func(state *curve.PoolState, baseSupply uint64) (curve.SwapResult, error)

// execute holds the pool lock across snapshot, pricing and store. The stored
// state is only replaced when pricing succeeds.
func (m *Market) execute(ctx context.Context, address solanago.PublicKey, side string, price priceFunc) (curve.SwapResult, error) {
	if err := ctx.Err(); err != nil {
		return curve.SwapResult{}, err
	}
	entry, err := m.entry(address)
	if err != nil {
		return curve.SwapResult{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	snapshot := entry.state
	result, err := price(&snapshot, entry.baseSupply)
	if err != nil {
		m.logger.Warn("Trade rejected",
			zap.String("pool", address.String()),
			zap.String("side", side),
			zap.Error(err))
		return curve.SwapResult{}, err
	}
	entry.state = result.NextState

	m.logger.Debug("Trade executed",
		zap.String("pool", address.String()),
		zap.String("side", side),
		zap.Uint64("amount_in", result.AmountIn),
		zap.Uint64("amount_out", result.AmountOut),
		zap.Uint64("fee", result.Fee),
		zap.Uint64("real_quote", result.NextState.RealQuoteReserves),
		zap.Uint64("real_base", result.NextState.RealBaseReserves))
	if result.NextState.Complete {
		m.logger.Info("Curve complete",
			zap.String("pool", address.String()),
			zap.Uint64("real_quote", result.NextState.RealQuoteReserves),
			zap.Uint64("threshold", result.NextState.RealQuoteThreshold))
	}
	return result, nil
}
