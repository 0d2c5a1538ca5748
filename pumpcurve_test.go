package pumpcurve

import (
	"context"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/pumpcurve-go/curve"
	"github.com/krazyTry/pumpcurve-go/curve/fee"
	"github.com/krazyTry/pumpcurve-go/market"
)

func TestNewPoolQuote(t *testing.T) {
	pool, err := NewPool(solanago.PublicKey{}, solanago.NewWallet().PublicKey(), solanago.WrappedSol,
		1_000_000, 1_000_000, 3_000, 1_000_000)
	require.NoError(t, err)

	quote, err := curve.BuyQuote(pool, fee.DefaultSchedule(100), 1_000, 250)
	require.NoError(t, err)
	assert.Equal(t, uint64(496_240), quote.AmountOut)
}

func TestNewMarket(t *testing.T) {
	m, err := NewMarket(market.Options{Fee: fee.DefaultSchedule(100)})
	require.NoError(t, err)

	pool, err := m.Create(market.CreateParams{
		BaseMint:           solanago.NewWallet().PublicKey(),
		VirtBaseReserves:   1_000_000,
		BaseSupply:         1_000_000,
		VirtQuoteReserves:  3_000,
		RealQuoteThreshold: 1_000_000,
	})
	require.NoError(t, err)

	result, err := m.Buy(context.Background(), pool, 1_000, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(496_240), result.AmountOut)
}
