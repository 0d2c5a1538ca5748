package curve

import (
	stdmath "math"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

func TestNewPoolState(t *testing.T) {
	owner := solanago.NewWallet().PublicKey()
	baseMint := solanago.NewWallet().PublicKey()

	pool, err := NewPoolState(owner, baseMint, solanago.WrappedSol, 279_900_000_000_000, 793_100_000_000_000, 30_000_000_000, 85_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, owner, pool.Owner)
	assert.Equal(t, uint64(793_100_000_000_000), pool.RealBaseReserves)
	assert.Zero(t, pool.RealQuoteReserves)
	assert.False(t, pool.Complete)
	assert.Equal(t, uint64(85_000_000_000), pool.RemainingQuote())

	_, err = NewPoolState(owner, baseMint, solanago.WrappedSol, 1, 1, 1, 0)
	assert.ErrorIs(t, err, shared.ErrInvalidAccount)

	_, err = NewPoolState(owner, baseMint, solanago.WrappedSol, 1, 1, 0, 1)
	assert.ErrorIs(t, err, shared.ErrInvalidAccount)

	_, err = NewPoolState(owner, baseMint, solanago.WrappedSol, stdmath.MaxUint64, 1, 1, 1)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)
}

func TestApplyBuyCompletesAtThreshold(t *testing.T) {
	pool := *testPool(1_000_000, 500_000, 30, 950)
	pool.RealQuoteThreshold = 1_000

	next, err := ApplyBuy(pool, 60, 1_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_010), next.RealQuoteReserves)
	assert.Equal(t, uint64(499_000), next.RealBaseReserves)
	assert.True(t, next.Complete)

	assert.False(t, pool.Complete, "input state is not mutated")
	assert.Equal(t, uint64(950), pool.RealQuoteReserves)

	_, err = ApplyBuy(next, 1, 1)
	assert.ErrorIs(t, err, shared.ErrPoolComplete)

	_, err = ApplySell(next, 1, 1, 500_000)
	assert.ErrorIs(t, err, shared.ErrPoolComplete)
}

func TestApplyBuyExactlyAtThreshold(t *testing.T) {
	pool := *testPool(1_000_000, 500_000, 30, 940)
	pool.RealQuoteThreshold = 1_000

	next, err := ApplyBuy(pool, 59, 10)
	require.NoError(t, err)
	assert.False(t, next.Complete)

	next, err = ApplyBuy(next, 1, 1)
	require.NoError(t, err)
	assert.True(t, next.Complete)
	assert.Equal(t, next.RealQuoteThreshold, next.RealQuoteReserves)
}

func TestApplyBuyRejects(t *testing.T) {
	pool := *testPool(1_000_000, 100, 30, 0)

	_, err := ApplyBuy(pool, 10, 101)
	assert.ErrorIs(t, err, shared.ErrInsufficientLiquidity)

	_, err = ApplyBuy(pool, 0, 1)
	assert.ErrorIs(t, err, shared.ErrInvalidTradeAmount)

	_, err = ApplyBuy(pool, 1, 0)
	assert.ErrorIs(t, err, shared.ErrInvalidTradeAmount)

	pool.RealQuoteReserves = stdmath.MaxUint64
	_, err = ApplyBuy(pool, 1, 1)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)
}

func TestApplySell(t *testing.T) {
	pool := *testPool(1_000_000, 400, 30, 100)

	next, err := ApplySell(pool, 100, 40, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), next.RealBaseReserves)
	assert.Equal(t, uint64(60), next.RealQuoteReserves)

	_, err = ApplySell(pool, 101, 40, 500)
	assert.ErrorIs(t, err, shared.ErrExceedsSupply)

	_, err = ApplySell(pool, 1, 101, 500)
	assert.ErrorIs(t, err, shared.ErrInsufficientLiquidity)

	_, err = ApplySell(pool, 0, 1, 500)
	assert.ErrorIs(t, err, shared.ErrInvalidTradeAmount)
}
