package curve

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

func TestPoolStateEncoding(t *testing.T) {
	pool, err := NewPoolState(
		solanago.NewWallet().PublicKey(),
		solanago.NewWallet().PublicKey(),
		solanago.WrappedSol,
		279_900_000_000_000,
		793_100_000_000_000,
		30_000_000_000,
		85_000_000_000,
	)
	require.NoError(t, err)
	pool.RealQuoteReserves = 12_345
	pool.Complete = true

	data, err := pool.Encode()
	require.NoError(t, err)
	assert.Len(t, data, shared.PoolStateSize)
	assert.Equal(t, PoolStateDiscriminator[:], data[:8])
	assert.Equal(t, pool.Owner[:], data[8:40])

	decoded, err := DecodePoolState(data)
	require.NoError(t, err)
	assert.Equal(t, pool, decoded)

	padded := append(data, make([]byte, shared.AccountSpace-len(data))...)
	decoded, err = DecodePoolState(padded)
	require.NoError(t, err)
	assert.Equal(t, pool, decoded)
}

func TestDecodePoolStateRejects(t *testing.T) {
	_, err := DecodePoolState(make([]byte, 10))
	assert.ErrorIs(t, err, shared.ErrInvalidAccount)

	_, err = DecodePoolState(make([]byte, shared.PoolStateSize))
	assert.ErrorIs(t, err, shared.ErrInvalidAccount)
}

func TestDerivePoolAddress(t *testing.T) {
	programID := solanago.NewWallet().PublicKey()
	baseMint := solanago.NewWallet().PublicKey()

	a, err := DerivePoolAddress(programID, baseMint, solanago.WrappedSol)
	require.NoError(t, err)
	b, err := DerivePoolAddress(programID, baseMint, solanago.WrappedSol)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := DerivePoolAddress(programID, solanago.WrappedSol, baseMint)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
