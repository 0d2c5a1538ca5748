package curve

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	binary "github.com/gagliardetto/binary"

	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// PoolStateDiscriminator prefixes every encoded PoolState account.
var PoolStateDiscriminator = discriminator(shared.AccountKeyPoolState)

func discriminator(name string) [8]byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}

// Encode serializes the pool as a borsh account with its discriminator.
func (p *PoolState) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(shared.PoolStateSize)
	buf.Write(PoolStateDiscriminator[:])
	if err := binary.NewBorshEncoder(buf).Encode(*p); err != nil {
		return nil, fmt.Errorf("encode pool state: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodePoolState parses account data produced by Encode.
func DecodePoolState(data []byte) (*PoolState, error) {
	if len(data) < shared.PoolStateSize {
		return nil, fmt.Errorf("pool state data length %d, want %d: %w", len(data), shared.PoolStateSize, shared.ErrInvalidAccount)
	}
	if !bytes.Equal(data[:8], PoolStateDiscriminator[:]) {
		return nil, fmt.Errorf("pool state discriminator mismatch: %w", shared.ErrInvalidAccount)
	}
	out := new(PoolState)
	if err := binary.NewBorshDecoder(data[8:]).Decode(out); err != nil {
		return nil, fmt.Errorf("decode pool state: %w", err)
	}
	return out, nil
}
