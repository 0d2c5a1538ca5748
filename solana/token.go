package solana

import (
	"context"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Token represents a Solana token with mint information and owner
type Token struct {
	token.Mint
	// Owner account of the token
	Owner solana.PublicKey
}

// TokenLayout provides methods for decoding token data
type TokenLayout struct {
}

func (l *TokenLayout) Decode(data []byte) (*Token, error) {
	mint := token.Mint{}
	if err := mint.UnmarshalWithDecoder(binary.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &Token{Mint: mint}, nil
}

// GetMultipleToken loads mint accounts in order. Every mint must exist.
func GetMultipleToken(ctx context.Context, reader Reader, mints ...solana.PublicKey) ([]*Token, error) {
	outs, err := GetMultipleAccountInfo(ctx, reader, mints)
	if err != nil {
		return nil, err
	}
	if len(outs.Value) != len(mints) {
		return nil, fmt.Errorf("requested %d mints, got %d accounts", len(mints), len(outs.Value))
	}
	list := make([]*Token, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil || out.Data == nil {
			return nil, fmt.Errorf("mint %s not found", mints[i])
		}
		t, err := new(TokenLayout).Decode(out.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("decode mint %s: %w", mints[i], err)
		}
		t.Owner = out.Owner
		list[i] = t
	}
	return list, nil
}
