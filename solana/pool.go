// Package solana reads bonding curve accounts from an RPC node.
package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/pumpcurve-go/curve"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
	"github.com/krazyTry/pumpcurve-go/market"
)

// baseMintOffset is the position of PoolState.BaseMint after the discriminator and owner.
const baseMintOffset = 8 + 32

// GetPool fetches and decodes one curve account.
func GetPool(ctx context.Context, reader Reader, address solana.PublicKey) (*curve.PoolState, error) {
	out, err := GetAccountInfo(ctx, reader, address)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", address, shared.ErrPoolNotFound)
		}
		return nil, err
	}
	if out == nil || out.Value == nil || out.Value.Data == nil {
		return nil, fmt.Errorf("%s: %w", address, shared.ErrPoolNotFound)
	}
	return curve.DecodePoolState(out.Value.Data.GetBinary())
}

// GetMultiplePools fetches curve accounts in order. Missing accounts are nil.
func GetMultiplePools(ctx context.Context, reader Reader, addresses []solana.PublicKey) ([]*curve.PoolState, error) {
	outs, err := GetMultipleAccountInfo(ctx, reader, addresses)
	if err != nil {
		return nil, err
	}
	list := make([]*curve.PoolState, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil || out.Data == nil {
			continue
		}
		if list[i], err = curve.DecodePoolState(out.Data.GetBinary()); err != nil {
			return nil, fmt.Errorf("decode pool %s: %w", addresses[i], err)
		}
	}
	return list, nil
}

// FindPools lists the program's curve accounts, restricted to baseMint unless it is zero.
func FindPools(ctx context.Context, reader Reader, programID, baseMint solana.PublicKey) (map[solana.PublicKey]*curve.PoolState, error) {
	opts := GenProgramAccountFilter(curve.PoolStateDiscriminator[:], shared.AccountSpace, baseMint, baseMintOffset)
	outs, err := reader.GetProgramAccountsWithOpts(ctx, programID, opts)
	if err != nil {
		return nil, err
	}
	pools := make(map[solana.PublicKey]*curve.PoolState, len(outs))
	for _, out := range outs {
		if out == nil || out.Account == nil || out.Account.Data == nil {
			continue
		}
		pool, err := curve.DecodePoolState(out.Account.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("decode pool %s: %w", out.Pubkey, err)
		}
		pools[out.Pubkey] = pool
	}
	return pools, nil
}

// GetSnapshot loads a curve and the decimals of both mints. The base supply
// allocated at creation is not stored in the account and must be supplied.
func GetSnapshot(ctx context.Context, reader Reader, address solana.PublicKey, baseSupply uint64) (*market.Snapshot, error) {
	pool, err := GetPool(ctx, reader, address)
	if err != nil {
		return nil, err
	}
	if pool.RealBaseReserves > baseSupply {
		return nil, fmt.Errorf("real base %d above supply %d: %w", pool.RealBaseReserves, baseSupply, shared.ErrExceedsSupply)
	}
	mints, err := GetMultipleToken(ctx, reader, pool.BaseMint, pool.QuoteMint)
	if err != nil {
		return nil, err
	}
	return &market.Snapshot{
		Address:       address,
		State:         *pool,
		BaseSupply:    baseSupply,
		BaseDecimals:  int32(mints[0].Decimals),
		QuoteDecimals: int32(mints[1].Decimals),
	}, nil
}
