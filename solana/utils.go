package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Reader is the subset of *rpc.Client used to load curve accounts.
type Reader interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error)
	GetProgramAccountsWithOpts(ctx context.Context, program solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

var _ Reader = (*rpc.Client)(nil)

// GenProgramAccountFilter matches accounts by discriminator and size, and by
// key at offset when key is set.
func GenProgramAccountFilter(discriminator []byte, size uint64, key solana.PublicKey, offset uint64) *rpc.GetProgramAccountsOpts {
	opt := &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentFinalized,
		Encoding:   solana.EncodingBase64,
		Filters: []rpc.RPCFilter{
			{DataSize: size},
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  discriminator,
				},
			},
		},
	}
	if key.IsZero() {
		return opt
	}

	opt.Filters = append(opt.Filters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: offset,
			Bytes:  key[:],
		},
	})
	return opt
}

func GetAccountInfo(ctx context.Context, reader Reader, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return reader.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: rpc.CommitmentFinalized, Encoding: solana.EncodingBase64})
}

func GetMultipleAccountInfo(ctx context.Context, reader Reader, accounts []solana.PublicKey) (*rpc.GetMultipleAccountsResult, error) {
	return reader.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{Commitment: rpc.CommitmentFinalized, Encoding: solana.EncodingBase64})
}
