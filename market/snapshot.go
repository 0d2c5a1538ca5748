package market

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/tidwall/gjson"

	"github.com/krazyTry/pumpcurve-go/curve"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// Snapshot is a pool as read from a JSON document.
type Snapshot struct {
	Address       solanago.PublicKey
	State         curve.PoolState
	BaseSupply    uint64
	BaseDecimals  int32
	QuoteDecimals int32
}

// LoadSnapshot reads a pool snapshot. The pool is taken either from a raw
// account in RPC form ("account.data": [<base64>, "base64"]) or from the
// explicit "pool" object. Integer fields may be JSON numbers or decimal
// strings. A missing address is derived from programID and the mints.
//
//	{
//	  "address": "...",
//	  "base_supply": "793100000000000",
//	  "base_decimals": 6,
//	  "quote_decimals": 9,
//	  "pool": {
//	    "owner": "...", "base_mint": "...", "quote_mint": "...",
//	    "virt_base_reserves": "...", "real_base_reserves": "...",
//	    "virt_quote_reserves": "...", "real_quote_reserves": "...",
//	    "real_quote_threshold": "...", "complete": false
//	  }
//	}
func LoadSnapshot(data []byte, programID solanago.PublicKey) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("snapshot is not valid json")
	}
	doc := gjson.ParseBytes(data)

	var (
		state *curve.PoolState
		err   error
	)
	if account := doc.Get("account.data"); account.Exists() {
		state, err = decodeAccountData(account)
	} else if pool := doc.Get("pool"); pool.IsObject() {
		state, err = parsePool(pool)
	} else {
		err = fmt.Errorf("snapshot has neither account.data nor pool")
	}
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{State: *state}
	if snap.BaseSupply, err = uintField(doc, "base_supply"); err != nil {
		return nil, err
	}
	if snap.State.RealBaseReserves > snap.BaseSupply {
		return nil, fmt.Errorf("real base %d above supply %d: %w", snap.State.RealBaseReserves, snap.BaseSupply, shared.ErrExceedsSupply)
	}
	if snap.BaseDecimals, err = decimalsField(doc, "base_decimals"); err != nil {
		return nil, err
	}
	if snap.QuoteDecimals, err = decimalsField(doc, "quote_decimals"); err != nil {
		return nil, err
	}

	if address := doc.Get("address"); address.Exists() {
		if snap.Address, err = solanago.PublicKeyFromBase58(address.String()); err != nil {
			return nil, fmt.Errorf("address: %w", err)
		}
	} else {
		if snap.Address, err = curve.DerivePoolAddress(programID, state.BaseMint, state.QuoteMint); err != nil {
			return nil, fmt.Errorf("derive pool address: %w", err)
		}
	}
	return snap, nil
}

func decodeAccountData(account gjson.Result) (*curve.PoolState, error) {
	parts := account.Array()
	if len(parts) != 2 || parts[1].String() != "base64" {
		return nil, fmt.Errorf("account.data must be [<data>, \"base64\"]: %w", shared.ErrInvalidAccount)
	}
	raw, err := base64.StdEncoding.DecodeString(parts[0].String())
	if err != nil {
		return nil, fmt.Errorf("account.data: %w", err)
	}
	return curve.DecodePoolState(raw)
}

func parsePool(pool gjson.Result) (*curve.PoolState, error) {
	var (
		state curve.PoolState
		err   error
	)
	keys := []struct {
		path string
		dst  *solanago.PublicKey
	}{
		{"owner", &state.Owner},
		{"base_mint", &state.BaseMint},
		{"quote_mint", &state.QuoteMint},
	}
	for _, k := range keys {
		v := pool.Get(k.path)
		if !v.Exists() {
			continue
		}
		if *k.dst, err = solanago.PublicKeyFromBase58(v.String()); err != nil {
			return nil, fmt.Errorf("pool.%s: %w", k.path, err)
		}
	}
	if state.QuoteMint.IsZero() {
		state.QuoteMint = solanago.WrappedSol
	}

	amounts := []struct {
		path string
		dst  *uint64
	}{
		{"virt_base_reserves", &state.VirtBaseReserves},
		{"real_base_reserves", &state.RealBaseReserves},
		{"virt_quote_reserves", &state.VirtQuoteReserves},
		{"real_quote_reserves", &state.RealQuoteReserves},
		{"real_quote_threshold", &state.RealQuoteThreshold},
	}
	for _, a := range amounts {
		if *a.dst, err = uintField(pool, a.path); err != nil {
			return nil, fmt.Errorf("pool.%w", err)
		}
	}
	if state.RealQuoteThreshold == 0 {
		return nil, fmt.Errorf("pool.real_quote_threshold must be greater than 0: %w", shared.ErrInvalidAccount)
	}
	state.Complete = pool.Get("complete").Bool() || state.ReachesThreshold(state.RealQuoteReserves)
	return &state, nil
}

// decimalsField reads SPL mint decimals, a u8. A missing field means 0.
func decimalsField(doc gjson.Result, path string) (int32, error) {
	if !doc.Get(path).Exists() {
		return 0, nil
	}
	n, err := uintField(doc, path)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint8 {
		return 0, fmt.Errorf("%s: %d above %d", path, n, math.MaxUint8)
	}
	return int32(n), nil
}

// uintField reads a u64 without going through float64, so values above 2^53
// keep their precision.
func uintField(doc gjson.Result, path string) (uint64, error) {
	v := doc.Get(path)
	var raw string
	switch v.Type {
	case gjson.Number:
		raw = v.Raw
	case gjson.String:
		raw = v.Str
	case gjson.Null:
		return 0, fmt.Errorf("%s: missing", path)
	default:
		return 0, fmt.Errorf("%s: not an integer", path)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
