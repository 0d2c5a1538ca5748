// Package market is the caller side of the curve engine. It owns pool state,
// serializes every read-compute-write against a pool and applies the engine's
// results all-or-nothing.
package market

import (
	"fmt"
	"sync"

	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/pumpcurve-go/curve"
	"github.com/krazyTry/pumpcurve-go/curve/fee"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

type Market struct {
	programID solanago.PublicKey
	schedule  fee.Schedule
	workers   int
	logger    *zap.Logger

	mu    sync.RWMutex
	pools map[solanago.PublicKey]*poolEntry
}

// poolEntry guards one pool. Trades against the same pool must never be
// priced from the same pre-trade reserves.
type poolEntry struct {
	mu         sync.Mutex
	state      curve.PoolState
	baseSupply uint64
}

type Options struct {
	ProgramID solanago.PublicKey
	Fee       fee.Schedule
	// Workers bounds Replay concurrency. Defaults to 1.
	Workers int
	Logger  *zap.Logger
}

func New(opts Options) (*Market, error) {
	if err := opts.Fee.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Market{
		programID: opts.ProgramID,
		schedule:  opts.Fee,
		workers:   opts.Workers,
		logger:    opts.Logger,
		pools:     make(map[solanago.PublicKey]*poolEntry),
	}, nil
}

type CreateParams struct {
	Owner              solanago.PublicKey
	BaseMint           solanago.PublicKey
	QuoteMint          solanago.PublicKey
	VirtBaseReserves   uint64
	BaseSupply         uint64
	VirtQuoteReserves  uint64
	RealQuoteThreshold uint64
}

// Create registers a new curve and returns its address.
func (m *Market) Create(params CreateParams) (solanago.PublicKey, error) {
	if params.QuoteMint.IsZero() {
		params.QuoteMint = solanago.WrappedSol
	}
	state, err := curve.NewPoolState(params.Owner, params.BaseMint, params.QuoteMint,
		params.VirtBaseReserves, params.BaseSupply, params.VirtQuoteReserves, params.RealQuoteThreshold)
	if err != nil {
		return solanago.PublicKey{}, err
	}
	address, err := curve.DerivePoolAddress(m.programID, params.BaseMint, params.QuoteMint)
	if err != nil {
		return solanago.PublicKey{}, fmt.Errorf("derive pool address: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pools[address]; ok {
		return solanago.PublicKey{}, fmt.Errorf("pool %s already exists", address)
	}
	m.pools[address] = &poolEntry{state: *state, baseSupply: params.BaseSupply}

	m.logger.Info("Pool created",
		zap.String("pool", address.String()),
		zap.String("base_mint", params.BaseMint.String()),
		zap.String("quote_mint", params.QuoteMint.String()),
		zap.Uint64("base_supply", params.BaseSupply),
		zap.Uint64("threshold", params.RealQuoteThreshold))
	return address, nil
}

// Register adds an existing pool, such as one loaded from a snapshot.
func (m *Market) Register(address solanago.PublicKey, state curve.PoolState, baseSupply uint64) error {
	if state.RealBaseReserves > baseSupply {
		return fmt.Errorf("real base %d above supply %d: %w", state.RealBaseReserves, baseSupply, shared.ErrExceedsSupply)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pools[address]; ok {
		return fmt.Errorf("pool %s already exists", address)
	}
	m.pools[address] = &poolEntry{state: state, baseSupply: baseSupply}
	return nil
}

// Snapshot returns a copy of the pool state and its allocated base supply.
func (m *Market) Snapshot(address solanago.PublicKey) (curve.PoolState, uint64, error) {
	entry, err := m.entry(address)
	if err != nil {
		return curve.PoolState{}, 0, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.state, entry.baseSupply, nil
}

func (m *Market) Pools() []solanago.PublicKey {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]solanago.PublicKey, 0, len(m.pools))
	for address := range m.pools {
		out = append(out, address)
	}
	return out
}

func (m *Market) entry(address solanago.PublicKey) (*poolEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.pools[address]
	if !ok {
		return nil, fmt.Errorf("%s: %w", address, shared.ErrPoolNotFound)
	}
	return entry, nil
}
