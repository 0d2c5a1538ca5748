package curve

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/pumpcurve-go/curve/math"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// PoolState is the bonding curve account.
//
// Virtual reserves are fixed at creation and only shape the price. Real base
// reserves start at the supply allocated to the curve and fall as buyers take
// base out; real quote reserves start at zero and rise toward
// RealQuoteThreshold, at which point Complete is set and the curve stops
// trading.
type PoolState struct {
	Owner              solanago.PublicKey
	BaseMint           solanago.PublicKey
	VirtBaseReserves   uint64
	RealBaseReserves   uint64
	QuoteMint          solanago.PublicKey
	VirtQuoteReserves  uint64
	RealQuoteReserves  uint64
	RealQuoteThreshold uint64
	Complete           bool
}

// NewPoolState builds the state of a freshly created curve holding baseSupply
// real base tokens and no real quote.
func NewPoolState(owner, baseMint, quoteMint solanago.PublicKey, virtBase, baseSupply, virtQuote, threshold uint64) (*PoolState, error) {
	if threshold == 0 {
		return nil, fmt.Errorf("real quote threshold must be greater than 0: %w", shared.ErrInvalidAccount)
	}
	if virtQuote == 0 {
		return nil, fmt.Errorf("virtual quote reserves must be greater than 0: %w", shared.ErrInvalidAccount)
	}
	if _, err := math.Add(virtBase, baseSupply); err != nil {
		return nil, err
	}
	if _, err := math.Add(virtQuote, threshold); err != nil {
		return nil, err
	}
	return &PoolState{
		Owner:              owner,
		BaseMint:           baseMint,
		VirtBaseReserves:   virtBase,
		RealBaseReserves:   baseSupply,
		QuoteMint:          quoteMint,
		VirtQuoteReserves:  virtQuote,
		RealQuoteReserves:  0,
		RealQuoteThreshold: threshold,
		Complete:           false,
	}, nil
}

// EffectiveBaseReserves returns virtual plus real base reserves.
func (p *PoolState) EffectiveBaseReserves() (uint64, error) {
	return math.Add(p.VirtBaseReserves, p.RealBaseReserves)
}

// EffectiveQuoteReserves returns virtual plus real quote reserves.
func (p *PoolState) EffectiveQuoteReserves() (uint64, error) {
	return math.Add(p.VirtQuoteReserves, p.RealQuoteReserves)
}

func (p *PoolState) IsComplete() bool {
	return p.Complete
}

// ReachesThreshold reports whether a real quote reserve of realQuote would
// complete the curve.
func (p *PoolState) ReachesThreshold(realQuote uint64) bool {
	return realQuote >= p.RealQuoteThreshold
}

// RemainingQuote is the quote still needed to complete the curve.
func (p *PoolState) RemainingQuote() uint64 {
	if p.RealQuoteReserves >= p.RealQuoteThreshold {
		return 0
	}
	return p.RealQuoteThreshold - p.RealQuoteReserves
}

func (p *PoolState) String() string {
	return fmt.Sprintf("PoolState{base=%s virt=%d real=%d quote=%s virt=%d real=%d threshold=%d complete=%v}",
		p.BaseMint, p.VirtBaseReserves, p.RealBaseReserves,
		p.QuoteMint, p.VirtQuoteReserves, p.RealQuoteReserves,
		p.RealQuoteThreshold, p.Complete)
}
