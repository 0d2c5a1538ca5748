package pumpcurve

import (
	"github.com/krazyTry/pumpcurve-go/curve"
	"github.com/krazyTry/pumpcurve-go/market"
)

// NewMarket creates a market that serializes trades per pool.
//
// Example:
//
// m, _ := NewMarket(market.Options{Fee: fee.DefaultSchedule(100), Workers: 4, Logger: log})
//
// pool, _ := m.Create(market.CreateParams{BaseMint: mint, VirtBaseReserves: vb, BaseSupply: supply, VirtQuoteReserves: vq, RealQuoteThreshold: threshold})
//
// m.Buy(ctx, pool, quoteIn, minBaseOut)
var NewMarket = market.New

// NewPool builds the state of a freshly created curve.
//
// Example:
//
// pool, _ := NewPool(owner, baseMint, solana.WrappedSol, virtBase, baseSupply, virtQuote, threshold)
//
// quote, _ := curve.BuyQuote(pool, fee.DefaultSchedule(100), quoteIn, 250)
var NewPool = curve.NewPoolState

// LoadSnapshot reads a pool from a JSON snapshot.
var LoadSnapshot = market.LoadSnapshot
