package market

import (
	"context"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"

	"github.com/krazyTry/pumpcurve-go/curve"
)

type Side int

const (
	SideBuy Side = iota
	SideBuyExact
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideBuyExact:
		return "buy-exact"
	case SideSell:
		return "sell"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts the names printed by Side.String.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return SideBuy, nil
	case "buy-exact", "buy_exact":
		return SideBuyExact, nil
	case "sell":
		return SideSell, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

// Order is one trade request. Amount is the exact side of the trade (quote in
// for buys, base out for exact buys, base in for sells); Limit is the minimum
// out or, for exact buys, the maximum in.
type Order struct {
	Pool   solanago.PublicKey
	Side   Side
	Amount uint64
	Limit  uint64
}

type Fill struct {
	Order  Order
	Result curve.SwapResult
	Err    error
}

// Replay executes orders with up to Workers pools in flight. Orders against the
// same pool run in slice order; a rejected order is recorded in its Fill and
// does not stop the batch. The returned error is only set on cancellation, in
// which case every order that did not run carries that error in its Fill.
func (m *Market) Replay(ctx context.Context, orders []Order) ([]Fill, error) {
	fills := make([]Fill, len(orders))
	ran := make([]bool, len(orders))
	byPool := make(map[solanago.PublicKey][]int)
	var poolOrder []solanago.PublicKey
	for i, order := range orders {
		fills[i].Order = order
		if _, ok := byPool[order.Pool]; !ok {
			poolOrder = append(poolOrder, order.Pool)
		}
		byPool[order.Pool] = append(byPool[order.Pool], i)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for _, address := range poolOrder {
		indexes := byPool[address]
		g.Go(func() error {
			for _, i := range indexes {
				if err := gctx.Err(); err != nil {
					return err
				}
				fills[i].Result, fills[i].Err = m.Place(gctx, orders[i])
				ran[i] = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for i := range fills {
			if !ran[i] {
				fills[i].Err = err
			}
		}
		return fills, err
	}
	return fills, nil
}

// Place executes a single order.
func (m *Market) Place(ctx context.Context, order Order) (curve.SwapResult, error) {
	switch order.Side {
	case SideBuy:
		return m.Buy(ctx, order.Pool, order.Amount, order.Limit)
	case SideBuyExact:
		return m.BuyExact(ctx, order.Pool, order.Amount, order.Limit)
	case SideSell:
		return m.Sell(ctx, order.Pool, order.Amount, order.Limit)
	}
	return curve.SwapResult{}, fmt.Errorf("unknown side %s", order.Side)
}
