// Command curvectl prices a trade against a bonding curve snapshot.
//
//	curvectl -config curve.yaml -pool pool.json -side buy -amount 1.5
//	curvectl -rpc https://api.mainnet-beta.solana.com -address <pool> -supply 793100000000000 -side sell -amount 1000
//
// Amounts are in UI units: quote for buys, base for exact buys and sells.
// With -execute the trade is applied through a market and the resulting pool
// state is printed as well.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/pumpcurve-go/config"
	"github.com/krazyTry/pumpcurve-go/curve"
	"github.com/krazyTry/pumpcurve-go/curve/helpers"
	"github.com/krazyTry/pumpcurve-go/logger"
	"github.com/krazyTry/pumpcurve-go/market"
	"github.com/krazyTry/pumpcurve-go/solana"
)

type options struct {
	poolPath string
	rpcURL   string
	address  string
	supply   uint64
	side     string
	amount   string
	execute  bool
}

func main() {
	var (
		opts       options
		configPath = flag.String("config", "", "config file (yaml, json or toml)")
		slippage   = flag.Int64("slippage", -1, "slippage in bps, overrides config")
	)
	flag.StringVar(&opts.poolPath, "pool", "", "pool snapshot json")
	flag.StringVar(&opts.rpcURL, "rpc", "", "rpc endpoint to read the pool from instead of -pool")
	flag.StringVar(&opts.address, "address", "", "pool address, with -rpc")
	flag.Uint64Var(&opts.supply, "supply", 0, "base supply allocated at creation, with -rpc")
	flag.StringVar(&opts.side, "side", "buy", "buy, buy-exact or sell")
	flag.StringVar(&opts.amount, "amount", "", "trade amount in UI units")
	flag.BoolVar(&opts.execute, "execute", false, "apply the trade and print the new pool state")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *slippage >= 0 {
		cfg.SlippageBps = uint64(*slippage)
	}

	log, err := logger.New(cfg.Logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(context.Background(), log, cfg, opts, os.Stdout); err != nil {
		log.Error("curvectl failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zap.Logger, cfg *config.Config, opts options, out io.Writer) error {
	if opts.amount == "" {
		return fmt.Errorf("-amount is required")
	}
	side, err := market.ParseSide(opts.side)
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(ctx, cfg, opts)
	if err != nil {
		return err
	}

	decimals := snap.BaseDecimals
	if side == market.SideBuy {
		decimals = snap.QuoteDecimals
	}
	raw, err := helpers.ConvertToLamports(opts.amount, decimals)
	if err != nil {
		return fmt.Errorf("amount %q: %w", opts.amount, err)
	}

	schedule := cfg.FeeSchedule()
	var quote curve.SwapQuoteResult
	switch side {
	case market.SideBuy:
		quote, err = curve.BuyQuote(&snap.State, schedule, raw, cfg.SlippageBps)
	case market.SideBuyExact:
		quote, err = curve.BuyExactQuote(&snap.State, schedule, raw, cfg.SlippageBps)
	case market.SideSell:
		quote, err = curve.SellQuote(&snap.State, schedule, raw, snap.BaseSupply, cfg.SlippageBps)
	}
	if err != nil {
		return err
	}

	inDecimals, outDecimals := snap.QuoteDecimals, snap.BaseDecimals
	if side == market.SideSell {
		inDecimals, outDecimals = snap.BaseDecimals, snap.QuoteDecimals
	}
	fmt.Fprintf(out, "pool:        %s\n", snap.Address)
	fmt.Fprintf(out, "side:        %s\n", side)
	fmt.Fprintf(out, "amount in:   %s\n", helpers.ToUIAmount(quote.AmountIn, inDecimals))
	fmt.Fprintf(out, "amount out:  %s\n", helpers.ToUIAmount(quote.AmountOut, outDecimals))
	fmt.Fprintf(out, "fee:         %s\n", helpers.ToUIAmount(quote.Fee, snap.QuoteDecimals))
	if side == market.SideBuyExact {
		fmt.Fprintf(out, "maximum in:  %s\n", helpers.ToUIAmount(quote.MaximumAmountIn, inDecimals))
	} else {
		fmt.Fprintf(out, "minimum out: %s\n", helpers.ToUIAmount(quote.MinimumAmountOut, outDecimals))
	}
	if err := printPool(out, &snap.State, snap, "before"); err != nil {
		return err
	}
	if err := printPool(out, &quote.NextState, snap, "after"); err != nil {
		return err
	}

	if !opts.execute {
		return nil
	}

	m, err := market.New(market.Options{
		ProgramID: cfg.ProgramKey(),
		Fee:       schedule,
		Workers:   cfg.Workers,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	if err := m.Register(snap.Address, snap.State, snap.BaseSupply); err != nil {
		return err
	}
	limit := quote.MinimumAmountOut
	if side == market.SideBuyExact {
		limit = quote.MaximumAmountIn
	}
	if _, err := m.Place(ctx, market.Order{Pool: snap.Address, Side: side, Amount: raw, Limit: limit}); err != nil {
		return err
	}
	state, _, err := m.Snapshot(snap.Address)
	if err != nil {
		return err
	}
	encoded, err := state.Encode()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "state:       %s\n", state.String())
	fmt.Fprintf(out, "account:     %d bytes\n", len(encoded))
	return nil
}

func loadSnapshot(ctx context.Context, cfg *config.Config, opts options) (*market.Snapshot, error) {
	if opts.rpcURL != "" {
		address, err := solanago.PublicKeyFromBase58(opts.address)
		if err != nil {
			return nil, fmt.Errorf("-address: %w", err)
		}
		return solana.GetSnapshot(ctx, rpc.New(opts.rpcURL), address, opts.supply)
	}
	if opts.poolPath == "" {
		return nil, fmt.Errorf("one of -pool or -rpc is required")
	}
	data, err := os.ReadFile(opts.poolPath)
	if err != nil {
		return nil, err
	}
	snap, err := market.LoadSnapshot(data, cfg.ProgramKey())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.poolPath, err)
	}
	return snap, nil
}

func printPool(out io.Writer, pool *curve.PoolState, snap *market.Snapshot, label string) error {
	price, err := helpers.SpotPrice(pool, snap.BaseDecimals, snap.QuoteDecimals)
	if err != nil {
		return err
	}
	marketCap, err := helpers.MarketCap(pool, snap.BaseSupply, snap.BaseDecimals, snap.QuoteDecimals)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-6s price %s, market cap %s, progress %s%%, remaining quote %s, complete %t\n",
		label, price.StringFixed(12), marketCap.StringFixed(4), helpers.Progress(pool),
		helpers.ToUIAmount(pool.RemainingQuote(), snap.QuoteDecimals), pool.Complete)
	return nil
}
