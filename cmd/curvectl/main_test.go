package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/krazyTry/pumpcurve-go/config"
)

const testSnapshot = `{
	"address": "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P",
	"base_supply": 1000000,
	"pool": {
		"base_mint": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"virt_base_reserves": 1000000,
		"real_base_reserves": 1000000,
		"virt_quote_reserves": 3000,
		"real_quote_reserves": 0,
		"real_quote_threshold": 1000000
	}
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pool.json")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0o600))
	return path
}

func TestRunBuyQuote(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	var out bytes.Buffer
	err = run(context.Background(), zap.NewNop(), cfg, options{poolPath: writeSnapshot(t), side: "buy", amount: "1000"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "amount out:  496240\n")
	assert.Contains(t, out.String(), "fee:         10\n")
	assert.Contains(t, out.String(), "minimum out: 491277\n")
	assert.Contains(t, out.String(), "remaining quote 1000000, complete false\n")
	assert.Contains(t, out.String(), "remaining quote 999010, complete false\n")
	assert.NotContains(t, out.String(), "account:")
}

func TestRunExecute(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	var out bytes.Buffer
	err = run(context.Background(), zap.NewNop(), cfg, options{poolPath: writeSnapshot(t), side: "buy-exact", amount: "496240", execute: true}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "amount in:   998\n")
	assert.Contains(t, out.String(), "account:     145 bytes\n")
}

func TestRunErrors(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	path := writeSnapshot(t)

	tests := []struct {
		name string
		opts options
	}{
		{name: "no source", opts: options{side: "buy", amount: "1"}},
		{name: "no amount", opts: options{poolPath: path, side: "buy"}},
		{name: "bad rpc address", opts: options{rpcURL: "http://127.0.0.1:1", address: "nope", side: "buy", amount: "1"}},
		{name: "unknown side", opts: options{poolPath: path, side: "swap", amount: "1"}},
		{name: "negative amount", opts: options{poolPath: path, side: "buy", amount: "-1"}},
		{name: "nothing bought yet", opts: options{poolPath: path, side: "sell", amount: "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(context.Background(), zap.NewNop(), cfg, tt.opts, &out))
		})
	}
}
