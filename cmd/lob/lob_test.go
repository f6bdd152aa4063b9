package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muhammadchandra19/limit-orderbook/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{Level: "error", OutputPaths: []string{"stderr"}},
		Seed: config.SeedConfig{
			Levels:      5,
			BestBid:     decimal.NewFromInt(100),
			BestAsk:     decimal.NewFromInt(105),
			Tick:        decimal.NewFromInt(1),
			BidSizeMean: 100,
			BidSizeSD:   25,
			AskSizeMean: 100,
			AskSizeSD:   20,
			RandomSeed:  7,
		},
		Engine: config.EngineConfig{QueueSize: 8, ReadBackoff: time.Millisecond},
		View:   config.ViewConfig{VAMPDepth: 2, PriceBand: decimal.RequireFromString("0.10")},
	}
}

func TestRun(t *testing.T) {
	input := strings.Join([]string{
		"# opening orders",
		"bid limit 103 5",
		"ask market 3",
		"bid limit 500 1",
		"sell banana",
	}, "\n")

	var out bytes.Buffer
	err := run(context.Background(), testConfig(), &rootFlags{format: "text", noColor: true}, "", strings.NewReader(input), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "#1 bid limit 103 x5: executed 0 for 0, rested 5")
	assert.Contains(t, text, "#2 ask market x3: executed 3 for 309 (avg 103)")
	assert.Contains(t, text, "#3 rejected")
	assert.Contains(t, text, "#4 rejected")
	assert.Contains(t, text, "vamp(2)")
}

func TestRun_UnknownFormat(t *testing.T) {
	err := run(context.Background(), testConfig(), &rootFlags{format: "xml"}, "", strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown format")
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	require.NoError(t, os.WriteFile(path, []byte("ask market 2\n"), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), testConfig(), &rootFlags{format: "text", noColor: true}, path, strings.NewReader("bid market 9\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "#1 ask market x2")
	assert.NotContains(t, out.String(), "bid market x9")
}

func TestRun_FileNotOpenedWhenSetupFails(t *testing.T) {
	cfg := testConfig()
	cfg.Seed.Levels = 0

	err := run(context.Background(), cfg, &rootFlags{format: "text"}, filepath.Join(t.TempDir(), "missing.txt"), strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
}

func TestRun_MissingFile(t *testing.T) {
	err := run(context.Background(), testConfig(), &rootFlags{format: "text"}, filepath.Join(t.TempDir(), "missing.txt"), strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShowCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"show", "--levels", "3", "--no-color", "--vamp-depth", "3"})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "best bid 100 | mid 102.5 | vamp(3)")
	assert.Contains(t, text, "best ask 105 | spread 5 | depth 9")
}

func TestShowCommand_InvalidSeed(t *testing.T) {
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"show", "--levels", "0"})

	assert.Error(t, cmd.Execute())
}
