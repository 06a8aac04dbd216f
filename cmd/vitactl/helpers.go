package main

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"vitaverse/internal/chain"
	"vitaverse/internal/config"

	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// bar renders pct (0-100) as a fixed width progress bar.
func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// dialReadOnly connects to the contract without signing keys.
func dialReadOnly(ctx context.Context, cfg *config.Config) (*chain.EthereumClient, error) {
	wallet, err := chain.NewKeyedWallet(nil, cfg.ChainID)
	if err != nil {
		return nil, err
	}
	dialCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	return chain.Dial(dialCtx, chain.EthereumConfig{
		RPCURL:          cfg.RPCURL,
		ChainID:         cfg.ChainID,
		ContractAddress: cfg.ContractAddress,
		TokenAddress:    cfg.TokenAddress,
		CallTimeout:     cfg.CallTimeout,
	}, wallet)
}
