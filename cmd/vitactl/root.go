package main

import (
	"fmt"
	"os"

	"vitaverse/internal/config"
	"vitaverse/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFile    string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:          "vitactl",
	Short:        "vitactl inspects VitaVerse scores, badges and the leaderboard",
	Long:         "vitactl is an operator CLI for the VitaVerse backend: compute health scores and badge progress offline, rank the live leaderboard, run migrations and backfill contract events.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to the .env file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
}

// loadConfig reads configuration and routes logs to stderr so command output
// stays clean.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	logrus.SetOutput(os.Stderr)
	return cfg, nil
}
