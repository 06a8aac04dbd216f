package main

import (
	"fmt"
	"text/tabwriter"

	"vitaverse/internal/services"
	"vitaverse/internal/wellness"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var leaderboardInput struct {
	filter    string
	timeframe string
	account   string
	source    string
}

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Short:   "Rank users straight from the contract",
	Example: "  vitactl leaderboard --filter exercise --timeframe weekly",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := dialReadOnly(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		source := cfg.LeaderboardSource
		if leaderboardInput.source != "" {
			source = leaderboardInput.source
		}
		svc := services.NewLeaderboardService(client, nil, services.LeaderboardOptions{
			Source:      source,
			TopLimit:    cfg.TopUsersLimit,
			TTL:         cfg.SnapshotTTL,
			Concurrency: cfg.FetchConcurrency,
		})
		resp, err := svc.Leaderboard(cmd.Context(), services.LeaderboardQuery{
			Filter:    leaderboardInput.filter,
			Timeframe: leaderboardInput.timeframe,
			Account:   leaderboardInput.account,
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, resp)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s / %s, %d users, source %s\n", resp.Filter, resp.Timeframe, resp.TotalUsers, resp.Source)
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tADDRESS\tSCORE\tSTREAK\tEXERCISE\tWATER\tSLEEP\tBADGES")
		for _, e := range resp.Entries {
			rank := fmt.Sprint(e.Rank)
			if e.IsCurrentUser {
				rank = "*" + rank
			}
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t%d\t%d\t%d\t%s\t%d\n",
				rank, e.Address, e.HealthScore, e.StreakDays, e.ExerciseMinutes,
				e.WaterIntake, wellness.FormatTenths(e.SleepHours), e.BadgeCount)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if resp.YourRank != nil {
			color.New(color.FgCyan, color.Bold).Fprintf(out, "Your rank: %d\n", *resp.YourRank)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().StringVar(&leaderboardInput.filter, "filter", "", "Ranking metric (all, exercise, streak, badges)")
	leaderboardCmd.Flags().StringVar(&leaderboardInput.timeframe, "timeframe", "", "Timeframe (allTime, monthly, weekly)")
	leaderboardCmd.Flags().StringVar(&leaderboardInput.account, "account", "", "Address to highlight")
	leaderboardCmd.Flags().StringVar(&leaderboardInput.source, "source", "", "Snapshot source (active or top); defaults to LEADERBOARD_SOURCE")

	rootCmd.AddCommand(leaderboardCmd)
}
