package main

import (
	"fmt"

	"vitaverse/internal/wellness"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var progressInput struct {
	badgeType string
	streak    uint64
	exercise  uint64
	water     uint64
}

var progressCmd = &cobra.Command{
	Use:     "progress",
	Short:   "Show badge progress for a user's stats",
	Example: "  vitactl progress --streak 5 --exercise 400 --water 2600\n  vitactl progress --type HydrationHero --streak 7 --water 2600",
	RunE: func(cmd *cobra.Command, args []string) error {
		types := []string{wellness.BadgeEarlyBird, wellness.BadgeWorkoutWarrior, wellness.BadgeHydrationHero}
		if progressInput.badgeType != "" {
			types = []string{progressInput.badgeType}
		}
		in := wellness.ProgressInput{
			StreakDays:    progressInput.streak,
			TotalExercise: progressInput.exercise,
			WaterIntake:   progressInput.water,
		}

		results := make(map[string]float64, len(types))
		for _, t := range types {
			p, ok := wellness.BadgeProgress(t, in)
			if !ok {
				return fmt.Errorf("unknown badge type %q", t)
			}
			results[t] = p
		}

		if jsonOutput {
			return printJSON(cmd, results)
		}
		for _, t := range types {
			printProgress(cmd, t, results[t])
		}
		return nil
	},
}

func printProgress(cmd *cobra.Command, badgeType string, pct float64) {
	c := color.New(color.FgYellow)
	if pct >= 100 {
		c = color.New(color.FgGreen, color.Bold)
	}
	c.Fprintf(cmd.OutOrStdout(), "%-16s %s %5.1f%%\n", badgeType, bar(pct, 20), pct)
}

func init() {
	progressCmd.Flags().StringVar(&progressInput.badgeType, "type", "", "Badge type (EarlyBird, WorkoutWarrior, HydrationHero); all when empty")
	progressCmd.Flags().Uint64Var(&progressInput.streak, "streak", 0, "Streak in days")
	progressCmd.Flags().Uint64Var(&progressInput.exercise, "exercise", 0, "Total exercise in minutes")
	progressCmd.Flags().Uint64Var(&progressInput.water, "water", 0, "Latest water intake in ml")

	rootCmd.AddCommand(progressCmd)
}
