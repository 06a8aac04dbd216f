package main

import (
	"fmt"

	"vitaverse/internal/wellness"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scoreInput struct {
	sleep    float64
	water    uint64
	exercise uint64
	streak   uint64
}

var scoreCmd = &cobra.Command{
	Use:     "score",
	Short:   "Compute the health score for a set of daily values",
	Example: "  vitactl score --sleep 7.5 --water 2000 --exercise 30 --streak 3",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scoreInput.sleep < 0 || scoreInput.sleep > 24 {
			return fmt.Errorf("--sleep must be between 0 and 24")
		}
		sleepTenths := wellness.ToTenths(scoreInput.sleep)
		score := wellness.HealthScore(sleepTenths, scoreInput.water, scoreInput.exercise, scoreInput.streak)

		if jsonOutput {
			return printJSON(cmd, map[string]interface{}{
				"sleep_hours":      wellness.FromTenths(sleepTenths),
				"water_intake":     scoreInput.water,
				"exercise_minutes": scoreInput.exercise,
				"streak_days":      scoreInput.streak,
				"health_score":     score,
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sleep     %s h\n", wellness.FormatTenths(sleepTenths))
		fmt.Fprintf(out, "Water     %d ml\n", scoreInput.water)
		fmt.Fprintf(out, "Exercise  %d min\n", scoreInput.exercise)
		fmt.Fprintf(out, "Streak    %d days\n", scoreInput.streak)
		color.New(color.FgGreen, color.Bold).Fprintf(out, "Score     %.1f\n", score)
		return nil
	},
}

func init() {
	scoreCmd.Flags().Float64Var(&scoreInput.sleep, "sleep", 0, "Sleep in hours")
	scoreCmd.Flags().Uint64Var(&scoreInput.water, "water", 0, "Water intake in ml")
	scoreCmd.Flags().Uint64Var(&scoreInput.exercise, "exercise", 0, "Exercise in minutes")
	scoreCmd.Flags().Uint64Var(&scoreInput.streak, "streak", 0, "Streak in days")

	rootCmd.AddCommand(scoreCmd)
}
