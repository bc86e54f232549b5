package main

import (
	"errors"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print per-course completion for one learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return errors.New("--user is required")
		}

		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.progress.LearnerProgress(cmd.Context(), userID)
		if err != nil {
			return err
		}

		type row struct {
			CourseID        string `json:"course_id"`
			CompletedCount  int    `json:"completed_count"`
			TotalCount      int    `json:"total_count"`
			ProgressPercent int    `json:"progress_percent"`
			Complete        bool   `json:"complete"`
		}
		rows := make([]row, 0, len(report))
		for id, p := range report {
			rows = append(rows, row{id, p.CompletedCount, p.TotalCount, p.ProgressPercent, p.Complete()})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].CourseID < rows[j].CourseID })
		return printJSON(cmd.OutOrStdout(), rows)
	},
}

var popularityCmd = &cobra.Command{
	Use:   "popularity",
	Short: "Print published courses ranked by enrolled learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()

		ranked, err := a.progress.Popularity(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), ranked)
	},
}

var engagementCmd = &cobra.Command{
	Use:   "engagement",
	Short: "Print the engagement series for a time range",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("range")

		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()

		series, err := a.engagement.Series(cmd.Context(), token, time.Now())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), series)
	},
}

func init() {
	progressCmd.Flags().String("user", "", "Learner id")
	popularityCmd.Flags().Int("limit", 0, "Maximum number of courses (0 for all)")
	engagementCmd.Flags().String("range", "7d", "Time range: 24h, 7d, 30d or 90d")
}
