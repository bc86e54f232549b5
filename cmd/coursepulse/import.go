package main

import (
	"errors"

	"github.com/ganot/coursepulse/internal/snapshot"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a YAML snapshot of courses, progress and sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return errors.New("--file is required")
		}

		snap, err := snapshot.Load(path)
		if err != nil {
			return err
		}

		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()

		sum, err := snapshot.ImportDB(cmd.Context(), a.db, snap)
		if err != nil {
			return err
		}
		a.logger.Info("snapshot imported", "path", path, "courses", sum.Courses, "lessons", sum.Lessons, "sessions", sum.Sessions)
		return printJSON(cmd.OutOrStdout(), sum)
	},
}

func init() {
	importCmd.Flags().String("file", "", "Path to the snapshot YAML file")
}
