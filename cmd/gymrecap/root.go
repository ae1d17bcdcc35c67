package main

import (
	"github.com/spf13/cobra"
)

var dbFlag string

func newRootCmd(app *application) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gymrecap",
		Short:         "Workout recap analytics from your training log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "path to the SQLite database (overrides env and config file)")

	rootCmd.AddCommand(newRecapCmd(app))
	rootCmd.AddCommand(newLogCmd(app))
	rootCmd.AddCommand(newExerciseCmd(app))
	rootCmd.AddCommand(newUnitCmd(app))

	return rootCmd
}
