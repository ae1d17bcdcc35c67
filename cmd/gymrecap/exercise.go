package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okarhu/gymrecap/internal/errors"
	"github.com/okarhu/gymrecap/internal/recap"
)

var (
	exerciseAddID      string
	exerciseAddName    string
	exerciseAddMuscles string
)

func newExerciseCmd(app *application) *cobra.Command {
	exerciseCmd := &cobra.Command{
		Use:   "exercise",
		Short: "Manage custom exercises",
	}
	exerciseCmd.AddCommand(newExerciseAddCmd(app))
	return exerciseCmd
}

func newExerciseAddCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Define a custom exercise overlaying the built-in catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExerciseAdd(cmd, app)
		},
	}

	cmd.Flags().StringVar(&exerciseAddID, "id", "", "exercise id, e.g. landmine-press")
	cmd.Flags().StringVar(&exerciseAddName, "name", "", "display name")
	cmd.Flags().StringVar(&exerciseAddMuscles, "muscles", "", "comma-separated primary muscle groups")

	return cmd
}

func runExerciseAdd(cmd *cobra.Command, app *application) error {
	ctx := cmd.Context()

	if exerciseAddID == "" || exerciseAddName == "" {
		return fmt.Errorf("--id and --name are required")
	}
	var muscles []string
	for _, muscle := range strings.Split(exerciseAddMuscles, ",") {
		if muscle = strings.TrimSpace(muscle); muscle != "" {
			muscles = append(muscles, muscle)
		}
	}

	if err := app.open(ctx, dbFlag); err != nil {
		return err
	}
	defer app.close(ctx)

	if err := app.service.CreateCustomExercise(ctx, recap.CustomExercise{
		ID:             exerciseAddID,
		Name:           exerciseAddName,
		PrimaryMuscles: muscles,
	}); err != nil {
		return errors.Wrap(err, "create custom exercise")
	}

	fmt.Fprintf(app.out, "Added %q (%s)\n", exerciseAddName, exerciseAddID)
	return nil
}
