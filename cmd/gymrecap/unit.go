package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okarhu/gymrecap/internal/errors"
	"github.com/okarhu/gymrecap/internal/recap"
)

func newUnitCmd(app *application) *cobra.Command {
	unitCmd := &cobra.Command{
		Use:   "unit [kg|lbs]",
		Short: "Show or set the preferred weight unit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnit(cmd, app, args)
		},
	}
	return unitCmd
}

func runUnit(cmd *cobra.Command, app *application, args []string) error {
	ctx := cmd.Context()

	if err := app.open(ctx, dbFlag); err != nil {
		return err
	}
	defer app.close(ctx)

	if len(args) == 0 {
		profile, err := app.service.Profile(ctx)
		if err != nil {
			return errors.Wrap(err, "get profile")
		}
		fmt.Fprintf(app.out, "%s\n", profile.PreferredUnit)
		return nil
	}

	unit := recap.WeightUnit(args[0])
	if err := app.service.SetPreferredUnit(ctx, unit); err != nil {
		return errors.Wrap(err, "set preferred unit")
	}
	fmt.Fprintf(app.out, "Preferred unit set to %s\n", unit)
	return nil
}
