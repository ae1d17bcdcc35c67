package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okarhu/gymrecap/internal/errors"
	"github.com/okarhu/gymrecap/internal/recap"
)

var (
	recapPeriod string
	recapDate   string
	recapPrev   int
)

func newRecapCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Show the recap for a week, month, or year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecap(cmd, app)
		},
	}

	cmd.Flags().StringVar(&recapPeriod, "period", "week", "recap window: week, month, or year")
	cmd.Flags().StringVar(&recapDate, "date", "", "any date inside the wanted period, YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&recapPrev, "prev", 0, "shift the period back N steps")

	return cmd
}

func runRecap(cmd *cobra.Command, app *application) error {
	ctx := cmd.Context()

	period := recap.Period(recapPeriod)
	if !period.Valid() {
		return fmt.Errorf("invalid period %q: want week, month, or year", recapPeriod)
	}

	refDate := time.Now()
	if recapDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", recapDate, time.Local)
		if err != nil {
			return errors.Wrap(err, "parse date")
		}
		refDate = parsed
	}
	for range recapPrev {
		refDate = period.Previous(refDate)
	}

	if err := app.open(ctx, dbFlag); err != nil {
		return err
	}
	defer app.close(ctx)

	stats, err := app.service.CalculateRecapStats(ctx, period, refDate)
	if err != nil {
		return errors.Wrap(err, "calculate recap")
	}

	renderStats(app.out, stats, app.service.CanGoNext(period, refDate))
	return nil
}
