package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/okarhu/gymrecap/internal/errors"
	"github.com/okarhu/gymrecap/internal/recap"
)

var (
	logWorkoutTitle     string
	logWorkoutDate      string
	logWorkoutUnit      string
	logWorkoutExercises []string

	logLiftExercise string
	logLiftWeight   float64
	logLiftReps     int
	logLiftUnit     string
	logLiftPool     string
	logLiftDate     string
)

func newLogCmd(app *application) *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record workouts and lift records",
	}
	logCmd.AddCommand(newLogWorkoutCmd(app))
	logCmd.AddCommand(newLogLiftCmd(app))
	return logCmd
}

func newLogWorkoutCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Record a completed workout",
		Example: `  gymrecap log workout --title "Push Day" \
      --exercise "bench-press:135x10,145x8" \
      --exercise "overhead-press:95x8"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogWorkout(cmd, app)
		},
	}

	cmd.Flags().StringVar(&logWorkoutTitle, "title", "Workout", "workout title")
	cmd.Flags().StringVar(&logWorkoutDate, "date", "", "workout date, YYYY-MM-DD (default: now)")
	cmd.Flags().StringVar(&logWorkoutUnit, "unit", "lbs", "weight unit for the sets: kg or lbs")
	cmd.Flags().StringArrayVar(&logWorkoutExercises, "exercise", nil,
		`exercise with sets as "id:WEIGHTxREPS,WEIGHTxREPS" (repeatable)`)

	return cmd
}

func runLogWorkout(cmd *cobra.Command, app *application) error {
	ctx := cmd.Context()

	if len(logWorkoutExercises) == 0 {
		return fmt.Errorf("at least one --exercise is required")
	}
	unit := recap.WeightUnit(logWorkoutUnit)
	if !unit.Valid() {
		return fmt.Errorf("invalid unit %q: want kg or lbs", logWorkoutUnit)
	}

	var createdAt time.Time
	if logWorkoutDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", logWorkoutDate, time.Local)
		if err != nil {
			return errors.Wrap(err, "parse date")
		}
		createdAt = parsed
	}

	exercises := make([]recap.ExerciseLog, 0, len(logWorkoutExercises))
	for _, spec := range logWorkoutExercises {
		exercise, err := parseExerciseSpec(spec, unit)
		if err != nil {
			return errors.Wrap(err, "parse exercise")
		}
		exercises = append(exercises, exercise)
	}

	if err := app.open(ctx, dbFlag); err != nil {
		return err
	}
	defer app.close(ctx)

	workout, err := app.service.RecordWorkout(ctx, recap.WorkoutLogEntry{
		Title:     logWorkoutTitle,
		CreatedAt: createdAt,
		Exercises: exercises,
	})
	if err != nil {
		return errors.Wrap(err, "record workout")
	}

	fmt.Fprintf(app.out, "Logged %q with %d exercise(s) on %s\n",
		workout.Title, len(workout.Exercises), workout.CreatedAt.Format("Jan 2, 2006"))
	return nil
}

// parseExerciseSpec parses "bench-press:135x10,145x8" into an exercise log.
// Every set given on the command line counts as completed.
func parseExerciseSpec(spec string, unit recap.WeightUnit) (recap.ExerciseLog, error) {
	id, setsPart, found := strings.Cut(spec, ":")
	if !found || id == "" {
		return recap.ExerciseLog{}, fmt.Errorf("%q: want \"id:WEIGHTxREPS,...\"", spec)
	}

	exercise := recap.ExerciseLog{ExerciseID: id}
	for _, setSpec := range strings.Split(setsPart, ",") {
		weightPart, repsPart, ok := strings.Cut(setSpec, "x")
		if !ok {
			return recap.ExerciseLog{}, fmt.Errorf("set %q: want WEIGHTxREPS", setSpec)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightPart), 64)
		if err != nil {
			return recap.ExerciseLog{}, fmt.Errorf("set %q: bad weight: %w", setSpec, err)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(repsPart))
		if err != nil {
			return recap.ExerciseLog{}, fmt.Errorf("set %q: bad reps: %w", setSpec, err)
		}
		exercise.Sets = append(exercise.Sets, recap.CompletedSet{
			Weight:    weight,
			Reps:      reps,
			Unit:      unit,
			Completed: true,
		})
	}
	return exercise, nil
}

func newLogLiftCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lift",
		Short: "Record a lift for personal-record tracking",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogLift(cmd, app)
		},
	}

	cmd.Flags().StringVar(&logLiftExercise, "exercise", "", "exercise id, e.g. bench-press")
	cmd.Flags().Float64Var(&logLiftWeight, "weight", 0, "weight lifted")
	cmd.Flags().IntVar(&logLiftReps, "reps", 1, "repetitions")
	cmd.Flags().StringVar(&logLiftUnit, "unit", "lbs", "weight unit: kg or lbs")
	cmd.Flags().StringVar(&logLiftPool, "pool", string(recap.PoolPrimary), "lift log: primary or secondary")
	cmd.Flags().StringVar(&logLiftDate, "date", "", "lift date, YYYY-MM-DD (default: now)")

	return cmd
}

func runLogLift(cmd *cobra.Command, app *application) error {
	ctx := cmd.Context()

	if logLiftExercise == "" {
		return fmt.Errorf("--exercise is required")
	}
	if logLiftWeight <= 0 {
		return fmt.Errorf("--weight must be positive")
	}
	unit := recap.WeightUnit(logLiftUnit)
	if !unit.Valid() {
		return fmt.Errorf("invalid unit %q: want kg or lbs", logLiftUnit)
	}
	pool := recap.LiftPool(logLiftPool)
	if pool != recap.PoolPrimary && pool != recap.PoolSecondary {
		return fmt.Errorf("invalid pool %q: want primary or secondary", logLiftPool)
	}

	var recordedAt time.Time
	if logLiftDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", logLiftDate, time.Local)
		if err != nil {
			return errors.Wrap(err, "parse date")
		}
		recordedAt = parsed
	}

	if err := app.open(ctx, dbFlag); err != nil {
		return err
	}
	defer app.close(ctx)

	record, err := app.service.RecordLift(ctx, pool, recap.LiftRecord{
		ExerciseID: logLiftExercise,
		Weight:     logLiftWeight,
		Reps:       logLiftReps,
		Unit:       unit,
		RecordedAt: recordedAt,
	})
	if err != nil {
		return errors.Wrap(err, "record lift")
	}

	fmt.Fprintf(app.out, "Logged %s %.1f %s x%d on %s\n",
		record.ExerciseID, record.Weight, record.Unit, record.Reps,
		record.RecordedAt.Format("Jan 2, 2006"))
	return nil
}
