package recap

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// sqliteWorkoutRepository persists workout log entries.
type sqliteWorkoutRepository struct {
	baseRepository
}

// List returns the full workout history in chronological order, exercises
// and sets included.
func (r *sqliteWorkoutRepository) List(ctx context.Context) (_ []WorkoutLogEntry, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, title, created_at
		FROM workouts
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var workouts []WorkoutLogEntry
	for rows.Next() {
		var (
			workout      WorkoutLogEntry
			createdAtStr string
		)
		if err = rows.Scan(&workout.ID, &workout.Title, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		if workout.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		workouts = append(workouts, workout)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range workouts {
		if workouts[i].Exercises, err = r.loadExercises(ctx, workouts[i].ID); err != nil {
			return nil, fmt.Errorf("load exercises for workout %s: %w", workouts[i].ID, err)
		}
	}

	return workouts, nil
}

// loadExercises fetches a workout's exercises and their sets in logged order.
func (r *sqliteWorkoutRepository) loadExercises(ctx context.Context, workoutID string) (_ []ExerciseLog, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT we.position, we.exercise_id, ws.weight, ws.reps, ws.unit, ws.completed
		FROM workout_exercises we
		LEFT JOIN workout_sets ws
			ON ws.workout_id = we.workout_id AND ws.exercise_position = we.position
		WHERE we.workout_id = ?
		ORDER BY we.position, ws.set_number`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("query exercise sets: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var (
		exercises       []ExerciseLog
		currentPosition = -1
	)
	for rows.Next() {
		var (
			position   int
			exerciseID string
			weight     sql.NullFloat64
			reps       sql.NullInt64
			unit       *string
			completed  sql.NullBool
		)
		if err = rows.Scan(&position, &exerciseID, &weight, &reps, &unit, &completed); err != nil {
			return nil, fmt.Errorf("scan exercise set: %w", err)
		}

		if position != currentPosition {
			exercises = append(exercises, ExerciseLog{ExerciseID: exerciseID})
			currentPosition = position
		}

		// A LEFT JOIN row without set columns is an exercise with no sets.
		if !weight.Valid {
			continue
		}
		exercises[len(exercises)-1].Sets = append(exercises[len(exercises)-1].Sets, CompletedSet{
			Weight:    weight.Float64,
			Reps:      int(reps.Int64),
			Unit:      scanUnit(unit),
			Completed: completed.Bool,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return exercises, nil
}

// Create stores a workout with its exercises and sets in one transaction.
func (r *sqliteWorkoutRepository) Create(ctx context.Context, workout WorkoutLogEntry) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", rollbackErr))
		}
	}(tx)

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO workouts (id, title, created_at)
		VALUES (?, ?, ?)`,
		workout.ID, workout.Title, formatTimestamp(workout.CreatedAt)); err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}

	for position, exercise := range workout.Exercises {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO workout_exercises (workout_id, position, exercise_id)
			VALUES (?, ?, ?)`,
			workout.ID, position, exercise.ExerciseID); err != nil {
			return fmt.Errorf("insert workout exercise: %w", err)
		}
		for setNumber, set := range exercise.Sets {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO workout_sets (workout_id, exercise_position, set_number, weight, reps, unit, completed)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				workout.ID, position, setNumber+1, set.Weight, set.Reps, string(set.Unit), set.Completed); err != nil {
				return fmt.Errorf("insert workout set: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// newID generates a random identifier for new records.
func newID() string {
	return rand.Text()
}
