package recap

import (
	"context"
	"errors"
	"fmt"
)

// sqliteCustomExerciseRepository persists user-defined exercises.
type sqliteCustomExerciseRepository struct {
	baseRepository
}

// List returns all custom exercises with their primary muscles.
func (r *sqliteCustomExerciseRepository) List(ctx context.Context) (_ []CustomExercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name
		FROM custom_exercises
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query custom exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exercises []CustomExercise
	for rows.Next() {
		var exercise CustomExercise
		if err = rows.Scan(&exercise.ID, &exercise.Name); err != nil {
			return nil, fmt.Errorf("scan custom exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range exercises {
		if exercises[i].PrimaryMuscles, err = r.fetchMuscles(ctx, exercises[i].ID); err != nil {
			return nil, fmt.Errorf("fetch muscles for exercise %s: %w", exercises[i].ID, err)
		}
	}

	return exercises, nil
}

func (r *sqliteCustomExerciseRepository) fetchMuscles(ctx context.Context, exerciseID string) (_ []string, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT muscle
		FROM custom_exercise_muscles
		WHERE exercise_id = ?
		ORDER BY muscle`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("query muscles: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var muscles []string
	for rows.Next() {
		var muscle string
		if err = rows.Scan(&muscle); err != nil {
			return nil, fmt.Errorf("scan muscle: %w", err)
		}
		muscles = append(muscles, muscle)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return muscles, nil
}

// Create stores a custom exercise with its primary muscles.
func (r *sqliteCustomExerciseRepository) Create(ctx context.Context, exercise CustomExercise) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO custom_exercises (id, name)
		VALUES (?, ?)`,
		exercise.ID, exercise.Name); err != nil {
		return fmt.Errorf("insert custom exercise: %w", err)
	}
	for _, muscle := range exercise.PrimaryMuscles {
		if _, err := r.db.ReadWrite.ExecContext(ctx, `
			INSERT INTO custom_exercise_muscles (exercise_id, muscle)
			VALUES (?, ?)
			ON CONFLICT (exercise_id, muscle) DO NOTHING`,
			exercise.ID, muscle); err != nil {
			return fmt.Errorf("insert custom exercise muscle: %w", err)
		}
	}
	return nil
}
