package recap

import (
	"context"
	"errors"
	"fmt"
)

// sqliteLiftRepository persists lift records.
type sqliteLiftRepository struct {
	baseRepository
}

// List returns one pool's lift records ordered by recording time.
func (r *sqliteLiftRepository) List(ctx context.Context, pool LiftPool) (_ []LiftRecord, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, exercise_id, weight, reps, unit, recorded_at
		FROM lift_records
		WHERE pool = ?
		ORDER BY recorded_at`, string(pool))
	if err != nil {
		return nil, fmt.Errorf("query lift records: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var records []LiftRecord
	for rows.Next() {
		var (
			record        LiftRecord
			unit          *string
			recordedAtStr string
		)
		if err = rows.Scan(&record.ID, &record.ExerciseID, &record.Weight, &record.Reps, &unit, &recordedAtStr); err != nil {
			return nil, fmt.Errorf("scan lift record: %w", err)
		}
		record.Unit = scanUnit(unit)
		if record.RecordedAt, err = parseTimestamp(recordedAtStr); err != nil {
			return nil, fmt.Errorf("parse recorded_at: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}

// Create stores a lift record in the given pool.
func (r *sqliteLiftRepository) Create(ctx context.Context, pool LiftPool, record LiftRecord) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO lift_records (id, pool, exercise_id, weight, reps, unit, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, string(pool), record.ExerciseID, record.Weight, record.Reps,
		string(record.Unit), formatTimestamp(record.RecordedAt)); err != nil {
		return fmt.Errorf("insert lift record: %w", err)
	}
	return nil
}
