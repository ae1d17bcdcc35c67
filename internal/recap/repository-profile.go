package recap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// sqliteProfileRepository persists the single-row user profile.
type sqliteProfileRepository struct {
	baseRepository
}

// Get retrieves the profile. A missing row falls back to lbs, matching the
// fixture default.
func (r *sqliteProfileRepository) Get(ctx context.Context) (Profile, error) {
	var unit string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT preferred_unit FROM profile WHERE id = 1`).Scan(&unit)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{PreferredUnit: UnitLbs}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	return Profile{PreferredUnit: WeightUnit(unit)}, nil
}

// SetPreferredUnit updates the preferred weight unit.
func (r *sqliteProfileRepository) SetPreferredUnit(ctx context.Context, unit WeightUnit) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profile (id, preferred_unit)
		VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET preferred_unit = excluded.preferred_unit`,
		string(unit)); err != nil {
		return fmt.Errorf("save preferred unit: %w", err)
	}
	return nil
}
