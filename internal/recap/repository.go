package recap

import (
	"log/slog"
	"time"

	"github.com/okarhu/gymrecap/internal/errors"
	"github.com/okarhu/gymrecap/internal/sqlite"
)

// Timestamps are stored as UTC strings so they sort lexicographically.
const timestampFormat = "2006-01-02T15:04:05.000Z"

// baseRepository carries the database handle shared by all repositories.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{db: db, logger: logger}
}

// repository groups the per-aggregate repositories behind one handle.
type repository struct {
	workouts  *sqliteWorkoutRepository
	lifts     *sqliteLiftRepository
	profile   *sqliteProfileRepository
	exercises *sqliteCustomExerciseRepository
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	base := newBaseRepository(db, logger)
	return &repository{
		workouts:  &sqliteWorkoutRepository{baseRepository: base},
		lifts:     &sqliteLiftRepository{baseRepository: base},
		profile:   &sqliteProfileRepository{baseRepository: base},
		exercises: &sqliteCustomExerciseRepository{baseRepository: base},
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

// parseTimestamp reads a stored UTC timestamp back into local time so that
// calendar-day bucketing matches the user's clock.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampFormat, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse timestamp", slog.String("value", s))
	}
	return t.Local(), nil
}

// scanUnit resolves a nullable unit column. Rows that predate unit tracking
// default to lbs here so the engine's input contract stays total.
func scanUnit(s *string) WeightUnit {
	if s == nil || *s == "" {
		return UnitLbs
	}
	return WeightUnit(*s)
}
