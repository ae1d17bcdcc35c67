package recap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/okarhu/gymrecap/internal/sqlite"
)

// Service exposes the recap engine over the persisted workout and lift logs.
//
// Each calculation is a pure function of the data read for that call; the
// service holds no mutable state between invocations and is safe for
// concurrent use.
type Service struct {
	repo   *repository
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock used for period labels and the
// current-streak anchor. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a recap service backed by db.
func NewService(db *sqlite.Database, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   newRepository(db, logger),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateRecapStats assembles the recap for the period containing refDate.
func (s *Service) CalculateRecapStats(ctx context.Context, period Period, refDate time.Time) (Stats, error) {
	if !period.Valid() {
		return Stats{}, fmt.Errorf("invalid period %q", period)
	}

	start := time.Now()
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load snapshot: %w", err)
	}

	stats := computeStats(snap, period, refDate, s.now())

	s.logger.LogAttrs(ctx, slog.LevelDebug, "calculated recap",
		slog.String("period", string(period)),
		slog.String("label", stats.Label),
		slog.Int("workouts", stats.TotalWorkouts),
		slog.Duration("duration", time.Since(start)))

	return stats, nil
}

// loadSnapshot reads everything a recap calculation needs in one place.
func (s *Service) loadSnapshot(ctx context.Context) (Snapshot, error) {
	history, err := s.repo.workouts.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list workouts: %w", err)
	}
	primary, err := s.repo.lifts.List(ctx, PoolPrimary)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list primary lifts: %w", err)
	}
	secondary, err := s.repo.lifts.List(ctx, PoolSecondary)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list secondary lifts: %w", err)
	}
	custom, err := s.repo.exercises.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list custom exercises: %w", err)
	}
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get profile: %w", err)
	}

	return Snapshot{
		History:         history,
		PrimaryLifts:    primary,
		SecondaryLifts:  secondary,
		CustomExercises: custom,
		PreferredUnit:   profile.PreferredUnit,
	}, nil
}

// PreviousPeriod returns the reference date shifted one period back.
func (s *Service) PreviousPeriod(period Period, date time.Time) time.Time {
	return period.Previous(date)
}

// NextPeriod returns the reference date shifted one period forward.
func (s *Service) NextPeriod(period Period, date time.Time) time.Time {
	return period.Next(date)
}

// CanGoNext reports whether a later, already-elapsed period exists.
func (s *Service) CanGoNext(period Period, date time.Time) bool {
	return period.CanGoNext(date, s.now())
}

// RecordWorkout stores a workout log entry, filling in the identifier and
// creation time when absent.
func (s *Service) RecordWorkout(ctx context.Context, workout WorkoutLogEntry) (WorkoutLogEntry, error) {
	if workout.ID == "" {
		workout.ID = newID()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = s.now()
	}
	if err := s.repo.workouts.Create(ctx, workout); err != nil {
		return WorkoutLogEntry{}, fmt.Errorf("create workout: %w", err)
	}
	return workout, nil
}

// RecordLift stores a lift record in the given pool, filling in the
// identifier and recording time when absent.
func (s *Service) RecordLift(ctx context.Context, pool LiftPool, record LiftRecord) (LiftRecord, error) {
	if record.ID == "" {
		record.ID = newID()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = s.now()
	}
	if err := s.repo.lifts.Create(ctx, pool, record); err != nil {
		return LiftRecord{}, fmt.Errorf("create lift record: %w", err)
	}
	return record, nil
}

// CreateCustomExercise stores a user-defined exercise.
func (s *Service) CreateCustomExercise(ctx context.Context, exercise CustomExercise) error {
	if err := s.repo.exercises.Create(ctx, exercise); err != nil {
		return fmt.Errorf("create custom exercise: %w", err)
	}
	return nil
}

// Profile retrieves the user profile.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SetPreferredUnit updates the unit every recap figure is expressed in.
func (s *Service) SetPreferredUnit(ctx context.Context, unit WeightUnit) error {
	if !unit.Valid() {
		return fmt.Errorf("invalid weight unit %q", unit)
	}
	if err := s.repo.profile.SetPreferredUnit(ctx, unit); err != nil {
		return fmt.Errorf("set preferred unit: %w", err)
	}
	return nil
}
