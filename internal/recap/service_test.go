package recap_test

import (
	"testing"
	"time"

	"github.com/okarhu/gymrecap/internal/recap"
	"github.com/okarhu/gymrecap/internal/sqlite"
	"github.com/okarhu/gymrecap/internal/testhelpers"
)

func newTestService(t *testing.T, clock func() time.Time) *recap.Service {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	return recap.NewService(db, logger, recap.WithClock(clock))
}

func TestServiceCalculateRecapStats(t *testing.T) {
	t.Parallel()

	// Wednesday, June 18th 2025.
	fixedNow := time.Date(2025, time.June, 18, 10, 30, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return fixedNow })
	ctx := t.Context()

	monday := time.Date(2025, time.June, 16, 12, 0, 0, 0, time.UTC)
	workouts := []recap.WorkoutLogEntry{
		{
			Title:     "Push Day",
			CreatedAt: monday,
			Exercises: []recap.ExerciseLog{
				{ExerciseID: "bench-press", Sets: []recap.CompletedSet{
					{Weight: 135, Reps: 10, Unit: recap.UnitLbs, Completed: true},
					{Weight: 145, Reps: 8, Unit: recap.UnitLbs, Completed: true},
					{Weight: 155, Reps: 5, Unit: recap.UnitLbs, Completed: false},
				}},
				{ExerciseID: "overhead-press", Sets: []recap.CompletedSet{
					{Weight: 95, Reps: 8, Unit: recap.UnitLbs, Completed: true},
				}},
			},
		},
		{
			Title:     "Leg Day",
			CreatedAt: monday.AddDate(0, 0, 1),
			Exercises: []recap.ExerciseLog{
				{ExerciseID: "barbell-squat", Sets: []recap.CompletedSet{
					{Weight: 225, Reps: 5, Unit: recap.UnitLbs, Completed: true},
				}},
			},
		},
	}
	for _, workout := range workouts {
		if _, err := svc.RecordWorkout(ctx, workout); err != nil {
			t.Fatalf("record workout: %v", err)
		}
	}

	lifts := []struct {
		pool   recap.LiftPool
		record recap.LiftRecord
	}{
		{recap.PoolPrimary, recap.LiftRecord{ExerciseID: "bench-press", Weight: 135, Reps: 1, Unit: recap.UnitLbs, RecordedAt: monday}},
		{recap.PoolPrimary, recap.LiftRecord{ExerciseID: "bench-press", Weight: 145, Reps: 1, Unit: recap.UnitLbs, RecordedAt: monday.AddDate(0, 0, 1)}},
		{recap.PoolSecondary, recap.LiftRecord{ExerciseID: "barbell-squat", Weight: 225, Reps: 1, Unit: recap.UnitLbs, RecordedAt: monday.AddDate(0, 0, 1)}},
	}
	for _, lift := range lifts {
		if _, err := svc.RecordLift(ctx, lift.pool, lift.record); err != nil {
			t.Fatalf("record lift: %v", err)
		}
	}

	stats, err := svc.CalculateRecapStats(ctx, recap.PeriodWeek, fixedNow)
	if err != nil {
		t.Fatalf("calculate recap: %v", err)
	}

	if stats.Label != "This Week" {
		t.Errorf("Label = %q, want This Week", stats.Label)
	}
	if stats.TotalWorkouts != 2 {
		t.Errorf("TotalWorkouts = %d, want 2", stats.TotalWorkouts)
	}
	if stats.TotalSets != 4 {
		t.Errorf("TotalSets = %d, want 4 (incomplete set excluded)", stats.TotalSets)
	}
	wantVolume := 135.0*10 + 145.0*8 + 95.0*8 + 225.0*5
	if stats.TotalVolume != wantVolume {
		t.Errorf("TotalVolume = %v, want %v", stats.TotalVolume, wantVolume)
	}
	if stats.PRsAchieved != 1 {
		t.Errorf("PRsAchieved = %d, want 1", stats.PRsAchieved)
	}
	if stats.TopPR == nil || stats.TopPR.Name != "Bench Press" {
		t.Errorf("TopPR = %+v, want Bench Press", stats.TopPR)
	}
	if stats.Unit != recap.UnitLbs {
		t.Errorf("Unit = %q, want default lbs", stats.Unit)
	}
	if stats.DaysActive != 2 {
		t.Errorf("DaysActive = %d, want 2", stats.DaysActive)
	}
	if stats.BestDay == nil || stats.BestDay.DayName != "Monday" {
		t.Errorf("BestDay = %+v, want Monday", stats.BestDay)
	}
}

func TestServiceRejectsInvalidPeriod(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, time.Now)
	if _, err := svc.CalculateRecapStats(t.Context(), recap.Period("fortnight"), time.Now()); err == nil {
		t.Error("expected error for invalid period")
	}
}

func TestServiceLegacySetWithoutUnitDefaultsToLbs(t *testing.T) {
	t.Parallel()

	fixedNow := time.Date(2025, time.June, 18, 10, 30, 0, 0, time.UTC)
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	ctx := t.Context()

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	// Rows written before units were tracked have a NULL unit column.
	if _, err = db.ReadWrite.ExecContext(ctx,
		"INSERT INTO workouts (id, title, created_at) VALUES (?, ?, ?)",
		"legacy", "Legacy Workout", "2025-06-16T12:00:00.000Z"); err != nil {
		t.Fatalf("insert workout: %v", err)
	}
	if _, err = db.ReadWrite.ExecContext(ctx,
		"INSERT INTO workout_exercises (workout_id, position, exercise_id) VALUES (?, ?, ?)",
		"legacy", 0, "bench-press"); err != nil {
		t.Fatalf("insert exercise: %v", err)
	}
	if _, err = db.ReadWrite.ExecContext(ctx,
		"INSERT INTO workout_sets (workout_id, exercise_position, set_number, weight, reps, unit, completed) VALUES (?, ?, ?, ?, ?, NULL, ?)",
		"legacy", 0, 1, 135.0, 10, true); err != nil {
		t.Fatalf("insert set: %v", err)
	}

	svc := recap.NewService(db, logger, recap.WithClock(func() time.Time { return fixedNow }))

	stats, err := svc.CalculateRecapStats(ctx, recap.PeriodWeek, fixedNow)
	if err != nil {
		t.Fatalf("calculate recap: %v", err)
	}
	// 135 lbs x 10 reps with the default lbs profile: no conversion applied.
	if stats.TotalVolume != 1350 {
		t.Errorf("TotalVolume = %v, want 1350 with NULL unit read as lbs", stats.TotalVolume)
	}
}

func TestServicePreferredUnitFlowsThroughStats(t *testing.T) {
	t.Parallel()

	fixedNow := time.Date(2025, time.June, 18, 10, 30, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return fixedNow })
	ctx := t.Context()

	if err := svc.SetPreferredUnit(ctx, recap.UnitKg); err != nil {
		t.Fatalf("set preferred unit: %v", err)
	}
	profile, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.PreferredUnit != recap.UnitKg {
		t.Errorf("PreferredUnit = %q, want kg", profile.PreferredUnit)
	}

	if _, err = svc.RecordWorkout(ctx, recap.WorkoutLogEntry{
		Title:     "Morning",
		CreatedAt: fixedNow,
		Exercises: []recap.ExerciseLog{
			{ExerciseID: "deadlift", Sets: []recap.CompletedSet{
				{Weight: 100, Reps: 5, Unit: recap.UnitKg, Completed: true},
			}},
		},
	}); err != nil {
		t.Fatalf("record workout: %v", err)
	}

	stats, err := svc.CalculateRecapStats(ctx, recap.PeriodWeek, fixedNow)
	if err != nil {
		t.Fatalf("calculate recap: %v", err)
	}
	if stats.Unit != recap.UnitKg {
		t.Errorf("Unit = %q, want kg", stats.Unit)
	}
	if stats.TotalVolume != 500 {
		t.Errorf("TotalVolume = %v, want 500 kg", stats.TotalVolume)
	}
}

func TestServiceRejectsInvalidUnit(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, time.Now)
	if err := svc.SetPreferredUnit(t.Context(), recap.WeightUnit("stone")); err == nil {
		t.Error("expected error for invalid unit")
	}
}

func TestServiceCustomExerciseRoundTrip(t *testing.T) {
	t.Parallel()

	fixedNow := time.Date(2025, time.June, 18, 10, 30, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return fixedNow })
	ctx := t.Context()

	if err := svc.CreateCustomExercise(ctx, recap.CustomExercise{
		ID:             "landmine-press",
		Name:           "Landmine Press",
		PrimaryMuscles: []string{"Shoulders", "Chest"},
	}); err != nil {
		t.Fatalf("create custom exercise: %v", err)
	}

	if _, err := svc.RecordWorkout(ctx, recap.WorkoutLogEntry{
		Title:     "Accessories",
		CreatedAt: fixedNow,
		Exercises: []recap.ExerciseLog{
			{ExerciseID: "landmine-press", Sets: []recap.CompletedSet{
				{Weight: 70, Reps: 10, Unit: recap.UnitLbs, Completed: true},
			}},
		},
	}); err != nil {
		t.Fatalf("record workout: %v", err)
	}

	stats, err := svc.CalculateRecapStats(ctx, recap.PeriodWeek, fixedNow)
	if err != nil {
		t.Fatalf("calculate recap: %v", err)
	}
	if len(stats.TopExercises) != 1 || stats.TopExercises[0].Name != "Landmine Press" {
		t.Errorf("TopExercises = %+v, want the custom display name", stats.TopExercises)
	}
	if len(stats.MuscleGroupDistribution) != 2 {
		t.Errorf("MuscleGroupDistribution = %+v, want two muscles", stats.MuscleGroupDistribution)
	}
}

func TestServiceFillsIdentifiersAndTimestamps(t *testing.T) {
	t.Parallel()

	fixedNow := time.Date(2025, time.June, 18, 10, 30, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return fixedNow })
	ctx := t.Context()

	workout, err := svc.RecordWorkout(ctx, recap.WorkoutLogEntry{Title: "Quick Session"})
	if err != nil {
		t.Fatalf("record workout: %v", err)
	}
	if workout.ID == "" {
		t.Error("workout ID not filled in")
	}
	if !workout.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want clock time %v", workout.CreatedAt, fixedNow)
	}

	record, err := svc.RecordLift(ctx, recap.PoolPrimary, recap.LiftRecord{
		ExerciseID: "deadlift", Weight: 315, Reps: 1, Unit: recap.UnitLbs,
	})
	if err != nil {
		t.Fatalf("record lift: %v", err)
	}
	if record.ID == "" {
		t.Error("lift ID not filled in")
	}
	if !record.RecordedAt.Equal(fixedNow) {
		t.Errorf("RecordedAt = %v, want clock time %v", record.RecordedAt, fixedNow)
	}
}

func TestServicePeriodNavigation(t *testing.T) {
	t.Parallel()

	fixedNow := time.Date(2025, time.June, 18, 10, 30, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return fixedNow })

	previous := svc.PreviousPeriod(recap.PeriodWeek, fixedNow)
	if want := fixedNow.AddDate(0, 0, -7); !previous.Equal(want) {
		t.Errorf("PreviousPeriod = %v, want %v", previous, want)
	}
	if svc.CanGoNext(recap.PeriodWeek, fixedNow) {
		t.Error("CanGoNext = true for the current week, want false")
	}
	if !svc.CanGoNext(recap.PeriodWeek, previous) {
		t.Error("CanGoNext = false for last week, want true")
	}
	next := svc.NextPeriod(recap.PeriodWeek, previous)
	if !next.Equal(fixedNow) {
		t.Errorf("NextPeriod = %v, want %v", next, fixedNow)
	}
}
