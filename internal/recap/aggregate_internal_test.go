package recap

import (
	"math"
	"testing"
	"time"
)

func set(weight float64, reps int, completed bool) CompletedSet {
	return CompletedSet{Weight: weight, Reps: reps, Unit: UnitLbs, Completed: completed}
}

func workoutWith(at time.Time, exercises ...ExerciseLog) WorkoutLogEntry {
	return WorkoutLogEntry{ID: dayKey(at), Title: "Workout", CreatedAt: at, Exercises: exercises}
}

func TestAggregateSkipsIncompleteSets(t *testing.T) {
	at := time.Date(2025, time.June, 16, 7, 0, 0, 0, time.UTC)
	workouts := []WorkoutLogEntry{
		workoutWith(at, ExerciseLog{
			ExerciseID: "bench-press",
			Sets: []CompletedSet{
				set(135, 10, true),
				set(145, 8, false), // skipped entirely
				set(135, 8, true),
			},
		}),
	}

	agg := aggregate(workouts, UnitLbs, NewCatalog(nil))

	if agg.totalSets != 2 {
		t.Errorf("totalSets = %d, want 2", agg.totalSets)
	}
	if agg.totalReps != 18 {
		t.Errorf("totalReps = %d, want 18", agg.totalReps)
	}
	wantVolume := 135.0*10 + 135.0*8
	if agg.totalVolume != wantVolume {
		t.Errorf("totalVolume = %v, want %v", agg.totalVolume, wantVolume)
	}
	if best := agg.exercises["bench-press"].bestWeight; best != 135 {
		t.Errorf("bestWeight = %v, want 135 (incomplete 145 excluded)", best)
	}
}

func TestAggregateBestWeightSpansWorkouts(t *testing.T) {
	monday := time.Date(2025, time.June, 16, 7, 0, 0, 0, time.UTC)
	workouts := []WorkoutLogEntry{
		workoutWith(monday, ExerciseLog{
			ExerciseID: "barbell-squat",
			Sets:       []CompletedSet{set(225, 5, true)},
		}),
		workoutWith(monday.AddDate(0, 0, 2), ExerciseLog{
			ExerciseID: "barbell-squat",
			Sets:       []CompletedSet{set(185, 8, true)},
		}),
	}

	agg := aggregate(workouts, UnitLbs, NewCatalog(nil))

	tally := agg.exercises["barbell-squat"]
	if tally.count != 2 {
		t.Errorf("count = %d, want 2", tally.count)
	}
	if tally.bestWeight != 225 {
		t.Errorf("bestWeight = %v, want period-wide max 225", tally.bestWeight)
	}
}

func TestAggregateBucketsVolumeByCalendarDay(t *testing.T) {
	morning := time.Date(2025, time.June, 16, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 16, 19, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, time.June, 17, 7, 0, 0, 0, time.UTC)

	bench := ExerciseLog{ExerciseID: "bench-press", Sets: []CompletedSet{set(100, 10, true)}}
	workouts := []WorkoutLogEntry{
		workoutWith(morning, bench),
		workoutWith(evening, bench),
		workoutWith(nextDay, bench),
	}

	agg := aggregate(workouts, UnitLbs, NewCatalog(nil))

	if len(agg.days) != 2 {
		t.Fatalf("got %d day buckets, want 2", len(agg.days))
	}
	first := agg.days[dayKey(morning)]
	if first.workouts != 2 || first.volume != 2000 {
		t.Errorf("first day = %d workouts, %v volume; want 2 and 2000", first.workouts, first.volume)
	}
	second := agg.days[dayKey(nextDay)]
	if second.workouts != 1 || second.volume != 1000 {
		t.Errorf("second day = %d workouts, %v volume; want 1 and 1000", second.workouts, second.volume)
	}
}

func TestAggregateMuscleHitsPerOccurrence(t *testing.T) {
	at := time.Date(2025, time.June, 16, 7, 0, 0, 0, time.UTC)
	// Three sets on one exercise occurrence must count its muscles once.
	workouts := []WorkoutLogEntry{
		workoutWith(at, ExerciseLog{
			ExerciseID: "bench-press",
			Sets:       []CompletedSet{set(135, 10, true), set(135, 10, true), set(135, 10, true)},
		}),
		workoutWith(at.AddDate(0, 0, 1), ExerciseLog{
			ExerciseID: "bench-press",
			Sets:       []CompletedSet{set(135, 10, true)},
		}),
	}

	agg := aggregate(workouts, UnitLbs, NewCatalog(nil))

	if hits := agg.muscleHits["Chest"]; hits != 2 {
		t.Errorf("Chest hits = %d, want 2 (once per occurrence)", hits)
	}
}

func TestAggregateUnknownExerciseCountsWithoutMuscles(t *testing.T) {
	at := time.Date(2025, time.June, 16, 7, 0, 0, 0, time.UTC)
	workouts := []WorkoutLogEntry{
		workoutWith(at, ExerciseLog{
			ExerciseID: "mystery-machine",
			Sets:       []CompletedSet{set(50, 12, true)},
		}),
	}

	agg := aggregate(workouts, UnitLbs, NewCatalog(nil))

	if agg.exercises["mystery-machine"] == nil {
		t.Fatal("unknown exercise missing from tallies")
	}
	if len(agg.muscleHits) != 0 {
		t.Errorf("muscleHits = %v, want empty for unknown exercise", agg.muscleHits)
	}
}

func TestAggregateConvertsToRequestedUnit(t *testing.T) {
	at := time.Date(2025, time.June, 16, 7, 0, 0, 0, time.UTC)
	workouts := []WorkoutLogEntry{
		workoutWith(at, ExerciseLog{
			ExerciseID: "deadlift",
			Sets: []CompletedSet{
				{Weight: 100, Reps: 5, Unit: UnitKg, Completed: true},
			},
		}),
	}

	agg := aggregate(workouts, UnitLbs, NewCatalog(nil))

	wantVolume := ConvertWeight(100, UnitKg, UnitLbs) * 5
	if math.Abs(agg.totalVolume-wantVolume) > 1e-9 {
		t.Errorf("totalVolume = %v, want %v", agg.totalVolume, wantVolume)
	}
}
