package recap

import (
	"fmt"
	"time"
)

// exerciseTally tracks one exercise's occurrences and period-wide best weight.
type exerciseTally struct {
	count      int
	bestWeight float64
}

// dayTally is one calendar day's training volume and workout count.
type dayTally struct {
	date     time.Time
	volume   float64
	workouts int
}

// aggregates holds the raw counters produced by a single pass over the
// period's workouts. Slices record first-seen order so that downstream
// selections stay deterministic.
type aggregates struct {
	totalVolume float64
	totalSets   int
	totalReps   int

	exercises     map[string]*exerciseTally
	exerciseOrder []string

	muscleHits  map[string]int
	muscleOrder []string

	days     map[string]*dayTally
	dayOrder []string
}

// dayKey identifies a calendar day without zero padding, e.g. "2025-3-7".
func dayKey(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%d-%d-%d", year, int(month), day)
}

// aggregate runs the single linear pass over the period's workouts.
//
// Sets that were never completed are excluded from every counter. All weights
// are converted to unit before entering any sum, and an exercise's best
// weight is a period-wide maximum, never reset between workouts.
func aggregate(workouts []WorkoutLogEntry, unit WeightUnit, catalog *Catalog) aggregates {
	agg := aggregates{
		exercises:  make(map[string]*exerciseTally),
		muscleHits: make(map[string]int),
		days:       make(map[string]*dayTally),
	}

	for _, workout := range workouts {
		key := dayKey(workout.CreatedAt)
		day, ok := agg.days[key]
		if !ok {
			day = &dayTally{date: startOfDay(workout.CreatedAt)}
			agg.days[key] = day
			agg.dayOrder = append(agg.dayOrder, key)
		}
		day.workouts++

		for _, exercise := range workout.Exercises {
			tally, ok := agg.exercises[exercise.ExerciseID]
			if !ok {
				tally = &exerciseTally{}
				agg.exercises[exercise.ExerciseID] = tally
				agg.exerciseOrder = append(agg.exerciseOrder, exercise.ExerciseID)
			}
			tally.count++

			// Muscle hits count once per exercise occurrence, not per set.
			if info, found := catalog.Lookup(exercise.ExerciseID); found {
				for _, muscle := range info.PrimaryMuscles {
					if _, seen := agg.muscleHits[muscle]; !seen {
						agg.muscleOrder = append(agg.muscleOrder, muscle)
					}
					agg.muscleHits[muscle]++
				}
			}

			for _, set := range exercise.Sets {
				if !set.Completed {
					continue
				}
				weight := ConvertWeight(set.Weight, set.Unit, unit)
				volume := weight * float64(set.Reps)

				agg.totalSets++
				agg.totalReps += set.Reps
				agg.totalVolume += volume
				day.volume += volume

				if weight > tally.bestWeight {
					tally.bestWeight = weight
				}
			}
		}
	}

	return agg
}
