package recap

import (
	"math"
	"sort"
)

const (
	maxTopExercises     = 5
	maxStrengthProgress = 4
)

// topExercises ranks the period's exercises by occurrence count, keeping the
// five most frequent. Best weights are rounded to whole units for display.
func topExercises(agg aggregates, catalog *Catalog) []TopExercise {
	ranked := make([]TopExercise, 0, len(agg.exerciseOrder))
	for _, id := range agg.exerciseOrder {
		tally := agg.exercises[id]
		ranked = append(ranked, TopExercise{
			ExerciseID: id,
			Name:       catalog.DisplayName(id),
			Count:      tally.count,
			BestWeight: math.Round(tally.bestWeight),
		})
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > maxTopExercises {
		ranked = ranked[:maxTopExercises]
	}
	return ranked
}

// muscleDistribution normalizes muscle hit counts into percentages sorted
// descending. Zero hits yield an empty list rather than a division by zero.
func muscleDistribution(agg aggregates) []MuscleDistribution {
	totalHits := 0
	for _, count := range agg.muscleHits {
		totalHits += count
	}
	if totalHits == 0 {
		return nil
	}

	shares := make([]MuscleDistribution, 0, len(agg.muscleOrder))
	for _, muscle := range agg.muscleOrder {
		count := agg.muscleHits[muscle]
		shares = append(shares, MuscleDistribution{
			Muscle:     muscle,
			Percentage: int(math.Round(100 * float64(count) / float64(totalHits))),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Percentage > shares[j].Percentage })
	return shares
}

// bestDay selects the calendar day with the strictly greatest volume.
// First-seen wins on ties; a period with no training volume yields nil.
func bestDay(agg aggregates) *BestDay {
	var (
		best      *BestDay
		maxVolume float64
	)
	for _, key := range agg.dayOrder {
		day := agg.days[key]
		if day.volume > maxVolume {
			maxVolume = day.volume
			best = &BestDay{
				Date:         day.date,
				DayName:      day.date.Weekday().String(),
				WorkoutCount: day.workouts,
				Volume:       day.volume,
			}
		}
	}
	return best
}

// strengthProgress reports the signed first-to-last max change per exercise
// with at least two records in the period, ranked by magnitude, top four.
// Endpoints are chronological, not period-wide extremes.
func strengthProgress(lifts []LiftRecord, unit WeightUnit, catalog *Catalog) []StrengthProgress {
	byExercise := groupByExercise(lifts)

	ids := make([]string, 0, len(byExercise))
	for id := range byExercise {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var progress []StrengthProgress
	for _, id := range ids {
		records := byExercise[id]
		if len(records) < 2 {
			continue
		}
		startMax := ConvertWeight(records[0].Weight, records[0].Unit, unit)
		endMax := ConvertWeight(records[len(records)-1].Weight, records[len(records)-1].Unit, unit)
		improvement := endMax - startMax
		if improvement == 0 {
			continue
		}
		progress = append(progress, StrengthProgress{
			ExerciseID:  id,
			Name:        catalog.DisplayName(id),
			StartMax:    startMax,
			EndMax:      endMax,
			Improvement: improvement,
		})
	}

	sort.SliceStable(progress, func(i, j int) bool {
		return math.Abs(progress[i].Improvement) > math.Abs(progress[j].Improvement)
	})
	if len(progress) > maxStrengthProgress {
		progress = progress[:maxStrengthProgress]
	}
	return progress
}
