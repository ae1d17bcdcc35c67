package recap

import "time"

// averagingDivisors normalize the workout count into a per-week figure:
// a week has 7 days, a month roughly 4 weeks, a year 52.
const (
	weekDivisor  = 7.0
	monthDivisor = 4.0
	yearDivisor  = 52.0
)

// computeStats assembles a full recap from a snapshot. It is a pure
// function: no I/O, no hidden state, and the only clock input is the
// explicit now used for labels and the current-streak anchor.
func computeStats(snap Snapshot, period Period, refDate, now time.Time) Stats {
	resolved := period.Resolve(refDate, now)
	catalog := NewCatalog(snap.CustomExercises)
	unit := snap.PreferredUnit

	var workouts []WorkoutLogEntry
	for _, workout := range snap.History {
		if resolved.Range.Contains(workout.CreatedAt) {
			workouts = append(workouts, workout)
		}
	}

	// Both lift pools are logically one log.
	allLifts := make([]LiftRecord, 0, len(snap.PrimaryLifts)+len(snap.SecondaryLifts))
	allLifts = append(allLifts, snap.PrimaryLifts...)
	allLifts = append(allLifts, snap.SecondaryLifts...)

	var lifts []LiftRecord
	for _, lift := range allLifts {
		if resolved.Range.Contains(lift.RecordedAt) {
			lifts = append(lifts, lift)
		}
	}

	agg := aggregate(workouts, unit, catalog)
	prCount, topPR := detectPRs(lifts, unit, catalog)

	var divisor float64
	switch period {
	case PeriodMonth:
		divisor = monthDivisor
	case PeriodYear:
		divisor = yearDivisor
	default:
		divisor = weekDivisor
	}

	return Stats{
		Range:    resolved.Range,
		Label:    resolved.Label,
		Subtitle: resolved.Subtitle,

		TotalWorkouts: len(workouts),
		TotalVolume:   agg.totalVolume,
		TotalSets:     agg.totalSets,
		TotalReps:     agg.totalReps,

		// Streaks are historical facts computed over the full history,
		// not the period slice.
		LongestStreak: longestStreak(snap.History, now),
		CurrentStreak: currentStreak(snap.History, now),

		TopExercises:            topExercises(agg, catalog),
		PRsAchieved:             prCount,
		TopPR:                   topPR,
		StrengthProgress:        strengthProgress(lifts, unit, catalog),
		MuscleGroupDistribution: muscleDistribution(agg),
		BestDay:                 bestDay(agg),

		AverageWorkoutsPerPeriod: float64(len(workouts)) / divisor,
		DaysActive:               len(agg.days),
		TotalDaysInPeriod:        inclusiveDays(resolved.Range),

		Unit: unit,
	}
}
