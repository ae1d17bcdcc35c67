package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/okarhu/gymrecap/internal/recap"
)

// renderStats writes a plain-text recap. Layout is stable so the output can
// be piped or diffed.
func renderStats(w io.Writer, stats recap.Stats, canGoNext bool) {
	fmt.Fprintf(w, "%s\n%s\n\n", stats.Label, stats.Subtitle)

	fmt.Fprintf(w, "Workouts: %d   Sets: %d   Reps: %d\n", stats.TotalWorkouts, stats.TotalSets, stats.TotalReps)
	fmt.Fprintf(w, "Volume: %.0f %s\n", stats.TotalVolume, stats.Unit)
	fmt.Fprintf(w, "Active days: %d of %d   Avg workouts/week: %.1f\n\n",
		stats.DaysActive, stats.TotalDaysInPeriod, stats.AverageWorkoutsPerPeriod)

	fmt.Fprintf(w, "Current streak: %s\n", pluralDays(stats.CurrentStreak))
	if stats.LongestStreak.Days > 0 {
		fmt.Fprintf(w, "Longest streak: %s (%s - %s)\n",
			pluralDays(stats.LongestStreak.Days),
			stats.LongestStreak.Start.Format("Jan 2, 2006"),
			stats.LongestStreak.End.Format("Jan 2, 2006"))
	}

	if len(stats.TopExercises) > 0 {
		fmt.Fprintf(w, "\nTop exercises\n")
		for _, exercise := range stats.TopExercises {
			fmt.Fprintf(w, "  %-24s x%-3d best %.0f %s\n",
				exercise.Name, exercise.Count, exercise.BestWeight, stats.Unit)
		}
	}

	if stats.PRsAchieved > 0 {
		fmt.Fprintf(w, "\nPRs achieved: %d\n", stats.PRsAchieved)
		if stats.TopPR != nil {
			fmt.Fprintf(w, "Top PR: %s +%.1f %s (new max %.1f %s)\n",
				stats.TopPR.Name, stats.TopPR.Improvement, stats.Unit, stats.TopPR.NewMax, stats.Unit)
		}
	}

	if len(stats.StrengthProgress) > 0 {
		fmt.Fprintf(w, "\nStrength progress\n")
		for _, progress := range stats.StrengthProgress {
			fmt.Fprintf(w, "  %-24s %.1f -> %.1f %s (%+.1f)\n",
				progress.Name, progress.StartMax, progress.EndMax, stats.Unit, progress.Improvement)
		}
	}

	if len(stats.MuscleGroupDistribution) > 0 {
		fmt.Fprintf(w, "\nMuscle focus\n")
		for _, share := range stats.MuscleGroupDistribution {
			fmt.Fprintf(w, "  %-12s %3d%% %s\n", share.Muscle, share.Percentage, bar(share.Percentage))
		}
	}

	if stats.BestDay != nil {
		fmt.Fprintf(w, "\nBest day: %s, %s with %d workout(s) and %.0f %s moved\n",
			stats.BestDay.DayName,
			stats.BestDay.Date.Format("Jan 2"),
			stats.BestDay.WorkoutCount,
			stats.BestDay.Volume,
			stats.Unit)
	}

	if canGoNext {
		fmt.Fprintf(w, "\nA more recent period exists; rerun with a later --date or smaller --prev.\n")
	}
}

// bar renders a percentage as a 20-cell block bar.
func bar(percentage int) string {
	const cells = 20
	filled := percentage * cells / 100
	if filled > cells {
		filled = cells
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
}

func pluralDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
