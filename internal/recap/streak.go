package recap

import (
	"sort"
	"time"
)

// trainingDays collects the distinct calendar days across the whole history,
// normalized to local midnights, sorted ascending.
func trainingDays(history []WorkoutLogEntry) []time.Time {
	seen := make(map[string]time.Time, len(history))
	for _, workout := range history {
		day := startOfDay(workout.CreatedAt)
		seen[dayKey(day)] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// longestStreak finds the longest run of consecutive training days across the
// entire history. Streaks are historical facts, so the calculation is never
// windowed to the recap period.
func longestStreak(history []WorkoutLogEntry, now time.Time) StreakInfo {
	days := trainingDays(history)
	if len(days) == 0 {
		return StreakInfo{Days: 0, Start: now, End: now}
	}

	best := StreakInfo{Days: 1, Start: days[0], End: days[0]}
	run := 1
	runStart := days[0]

	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
			runStart = days[i]
		}
		if run > best.Days {
			best = StreakInfo{Days: run, Start: runStart, End: days[i]}
		}
	}

	return best
}

// currentStreak counts consecutive training days ending today or yesterday.
// A most-recent workout two or more days ago means training has lapsed and
// the streak is zero.
func currentStreak(history []WorkoutLogEntry, now time.Time) int {
	days := trainingDays(history)
	if len(days) == 0 {
		return 0
	}

	trained := make(map[string]bool, len(days))
	for _, day := range days {
		trained[dayKey(day)] = true
	}

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	latestKey := dayKey(days[len(days)-1])
	if latestKey != dayKey(today) && latestKey != dayKey(yesterday) {
		return 0
	}

	anchor := today
	if !trained[dayKey(today)] {
		anchor = yesterday
	}

	streak := 0
	for day := anchor; trained[dayKey(day)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
