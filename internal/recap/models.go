// Package recap turns a workout history and lift log into time-windowed
// performance summaries: streaks, volume, personal records, muscle-group
// focus, and best day for a week, month, or year.
package recap

import "time"

// Period selects the recap's time window granularity.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Valid reports whether p is a recognized period.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}

// WeightUnit is the unit a weight figure is expressed in.
type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

// Valid reports whether u is a recognized weight unit.
func (u WeightUnit) Valid() bool {
	return u == UnitKg || u == UnitLbs
}

// DateRange is an inclusive timestamp range; End is the last instant of the
// final day, not an exclusive bound.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolvedPeriod is a period anchored to a concrete date range with
// human-readable labels.
type ResolvedPeriod struct {
	Range    DateRange
	Label    string
	Subtitle string
}

// CompletedSet is a single set within an exercise log entry. Sets with
// Completed false were planned but never performed and are ignored by every
// aggregate.
type CompletedSet struct {
	Weight    float64
	Reps      int
	Unit      WeightUnit
	Completed bool
}

// ExerciseLog groups the sets performed for one exercise within a workout.
type ExerciseLog struct {
	ExerciseID string
	Sets       []CompletedSet
}

// WorkoutLogEntry is an immutable record of a completed workout session.
type WorkoutLogEntry struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Exercises []ExerciseLog
}

// LiftPool identifies which of the user's two lift logs a record belongs to.
// Both pools are concatenated before analysis.
type LiftPool string

const (
	PoolPrimary   LiftPool = "primary"
	PoolSecondary LiftPool = "secondary"
)

// LiftRecord is a single best-effort strength entry for one exercise,
// immutable once recorded.
type LiftRecord struct {
	ID         string
	ExerciseID string
	Weight     float64
	Reps       int
	Unit       WeightUnit
	RecordedAt time.Time
}

// CustomExercise is a user-defined exercise overlaying the built-in catalog.
type CustomExercise struct {
	ID             string
	Name           string
	PrimaryMuscles []string
}

// Profile holds the per-user settings the engine needs.
type Profile struct {
	PreferredUnit WeightUnit
}

// StreakInfo describes a run of consecutive training days.
type StreakInfo struct {
	Days  int
	Start time.Time
	End   time.Time
}

// TopExercise is an exercise ranked by how often it appeared in the period.
type TopExercise struct {
	ExerciseID string
	Name       string
	Count      int
	BestWeight float64
}

// TopPR is the single largest personal-record improvement in the period.
type TopPR struct {
	ExerciseID  string
	Name        string
	Improvement float64
	NewMax      float64
}

// StrengthProgress is the signed first-to-last max change for one exercise.
type StrengthProgress struct {
	ExerciseID  string
	Name        string
	StartMax    float64
	EndMax      float64
	Improvement float64
}

// MuscleDistribution is one muscle group's share of exercise occurrences.
type MuscleDistribution struct {
	Muscle     string
	Percentage int
}

// BestDay is the calendar day with the highest training volume in the period.
type BestDay struct {
	Date         time.Time
	DayName      string
	WorkoutCount int
	Volume       float64
}

// Stats is the engine's sole output: an immutable aggregate for one
// (period, reference date) pair. Every weight figure is expressed in Unit.
type Stats struct {
	Range    DateRange
	Label    string
	Subtitle string

	TotalWorkouts int
	TotalVolume   float64
	TotalSets     int
	TotalReps     int

	LongestStreak StreakInfo
	CurrentStreak int

	TopExercises            []TopExercise      // at most 5
	PRsAchieved             int
	TopPR                   *TopPR             // nil when no PR in the period
	StrengthProgress        []StrengthProgress // at most 4
	MuscleGroupDistribution []MuscleDistribution
	BestDay                 *BestDay // nil when the period has no training volume

	AverageWorkoutsPerPeriod float64
	DaysActive               int
	TotalDaysInPeriod        int

	Unit WeightUnit
}

// Snapshot bundles every input the recap computation reads. Stats is a pure
// function of a snapshot plus the period selector, so identical snapshots
// always produce identical output.
type Snapshot struct {
	History         []WorkoutLogEntry
	PrimaryLifts    []LiftRecord
	SecondaryLifts  []LiftRecord
	CustomExercises []CustomExercise
	PreferredUnit   WeightUnit
}
