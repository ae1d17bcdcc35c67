package recap

// ExerciseInfo is the catalog metadata used to resolve display names and
// muscle-group attribution.
type ExerciseInfo struct {
	ID             string
	Name           string
	PrimaryMuscles []string
}

// Catalog resolves exercise ids to metadata. Built-in definitions are
// overlaid by user-defined custom exercises, with custom entries winning on
// id collisions.
type Catalog struct {
	entries map[string]ExerciseInfo
}

// NewCatalog builds a catalog from the built-in definitions plus the given
// custom exercises.
func NewCatalog(custom []CustomExercise) *Catalog {
	entries := make(map[string]ExerciseInfo, len(builtinExercises)+len(custom))
	for _, e := range builtinExercises {
		entries[e.ID] = e
	}
	for _, c := range custom {
		entries[c.ID] = ExerciseInfo{
			ID:             c.ID,
			Name:           c.Name,
			PrimaryMuscles: c.PrimaryMuscles,
		}
	}
	return &Catalog{entries: entries}
}

// Lookup returns the catalog entry for id, if any.
func (c *Catalog) Lookup(id string) (ExerciseInfo, bool) {
	info, ok := c.entries[id]
	return info, ok
}

// DisplayName returns the exercise's catalog name, falling back to the raw
// id for unknown exercises so they still show up in summaries.
func (c *Catalog) DisplayName(id string) string {
	if info, ok := c.entries[id]; ok {
		return info.Name
	}
	return id
}

//nolint:gochecknoglobals // static reference data.
var builtinExercises = []ExerciseInfo{
	{ID: "barbell-squat", Name: "Barbell Squat", PrimaryMuscles: []string{"Quads", "Glutes"}},
	{ID: "front-squat", Name: "Front Squat", PrimaryMuscles: []string{"Quads"}},
	{ID: "leg-press", Name: "Leg Press", PrimaryMuscles: []string{"Quads", "Glutes"}},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", PrimaryMuscles: []string{"Hamstrings", "Glutes"}},
	{ID: "deadlift", Name: "Deadlift", PrimaryMuscles: []string{"Back", "Hamstrings", "Glutes"}},
	{ID: "leg-curl", Name: "Leg Curl", PrimaryMuscles: []string{"Hamstrings"}},
	{ID: "calf-raise", Name: "Calf Raise", PrimaryMuscles: []string{"Calves"}},
	{ID: "bench-press", Name: "Bench Press", PrimaryMuscles: []string{"Chest", "Triceps"}},
	{ID: "incline-bench-press", Name: "Incline Bench Press", PrimaryMuscles: []string{"Chest", "Shoulders"}},
	{ID: "dumbbell-fly", Name: "Dumbbell Fly", PrimaryMuscles: []string{"Chest"}},
	{ID: "overhead-press", Name: "Overhead Press", PrimaryMuscles: []string{"Shoulders", "Triceps"}},
	{ID: "lateral-raise", Name: "Lateral Raise", PrimaryMuscles: []string{"Shoulders"}},
	{ID: "pull-up", Name: "Pull-Up", PrimaryMuscles: []string{"Back", "Biceps"}},
	{ID: "chin-up", Name: "Chin-Up", PrimaryMuscles: []string{"Back", "Biceps"}},
	{ID: "barbell-row", Name: "Barbell Row", PrimaryMuscles: []string{"Back"}},
	{ID: "lat-pulldown", Name: "Lat Pulldown", PrimaryMuscles: []string{"Back"}},
	{ID: "bicep-curl", Name: "Bicep Curl", PrimaryMuscles: []string{"Biceps"}},
	{ID: "hammer-curl", Name: "Hammer Curl", PrimaryMuscles: []string{"Biceps", "Forearms"}},
	{ID: "tricep-extension", Name: "Tricep Extension", PrimaryMuscles: []string{"Triceps"}},
	{ID: "dip", Name: "Dip", PrimaryMuscles: []string{"Triceps", "Chest"}},
	{ID: "plank", Name: "Plank", PrimaryMuscles: []string{"Core"}},
	{ID: "hanging-leg-raise", Name: "Hanging Leg Raise", PrimaryMuscles: []string{"Core"}},
	{ID: "hip-thrust", Name: "Hip Thrust", PrimaryMuscles: []string{"Glutes"}},
	{ID: "lunge", Name: "Lunge", PrimaryMuscles: []string{"Quads", "Glutes"}},
}
