package recap

import "sort"

// detectPRs scans the period's lift records per exercise in chronological
// order and counts strictly-increasing running-max events.
//
// The first record ever seen for an exercise only establishes the baseline
// and is never itself a PR. Exercises are visited in sorted-id order so the
// top PR is deterministic when two exercises tie on improvement.
func detectPRs(lifts []LiftRecord, unit WeightUnit, catalog *Catalog) (int, *TopPR) {
	byExercise := groupByExercise(lifts)

	ids := make([]string, 0, len(byExercise))
	for id := range byExercise {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		total           int
		top             *TopPR
		bestImprovement float64
	)

	for _, id := range ids {
		records := byExercise[id]
		currentMax := 0.0

		for _, record := range records {
			weight := ConvertWeight(record.Weight, record.Unit, unit)
			if weight <= currentMax {
				continue
			}
			if currentMax > 0 {
				total++
				improvement := weight - currentMax
				if improvement > bestImprovement {
					bestImprovement = improvement
					top = &TopPR{
						ExerciseID:  id,
						Name:        catalog.DisplayName(id),
						Improvement: improvement,
						NewMax:      weight,
					}
				}
			}
			currentMax = weight
		}
	}

	return total, top
}

// groupByExercise buckets lift records by exercise id, each bucket sorted
// chronologically ascending (ties keep input order).
func groupByExercise(lifts []LiftRecord) map[string][]LiftRecord {
	byExercise := make(map[string][]LiftRecord)
	for _, lift := range lifts {
		byExercise[lift.ExerciseID] = append(byExercise[lift.ExerciseID], lift)
	}
	for _, records := range byExercise {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].RecordedAt.Before(records[j].RecordedAt)
		})
	}
	return byExercise
}
