package progress

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/limbo/weightgoal/pkg/entity"
)

// CalculateProgress returns the share of the distance from start to goal already covered, in percent.
// The result may exceed 100 or be negative. ok is false when start and goal coincide.
func (e *Evaluator) CalculateProgress(startWeight, currentWeight, goalWeight float64) (percentage float64, ok bool) {
	total := startWeight - goalWeight
	if math.Abs(total) < e.policy.StartGoalEpsilon {
		return 0, false
	}
	return (startWeight - currentWeight) / total * 100, true
}

func WeightRemaining(currentWeight, goalWeight float64) float64 {
	return math.Abs(currentWeight - goalWeight)
}

// SortMeasurements orders entries by measurement time. Equal timestamps keep their
// insertion order, taken from CreatedAt and then from the input order.
func SortMeasurements(entries []entity.WeightMeasurement) []entity.WeightMeasurement {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b entity.WeightMeasurement) int {
		if c := a.MeasuredAt.Compare(b.MeasuredAt); c != 0 {
			return c
		}
		return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
	})
	return sorted
}

// DetermineStartWeight picks the measurement progress is anchored to: the earliest one taken at or
// after the goal was set, or the earliest overall when there is none or the set date is unknown.
func DetermineStartWeight(entries []entity.WeightMeasurement, goalSetAt *time.Time) (entity.WeightMeasurement, bool) {
	if len(entries) == 0 {
		return entity.WeightMeasurement{}, false
	}
	sorted := SortMeasurements(entries)
	if goalSetAt != nil && !goalSetAt.IsZero() {
		for _, m := range sorted {
			if !m.MeasuredAt.Before(*goalSetAt) {
				return m, true
			}
		}
	}
	return sorted[0], true
}

// LatestMeasurement returns the most recent entry, ties resolved by insertion order.
func LatestMeasurement(entries []entity.WeightMeasurement) (entity.WeightMeasurement, bool) {
	if len(entries) == 0 {
		return entity.WeightMeasurement{}, false
	}
	sorted := SortMeasurements(entries)
	return sorted[len(sorted)-1], true
}
