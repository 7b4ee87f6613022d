package progress_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	evaluator = progress.NewEvaluator(progress.DefaultPolicy(), nil)
	baseTime  = time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
)

func measurement(weight float64, unit entity.WeightUnit, daysAfter int) entity.WeightMeasurement {
	at := baseTime.AddDate(0, 0, daysAfter)
	return entity.WeightMeasurement{
		ID:         uuid.New(),
		Weight:     weight,
		Unit:       unit,
		MeasuredAt: at,
		CreatedAt:  at,
	}
}

func TestCalculateProgress(t *testing.T) {
	testCases := []struct {
		Desc    string
		Start   float64
		Current float64
		Goal    float64
		Result  float64
		Defined bool
	}{
		{Desc: "no movement is zero", Start: 200, Current: 200, Goal: 160, Result: 0, Defined: true},
		{Desc: "at goal is hundred", Start: 200, Current: 160, Goal: 160, Result: 100, Defined: true},
		{Desc: "halfway loss", Start: 200, Current: 180, Goal: 160, Result: 50, Defined: true},
		{Desc: "halfway gain", Start: 60, Current: 65, Goal: 70, Result: 50, Defined: true},
		{Desc: "past goal", Start: 200, Current: 150, Goal: 160, Result: 125, Defined: true},
		{Desc: "moved away from goal", Start: 200, Current: 210, Goal: 160, Result: -25, Defined: true},
		{Desc: "gain goal moved away", Start: 60, Current: 58, Goal: 70, Result: -20, Defined: true},
		{Desc: "start equals goal", Start: 80, Current: 79, Goal: 80, Defined: false},
		{Desc: "start within epsilon of goal", Start: 80.05, Current: 79, Goal: 80, Defined: false},
		{Desc: "start exactly epsilon away", Start: 80.5, Current: 80.25, Goal: 80, Result: 50, Defined: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			result, ok := evaluator.CalculateProgress(tc.Start, tc.Current, tc.Goal)
			assert.Equal(t, tc.Defined, ok)
			if tc.Defined {
				assert.InDelta(t, tc.Result, result, 1e-9)
			}
		})
	}
}

func TestCalculateProgressMonotonic(t *testing.T) {
	for _, goal := range []float64{160, 240} {
		start := 200.0
		step := (goal - start) / 50
		prev, ok := evaluator.CalculateProgress(start, start, goal)
		require.True(t, ok)
		for i := 1; i <= 60; i++ {
			current := start + step*float64(i)
			p, ok := evaluator.CalculateProgress(start, current, goal)
			require.True(t, ok)
			assert.Greater(t, p, prev)
			if i > 50 {
				assert.Greater(t, p, 100.0)
			}
			prev = p
		}
	}
}

func TestWeightRemaining(t *testing.T) {
	assert.Equal(t, 20.0, progress.WeightRemaining(180, 160))
	assert.Equal(t, 10.0, progress.WeightRemaining(150, 160))
	assert.Equal(t, 0.0, progress.WeightRemaining(160, 160))
}

func TestDetermineStartWeight(t *testing.T) {
	entries := []entity.WeightMeasurement{
		measurement(205, entity.Pounds, 3),
		measurement(210, entity.Pounds, 0),
		measurement(200, entity.Pounds, 10),
		measurement(198, entity.Pounds, 12),
	}
	goalSet := baseTime.AddDate(0, 0, 5)
	late := baseTime.AddDate(0, 1, 0)
	exact := entries[2].MeasuredAt
	testCases := []struct {
		Desc    string
		Entries []entity.WeightMeasurement
		SetAt   *time.Time
		Weight  float64
		Found   bool
	}{
		{Desc: "first entry after goal set", Entries: entries, SetAt: &goalSet, Weight: 200, Found: true},
		{Desc: "entry exactly at goal set", Entries: entries, SetAt: &exact, Weight: 200, Found: true},
		{Desc: "no entry after goal set falls back to earliest", Entries: entries, SetAt: &late, Weight: 210, Found: true},
		{Desc: "unknown goal date uses earliest", Entries: entries, SetAt: nil, Weight: 210, Found: true},
		{Desc: "zero goal date uses earliest", Entries: entries, SetAt: &time.Time{}, Weight: 210, Found: true},
		{Desc: "no entries", Entries: nil, SetAt: &goalSet, Found: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			m, ok := progress.DetermineStartWeight(tc.Entries, tc.SetAt)
			assert.Equal(t, tc.Found, ok)
			if tc.Found {
				assert.Equal(t, tc.Weight, m.Weight)
			}
		})
	}
}

func TestSortMeasurementsKeepsInsertionOrderOnTies(t *testing.T) {
	first := measurement(100, entity.Kilograms, 1)
	second := measurement(99, entity.Kilograms, 1)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	third := measurement(98, entity.Kilograms, 1)
	third.CreatedAt = second.CreatedAt

	sorted := progress.SortMeasurements([]entity.WeightMeasurement{second, third, first})
	require.Len(t, sorted, 3)
	assert.Equal(t, first.ID, sorted[0].ID)
	assert.Equal(t, second.ID, sorted[1].ID)
	assert.Equal(t, third.ID, sorted[2].ID)

	latest, ok := progress.LatestMeasurement([]entity.WeightMeasurement{second, third, first})
	require.True(t, ok)
	assert.Equal(t, third.ID, latest.ID)
}
