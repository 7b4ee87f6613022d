package progress

import (
	"errors"

	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/pkg/entity"
)

// Snapshot is the progress state of one user against one goal. Weights are in Unit.
// Percentage is meaningful only when Defined is true.
type Snapshot struct {
	Unit            entity.WeightUnit        `json:"unit"`
	StartWeight     float64                  `json:"start_weight"`
	CurrentWeight   float64                  `json:"current_weight"`
	GoalWeight      float64                  `json:"goal_weight"`
	WeightRemaining float64                  `json:"weight_remaining"`
	Percentage      float64                  `json:"percentage"`
	Defined         bool                     `json:"defined"`
	Start           entity.WeightMeasurement `json:"-"`
	Current         entity.WeightMeasurement `json:"-"`
}

// Snapshot computes progress against goal in the goal's unit.
// Empty entries return ErrEmptyHistory. Coinciding start and goal leave Defined false.
func (e *Evaluator) Snapshot(entries []entity.WeightMeasurement, goal entity.Goal) (*Snapshot, error) {
	setAt := goal.SetAt
	start, ok := DetermineStartWeight(entries, &setAt)
	if !ok {
		return nil, errorvalues.ErrEmptyHistory
	}
	current, _ := LatestMeasurement(entries)
	startWeight, err := e.converter.Convert(start.Weight, start.Unit, goal.Unit)
	if err != nil {
		return nil, errors.New("converting start weight error: " + err.Error())
	}
	currentWeight, err := e.converter.Convert(current.Weight, current.Unit, goal.Unit)
	if err != nil {
		return nil, errors.New("converting current weight error: " + err.Error())
	}
	snap := &Snapshot{
		Unit:            goal.Unit,
		StartWeight:     startWeight,
		CurrentWeight:   currentWeight,
		GoalWeight:      goal.TargetWeight,
		WeightRemaining: WeightRemaining(currentWeight, goal.TargetWeight),
		Start:           start,
		Current:         current,
	}
	snap.Percentage, snap.Defined = e.CalculateProgress(startWeight, currentWeight, goal.TargetWeight)
	return snap, nil
}

// InUnit re-expresses the snapshot weights in unit. The percentage does not change.
func (e *Evaluator) InUnit(snap *Snapshot, unit entity.WeightUnit) (*Snapshot, error) {
	if snap.Unit == unit {
		return snap, nil
	}
	out := *snap
	out.Unit = unit
	for _, w := range []*float64{&out.StartWeight, &out.CurrentWeight, &out.GoalWeight, &out.WeightRemaining} {
		converted, err := e.converter.Convert(*w, snap.Unit, unit)
		if err != nil {
			return nil, errors.New("converting snapshot error: " + err.Error())
		}
		*w = converted
	}
	return &out, nil
}
