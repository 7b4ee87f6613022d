package progress

import (
	"errors"
	"math"

	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/limbo/weightgoal/pkg/units"
)

// CrossedMilestones lists every percentage milestone with threshold <= progress, ascending.
// NaN progress counts as undefined and yields nothing.
func CrossedMilestones(progress float64) []entity.MilestoneType {
	crossed := make([]entity.MilestoneType, 0, len(entity.PercentageMilestones))
	if math.IsNaN(progress) {
		return crossed
	}
	for _, m := range entity.PercentageMilestones {
		threshold, _ := m.Threshold()
		if threshold <= progress {
			crossed = append(crossed, m)
		}
	}
	return crossed
}

// ApproachingThreshold expresses the configured approaching distance in unit.
// Converted values are rounded to the nearest half unit (5 lb -> 2.5 kg).
func (e *Evaluator) ApproachingThreshold(unit entity.WeightUnit) (float64, error) {
	threshold := e.policy.ApproachingThreshold
	if unit != e.policy.ApproachingUnit {
		converted, err := e.converter.Convert(threshold, e.policy.ApproachingUnit, unit)
		if err != nil {
			return 0, errors.Join(errorvalues.ErrInvalidThreshold, err)
		}
		threshold = units.RoundHalf(converted)
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return 0, errorvalues.ErrInvalidThreshold
	}
	return threshold, nil
}

// IsApproachingGoal reports whether the user is within the approaching distance of the goal
// without having reached it. Both weights must be expressed in unit.
func (e *Evaluator) IsApproachingGoal(currentWeight, goalWeight float64, unit entity.WeightUnit) (bool, error) {
	threshold, err := e.ApproachingThreshold(unit)
	if err != nil {
		return false, err
	}
	distance := WeightRemaining(currentWeight, goalWeight)
	if distance == 0 || distance < e.policy.CompletionTolerance {
		return false, nil
	}
	return distance <= threshold, nil
}

// NewMilestones drops from crossed every milestone already recorded for goalWeight.
// existing must hold records of a single unit, the one goalWeight is expressed in.
func (e *Evaluator) NewMilestones(crossed []entity.MilestoneType, existing []entity.MilestoneAchievement, goalWeight float64) []entity.MilestoneType {
	achieved := make(map[entity.MilestoneType]struct{}, len(existing))
	for _, a := range existing {
		if e.SameGoal(a.GoalWeight, goalWeight) {
			achieved[a.Type] = struct{}{}
		}
	}
	fresh := make([]entity.MilestoneType, 0, len(crossed))
	for _, m := range crossed {
		if _, ok := achieved[m]; !ok {
			fresh = append(fresh, m)
		}
	}
	return fresh
}

// Outranking keeps the fresh milestones ranked above every percentage milestone already recorded
// for goalWeight. A skipped lower milestone must not fire after a higher one was celebrated.
func (e *Evaluator) Outranking(fresh []entity.MilestoneType, existing []entity.MilestoneAchievement, goalWeight float64) []entity.MilestoneType {
	top := 0
	for _, a := range existing {
		if _, isPercentage := a.Type.Threshold(); isPercentage && e.SameGoal(a.GoalWeight, goalWeight) && a.Type.Rank() > top {
			top = a.Type.Rank()
		}
	}
	out := make([]entity.MilestoneType, 0, len(fresh))
	for _, m := range fresh {
		if m.Rank() > top {
			out = append(out, m)
		}
	}
	return out
}

func (e *Evaluator) SameGoal(a, b float64) bool {
	return math.Abs(a-b) < e.policy.GoalWeightTolerance
}

func HighestMilestone(milestones []entity.MilestoneType) (entity.MilestoneType, bool) {
	var highest entity.MilestoneType
	for _, m := range milestones {
		if m.Rank() > highest.Rank() {
			highest = m
		}
	}
	return highest, highest.Valid()
}

// HasGoalChangedSignificantly compares the goal change against the smaller of the two goals,
// so the answer does not depend on the direction of the change. Exactly GoalChangeRatio is not significant.
func (e *Evaluator) HasGoalChangedSignificantly(currentGoal, previousGoal float64) bool {
	diff := math.Abs(currentGoal - previousGoal)
	base := math.Min(math.Abs(currentGoal), math.Abs(previousGoal))
	if base == 0 {
		return diff >= e.policy.GoalWeightTolerance
	}
	return diff/base > e.policy.GoalChangeRatio
}
