// Package progress computes goal progress, milestone crossings and weight trends.
// Every function here is pure: persistence and notification delivery live in the service layer.
package progress

import (
	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/limbo/weightgoal/pkg/units"
)

type Policy struct {
	// |start - goal| below this leaves progress undefined
	StartGoalEpsilon float64
	// goal weights closer than this belong to the same ledger key
	GoalWeightTolerance float64
	// distance to goal below this counts as reached, not approaching
	CompletionTolerance float64
	// relative goal change strictly above this is significant
	GoalChangeRatio float64
	// approaching threshold expressed in ApproachingUnit, converted for other units
	ApproachingThreshold float64
	ApproachingUnit      entity.WeightUnit
}

func DefaultPolicy() Policy {
	return Policy{
		StartGoalEpsilon:     0.1,
		GoalWeightTolerance:  0.1,
		CompletionTolerance:  0.1,
		GoalChangeRatio:      0.10,
		ApproachingThreshold: 5,
		ApproachingUnit:      entity.Pounds,
	}
}

type UnitConverter interface {
	Convert(value float64, from, to entity.WeightUnit) (float64, error)
}

type Evaluator struct {
	policy    Policy
	converter UnitConverter
}

func NewEvaluator(policy Policy, converter UnitConverter) *Evaluator {
	if converter == nil {
		converter = units.NewConverter()
	}
	return &Evaluator{
		policy:    policy,
		converter: converter,
	}
}

func (e *Evaluator) Policy() Policy {
	return e.policy
}

func (e *Evaluator) Convert(value float64, from, to entity.WeightUnit) (float64, error) {
	return e.converter.Convert(value, from, to)
}
