package units

import (
	"errors"
	"math"

	"github.com/limbo/weightgoal/pkg/entity"
)

var ErrUnknownUnit = errors.New("unknown weight unit")

// kilograms per unit
var defaultFactors = map[entity.WeightUnit]float64{
	entity.Kilograms: 1,
	entity.Pounds:    0.45359237,
}

type Converter struct {
	factors map[entity.WeightUnit]float64
}

func NewConverter() *Converter {
	return &Converter{
		factors: defaultFactors,
	}
}

// NewConverterWithFactors builds converter from kilograms-per-unit factors.
func NewConverterWithFactors(factors map[entity.WeightUnit]float64) *Converter {
	return &Converter{
		factors: factors,
	}
}

func (c *Converter) Convert(value float64, from, to entity.WeightUnit) (float64, error) {
	if from == to {
		if _, ok := c.factors[from]; !ok {
			return 0, ErrUnknownUnit
		}
		return value, nil
	}
	fromFactor, ok := c.factors[from]
	if !ok {
		return 0, ErrUnknownUnit
	}
	toFactor, ok := c.factors[to]
	if !ok || toFactor == 0 {
		return 0, ErrUnknownUnit
	}
	return value * fromFactor / toFactor, nil
}

func (c *Converter) Supports(unit entity.WeightUnit) bool {
	_, ok := c.factors[unit]
	return ok
}

// RoundHalf rounds to the nearest half unit, the step weights are shown in.
func RoundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
