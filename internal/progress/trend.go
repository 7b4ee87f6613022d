package progress

import (
	"errors"
	"time"

	"github.com/limbo/weightgoal/pkg/entity"
)

const DefaultTrendAlpha = 0.1

var ErrInvalidAlpha = errors.New("smoothing factor must be in (0, 1]")

type TrendPoint struct {
	MeasuredAt time.Time `json:"measured_at"`
	Weight     float64   `json:"weight"`
	Trend      float64   `json:"trend"`
}

// Trend smooths the measurement series with an exponential moving average seeded by the first entry.
// Weights are converted to unit before smoothing.
func (e *Evaluator) Trend(entries []entity.WeightMeasurement, unit entity.WeightUnit, alpha float64) ([]TrendPoint, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, ErrInvalidAlpha
	}
	sorted := SortMeasurements(entries)
	points := make([]TrendPoint, 0, len(sorted))
	var ema float64
	for i, m := range sorted {
		w, err := e.converter.Convert(m.Weight, m.Unit, unit)
		if err != nil {
			return nil, errors.New("converting measurement error: " + err.Error())
		}
		if i == 0 {
			ema = w
		} else {
			ema = alpha*w + (1-alpha)*ema
		}
		points = append(points, TrendPoint{
			MeasuredAt: m.MeasuredAt,
			Weight:     w,
			Trend:      ema,
		})
	}
	return points, nil
}
