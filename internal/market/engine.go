package market

import "math/rand"

// Drift ranges per trend. A bull symbol leans upward, a bear one downward,
// a flat one wanders either way.
var drift = map[Trend][2]float64{
	TrendBull: {-0.03, 0.10},
	TrendBear: {-0.10, 0.03},
	TrendFlat: {-0.05, 0.05},
}

var trends = []Trend{TrendBull, TrendBear, TrendFlat}

// NextPrice advances one quote by a single random-walk step. Prices floor
// at 1 and round to cents; a quote flips trend roughly every fourth tick.
func NextPrice(q Quote, r *rand.Rand) Quote {
	bounds, ok := drift[q.Trend]
	if !ok {
		bounds = drift[TrendFlat]
	}

	change := bounds[0] + r.Float64()*(bounds[1]-bounds[0])

	q.PrevPrice = q.Price
	q.Price = q.Price * (1 + change)
	if q.Price < 1 {
		q.Price = 1.0
	}
	q.Price = float64(int64(q.Price*100+0.5)) / 100

	if r.Intn(4) == 0 {
		q.Trend = trends[r.Intn(len(trends))]
	}

	return q
}
