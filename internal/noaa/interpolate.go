package noaa

import (
	"math"
	"time"
)

// InterpolateLevel estimates the predicted water level at t from the
// bracketing high/low extremes. Water level between two extremes follows
// a half cosine. Returns false when t falls outside the prediction range.
func InterpolateLevel(preds []TidePrediction, t time.Time) (float64, bool) {
	for i := 1; i < len(preds); i++ {
		a, b := preds[i-1], preds[i]
		if t.Before(a.Time) || t.After(b.Time) {
			continue
		}
		span := b.Time.Sub(a.Time).Seconds()
		if span <= 0 {
			return a.LevelM, true
		}
		frac := t.Sub(a.Time).Seconds() / span
		return a.LevelM + (b.LevelM-a.LevelM)*(1-math.Cos(math.Pi*frac))/2, true
	}
	return 0, false
}
