package noaa_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastalops/ctas/internal/noaa"
)

func TestInterpolateLevel(t *testing.T) {
	t.Parallel()

	low := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	high := low.Add(6 * time.Hour)
	preds := []noaa.TidePrediction{
		{Time: low, LevelM: 0.2, Type: "L"},
		{Time: high, LevelM: 2.2, Type: "H"},
	}

	t.Run("midpoint is halfway between extremes", func(t *testing.T) {
		t.Parallel()

		lvl, ok := noaa.InterpolateLevel(preds, low.Add(3*time.Hour))
		require.True(t, ok)
		assert.InDelta(t, 1.2, lvl, 0.001)
	})

	t.Run("at an extreme returns that extreme", func(t *testing.T) {
		t.Parallel()

		lvl, ok := noaa.InterpolateLevel(preds, high)
		require.True(t, ok)
		assert.InDelta(t, 2.2, lvl, 0.001)
	})

	t.Run("quarter point sits below linear midway", func(t *testing.T) {
		t.Parallel()

		lvl, ok := noaa.InterpolateLevel(preds, low.Add(90*time.Minute))
		require.True(t, ok)
		// The cosine curve leaves the low extreme slowly.
		assert.Less(t, lvl, 0.7)
		assert.Greater(t, lvl, 0.2)
	})

	t.Run("outside the range reports no level", func(t *testing.T) {
		t.Parallel()

		_, ok := noaa.InterpolateLevel(preds, high.Add(time.Hour))
		assert.False(t, ok)

		_, ok = noaa.InterpolateLevel(nil, low)
		assert.False(t, ok)
	})
}
