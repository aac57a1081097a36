package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationAccumulator(t *testing.T) {
	da := NewDurationAccumulator()
	for _, d := range []float64{300, 600, 900} {
		da.UpdateAccumulator(d)
	}

	assert.Equal(t, 3, da.Counter)
	assert.Equal(t, 1800.0, da.TotalDuration)
	assert.Equal(t, 600.0, da.GetAverageDuration())
	assert.Equal(t, 30.0, ToMinutes(da.TotalDuration))
	assert.Equal(t, 0.5, ToHours(da.TotalDuration))
	assert.InDelta(t, 0.17, ToHours(da.GetAverageDuration()), 0.005)
}

func TestDurationAccumulator_EmptyAveragePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDurationAccumulator().GetAverageDuration()
	})
}
