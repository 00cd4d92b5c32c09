package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func reading(eco2 int) model.Reading {
	return model.Reading{AQI: 2, ECO2: eco2, TVOC: 40, Humidity: 45, Temperature: 22}
}

func TestRing_Newest(t *testing.T) {
	r := ring{buf: make([]int, 3)}
	assert.Empty(t, r.newest(2))

	r.push(1)
	r.push(2)
	assert.Equal(t, []int{1, 2}, r.newest(5))

	r.push(3)
	r.push(4)
	assert.Equal(t, []int{2, 3, 4}, r.newest(3))
	assert.Equal(t, []int{3, 4}, r.newest(2))
}

func TestTracker_FirstSample(t *testing.T) {
	tr := NewTracker()
	s := tr.Add(t0, reading(700))

	assert.Equal(t, t0, s.At)
	assert.Equal(t, t0, s.FirstAt)
	assert.Equal(t, 700, s.ECO2Avg5)
	assert.Equal(t, 700, s.ECO2Avg15)
	assert.Equal(t, TrendUnknown, s.Trend)
	assert.True(t, s.Climate)
	assert.Equal(t, HeatNone, s.Heat)
	assert.Equal(t, 0, s.Comfort)
	assert.Equal(t, s, tr.Last())
}

func TestTracker_OnePointPerMinute(t *testing.T) {
	tr := NewTracker()
	tr.Add(t0, reading(600))
	s := tr.Add(t0.Add(30*time.Second), reading(1000))
	assert.Equal(t, 600, s.ECO2Avg5, "second sample within the minute is not recorded")
	assert.Equal(t, t0, s.FirstAt)
	assert.Equal(t, t0.Add(30*time.Second), s.At)

	s = tr.Add(t0.Add(time.Minute), reading(1000))
	assert.Equal(t, 800, s.ECO2Avg5)
}

func TestTracker_SkipsFloorAndMissingClimate(t *testing.T) {
	tr := NewTracker()
	s := tr.Add(t0, model.Reading{ECO2: model.ECO2Floor})
	assert.Zero(t, s.ECO2Avg5)
	assert.False(t, s.Climate)
	assert.Equal(t, HeatUnknown, s.Heat)

	// a floor value does not start the minute either
	s = tr.Add(t0.Add(time.Second), reading(900))
	assert.Equal(t, 900, s.ECO2Avg5)
	assert.Equal(t, t0, s.FirstAt)
}

func TestTracker_Trend(t *testing.T) {
	tests := []struct {
		name     string
		step     int
		expected Trend
	}{
		{"rising", 20, TrendRising},
		{"falling", -20, TrendFalling},
		{"stable", 5, TrendStable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker()
			var s Snapshot
			for i := 0; i < 2*window; i++ {
				if i == 2*window-1 {
					require.Equal(t, TrendUnknown, s.Trend, "needs ten points")
				}
				s = tr.Add(t0.Add(time.Duration(i)*time.Minute), reading(1000+i*tc.step))
			}
			assert.Equal(t, tc.expected, s.Trend)
		})
	}
}

func TestTracker_AveragesWindow(t *testing.T) {
	tr := NewTracker()
	var s Snapshot
	// 20 points; only the newest 15 count
	for i := 0; i < 20; i++ {
		s = tr.Add(t0.Add(time.Duration(i)*time.Minute), reading(500+100*i))
	}
	// newest five: 2000..2400, newest fifteen: 1000..2400
	assert.Equal(t, 2200, s.ECO2Avg5)
	assert.Equal(t, 1700, s.ECO2Avg15)
	assert.Equal(t, TrendRising, s.Trend)
}

func TestTracker_HotAndHumid(t *testing.T) {
	s := NewTracker().Add(t0, model.Reading{ECO2: 800, Humidity: 70, Temperature: 30})
	assert.InDelta(t, 35.04, s.HeatIndex, 0.01)
	assert.Equal(t, HeatExtremeCaution, s.Heat)
	assert.Equal(t, 2, s.Comfort)
}
