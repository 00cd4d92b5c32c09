// Package insights derives the slower figures of the sample stream: rolling
// eCO2 averages with a trend, the heat index and a comfort rating.
package insights

import (
	"time"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// Trend compares the mean eCO2 of the latest five history points with the
// five before them.
type Trend string

const (
	TrendUnknown Trend = "unknown"
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

const (
	// Granularity is the minimum spacing of eCO2 history points.
	Granularity = time.Minute
	// TrendThreshold is the change in ppm between the two windows that counts
	// as rising or falling.
	TrendThreshold = 50

	window      = 5
	historySize = 15
)

// Snapshot is the tracker's view after the latest sample.
type Snapshot struct {
	At      time.Time
	FirstAt time.Time

	// Averages cover the newest 5 and 15 history points, or fewer while the
	// history fills. Zero before the first usable eCO2 value.
	ECO2Avg5  int
	ECO2Avg15 int
	Trend     Trend

	// Climate is false when humidity or temperature was unavailable; the heat
	// figures are then left empty.
	Climate   bool
	HeatIndex float64
	Heat      HeatStatus
	Comfort   int
}

type Tracker struct {
	eco2    ring
	addedAt time.Time
	firstAt time.Time
	last    Snapshot
}

func NewTracker() *Tracker {
	return &Tracker{eco2: ring{buf: make([]int, historySize)}}
}

// Add folds in a reading taken at at. eCO2 joins the history at most once
// per Granularity and only when it is above the sensor floor.
func (t *Tracker) Add(at time.Time, r model.Reading) Snapshot {
	if t.firstAt.IsZero() {
		t.firstAt = at
	}
	if r.ECO2 > model.ECO2Floor && (t.addedAt.IsZero() || at.Sub(t.addedAt) >= Granularity) {
		t.eco2.push(r.ECO2)
		t.addedAt = at
	}

	s := Snapshot{
		At:        at,
		FirstAt:   t.firstAt,
		ECO2Avg5:  mean(t.eco2.newest(window)),
		ECO2Avg15: mean(t.eco2.newest(historySize)),
		Trend:     t.trend(),
		Heat:      HeatUnknown,
	}
	if r.Humidity != 0 && r.Temperature != 0 {
		s.Climate = true
		s.HeatIndex = HeatIndex(r.Temperature, r.Humidity)
		s.Heat = HeatStatusFor(s.HeatIndex)
		s.Comfort = ComfortIndex(r.Temperature, r.Humidity)
	}
	t.last = s
	return s
}

// Last returns the snapshot of the most recent Add.
func (t *Tracker) Last() Snapshot {
	return t.last
}

func (t *Tracker) trend() Trend {
	points := t.eco2.newest(2 * window)
	if len(points) < 2*window {
		return TrendUnknown
	}
	diff := mean(points[window:]) - mean(points[:window])
	switch {
	case diff > TrendThreshold:
		return TrendRising
	case diff < -TrendThreshold:
		return TrendFalling
	default:
		return TrendStable
	}
}

func mean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}

// ring keeps the newest len(buf) values.
type ring struct {
	buf   []int
	next  int
	count int
}

func (r *ring) push(v int) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// newest returns up to n of the most recent values, oldest first.
func (r *ring) newest(n int) []int {
	if n > r.count {
		n = r.count
	}
	out := make([]int, n)
	for i := range out {
		out[i] = r.buf[(r.next-n+i+len(r.buf))%len(r.buf)]
	}
	return out
}
