package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/thatsimonsguy/aq-monitor/internal/ens160"
	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

type events struct {
	log []string
}

func (e *events) add(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

func (e *events) index(entry string) int {
	for i, l := range e.log {
		if l == entry {
			return i
		}
	}
	return -1
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

type fakeWatchdog struct {
	clock *fakeClock
	feeds []time.Time
}

func (w *fakeWatchdog) Feed() error {
	w.feeds = append(w.feeds, w.clock.Now())
	return nil
}

// maxGap is the longest stretch of fake time between two feeds, counting from start.
func (w *fakeWatchdog) maxGap(start time.Time) time.Duration {
	var longest time.Duration
	prev := start
	for _, f := range w.feeds {
		if gap := f.Sub(prev); gap > longest {
			longest = gap
		}
		prev = f
	}
	return longest
}

type sample struct {
	aqi, eco2, tvoc int
}

var (
	validSample   = sample{aqi: 3, eco2: 650, tvoc: 120}
	invalidSample = sample{aqi: 0, eco2: 0, tvoc: 0}
)

// fakeSensor serves scripted samples; each AQI read advances to the next one
// and the last sample repeats.
type fakeSensor struct {
	ev          *events
	samples     []sample
	reads       int
	current     sample
	state       []byte
	modes       []uint8
	restored    []byte
	stateErr    error
	restoreErr  error
	readErr     error
	resetCalled int
}

func (s *fakeSensor) AirQualityIndex() (uint8, error) {
	idx := s.reads
	if idx >= len(s.samples) {
		idx = len(s.samples) - 1
	}
	s.current = s.samples[idx]
	s.reads++
	s.ev.add("read aqi")
	if s.readErr != nil {
		return 0, s.readErr
	}
	return uint8(s.current.aqi), nil
}

func (s *fakeSensor) EquivalentCO2() (int16, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return int16(s.current.eco2), nil
}

func (s *fakeSensor) TotalVOC() (int16, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return int16(s.current.tvoc), nil
}

func (s *fakeSensor) CalibrationState() ([]byte, error) {
	if s.stateErr != nil {
		return nil, s.stateErr
	}
	return append([]byte(nil), s.state...), nil
}

func (s *fakeSensor) SetCalibrationState(state []byte) error {
	if s.restoreErr != nil {
		return s.restoreErr
	}
	if len(state) != ens160.StateSize {
		return ens160.ErrInvalidArgument
	}
	s.restored = append([]byte(nil), state...)
	s.ev.add("restore calibration")
	return nil
}

func (s *fakeSensor) SetEnvironmentalCompensation(temperature, humidity float64) error {
	s.ev.add("compensation %.1f %.1f", temperature, humidity)
	return nil
}

func (s *fakeSensor) SetOperatingMode(mode uint8) error {
	s.modes = append(s.modes, mode)
	s.ev.add("mode %d", mode)
	return nil
}

func (s *fakeSensor) Reset() error {
	s.resetCalled++
	return nil
}

func (s *fakeSensor) countMode(mode uint8) int {
	n := 0
	for _, m := range s.modes {
		if m == mode {
			n++
		}
	}
	return n
}

type fakeClimate struct {
	ev          *events
	humidity    float64
	temperature float64
	err         error
	reads       int
}

func (c *fakeClimate) Read() (float64, float64, error) {
	c.reads++
	c.ev.add("climate read")
	return c.humidity, c.temperature, c.err
}

type drawnText struct {
	x, y int
	text string
}

type fakeDisplay struct {
	texts   []drawnText
	icon    model.Icon
	flushes int
}

func (d *fakeDisplay) Clear() {
	d.texts = nil
	d.icon = ""
}
func (d *fakeDisplay) DrawText(x, y int, text string) {
	d.texts = append(d.texts, drawnText{x, y, text})
}
func (d *fakeDisplay) DrawIcon(x, y int, icon model.Icon) { d.icon = icon }
func (d *fakeDisplay) Flush() error {
	d.flushes++
	return nil
}

func (d *fakeDisplay) textAt(y int) string {
	for _, t := range d.texts {
		if t.y == y {
			return t.text
		}
	}
	return ""
}

type fakeStore struct {
	ev               *events
	last             *model.Reading
	calibration      []byte
	saveReadingErr   error
	saveCalErr       error
	loadErr          error
	readingSaves     int
	calibrationSaves []time.Time
	clock            *fakeClock
}

func (s *fakeStore) LoadLastReading() (model.Reading, error) {
	if s.loadErr != nil {
		return model.Reading{}, s.loadErr
	}
	if s.last == nil {
		return model.Reading{}, fmt.Errorf("last reading: %w", model.ErrNotFound)
	}
	return *s.last, nil
}

func (s *fakeStore) SaveLastReading(r model.Reading) error {
	if s.saveReadingErr != nil {
		return s.saveReadingErr
	}
	s.last = &r
	s.readingSaves++
	s.ev.add("save reading")
	return nil
}

func (s *fakeStore) LoadCalibration() ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.calibration == nil {
		return nil, fmt.Errorf("calibration: %w", model.ErrNotFound)
	}
	return s.calibration, nil
}

func (s *fakeStore) SaveCalibration(state []byte) error {
	if s.saveCalErr != nil {
		return s.saveCalErr
	}
	s.calibration = append([]byte(nil), state...)
	s.calibrationSaves = append(s.calibrationSaves, s.clock.Now())
	s.ev.add("save calibration")
	return nil
}

type fakeLED struct {
	on      bool
	toggles int
}

func (l *fakeLED) On() {
	l.on = true
	l.toggles++
}
func (l *fakeLED) Off() { l.on = false }

var errIO = errors.New("i/o error")

type harness struct {
	ev      *events
	clock   *fakeClock
	dog     *fakeWatchdog
	sensor  *fakeSensor
	climate *fakeClimate
	display *fakeDisplay
	store   *fakeStore
	led     *fakeLED
	timing  Timing
}

func newHarness(samples ...sample) *harness {
	ev := &events{}
	clock := newFakeClock()
	if len(samples) == 0 {
		samples = []sample{validSample}
	}
	return &harness{
		ev:      ev,
		clock:   clock,
		dog:     &fakeWatchdog{clock: clock},
		sensor:  &fakeSensor{ev: ev, samples: samples, state: []byte{1, 2, 3, 4, 5, 6}},
		climate: &fakeClimate{ev: ev, humidity: 45.2, temperature: 22.5},
		display: &fakeDisplay{},
		store:   &fakeStore{ev: ev, clock: clock},
		led:     &fakeLED{},
		timing:  DefaultTiming(),
	}
}

func (h *harness) controller(opts Options) *Controller {
	return New(Deps{
		Sensor:   h.sensor,
		Climate:  h.climate,
		Display:  h.display,
		Store:    h.store,
		Watchdog: h.dog,
		LED:      h.led,
		Clock:    h.clock,
	}, h.timing, opts)
}
