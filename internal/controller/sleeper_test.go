package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleeper_WaitFeedsEveryStep(t *testing.T) {
	clock := newFakeClock()
	dog := &fakeWatchdog{clock: clock}
	s := NewSleeper(clock, dog, time.Second)
	start := clock.Now()

	require.NoError(t, s.Wait(context.Background(), 3500*time.Millisecond))

	assert.Equal(t, 3500*time.Millisecond, clock.Now().Sub(start))
	require.Len(t, dog.feeds, 4)
	assert.Equal(t, start.Add(3500*time.Millisecond), dog.feeds[3])
	assert.Equal(t, time.Second, dog.maxGap(start))
}

func TestSleeper_ZeroDuration(t *testing.T) {
	clock := newFakeClock()
	dog := &fakeWatchdog{clock: clock}
	s := NewSleeper(clock, dog, time.Second)

	require.NoError(t, s.Wait(context.Background(), 0))
	assert.Empty(t, dog.feeds)
}

func TestSleeper_Cancelled(t *testing.T) {
	clock := newFakeClock()
	s := NewSleeper(clock, &fakeWatchdog{clock: clock}, time.Second)
	start := clock.Now()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Wait(ctx, 5*time.Second), context.Canceled)
	assert.Equal(t, start, clock.Now())
}

func TestSleeper_DefaultsStepAndNilWatchdog(t *testing.T) {
	clock := newFakeClock()
	s := NewSleeper(clock, nil, 0)
	start := clock.Now()

	require.NoError(t, s.Wait(context.Background(), 2*time.Second))
	assert.Equal(t, 2*time.Second, clock.Now().Sub(start))
}

type failingWatchdog struct{ calls int }

func (w *failingWatchdog) Feed() error {
	w.calls++
	return errIO
}

func TestSleeper_FeedErrorIsLogged(t *testing.T) {
	clock := newFakeClock()
	dog := &failingWatchdog{}
	s := NewSleeper(clock, dog, 500*time.Millisecond)

	require.NoError(t, s.Wait(context.Background(), time.Second))
	assert.Equal(t, 2, dog.calls)
}
