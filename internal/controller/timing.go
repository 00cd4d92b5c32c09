package controller

import "time"

// Timing collects every fixed delay the loop uses.
type Timing struct {
	SampleInterval          time.Duration
	FeedInterval            time.Duration // longest step between watchdog feeds
	CalibrationSaveInterval time.Duration
	CalibratedBadge         time.Duration // how long "Calibrated" replaces the status label
	RecoveryDelay           time.Duration
	SoftReinit              time.Duration // idle -> standard toggle gap
	PreActivate             time.Duration
	Settle                  time.Duration
	BootDisplay             time.Duration
	BootBlink               time.Duration
	BootBlinks              int
	FaultPulse              time.Duration
	FaultPulses             int
}

func DefaultTiming() Timing {
	return Timing{
		SampleInterval:          30 * time.Second,
		FeedInterval:            time.Second,
		CalibrationSaveInterval: 60 * time.Second,
		CalibratedBadge:         10 * time.Second,
		RecoveryDelay:           time.Second,
		SoftReinit:              100 * time.Millisecond,
		PreActivate:             500 * time.Millisecond,
		Settle:                  2 * time.Second,
		BootDisplay:             3 * time.Second,
		BootBlink:               500 * time.Millisecond,
		BootBlinks:              3,
		FaultPulse:              50 * time.Millisecond,
		FaultPulses:             5,
	}
}
