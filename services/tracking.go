package services

import "time"

// The customer-facing tracking is a cosmetic simulation, not a real
// delivery tracker: a one-way progression advanced purely by elapsed
// time since the order was placed. Modelling it as a function of time
// keeps it testable without timers.

type TrackingStage string

const (
	StageConfirmed      TrackingStage = "confirmed"
	StagePreparing      TrackingStage = "preparing"
	StageOutForDelivery TrackingStage = "out_for_delivery"
	StageDelivered      TrackingStage = "delivered"
)

var trackingStages = []TrackingStage{
	StageConfirmed, StagePreparing, StageOutForDelivery, StageDelivered,
}

type Tracking struct {
	Step     int           `json:"step"` // 1..4
	Stage    TrackingStage `json:"stage"`
	Progress int           `json:"progress"` // percent
}

// StageAt returns the simulated state after the given elapsed time, one
// step per interval, halting at delivered.
func StageAt(placedAt, now time.Time, stepInterval time.Duration) Tracking {
	step := 1
	if now.After(placedAt) {
		step += int(now.Sub(placedAt) / stepInterval)
	}
	if step > len(trackingStages) {
		step = len(trackingStages)
	}
	return Tracking{
		Step:     step,
		Stage:    trackingStages[step-1],
		Progress: step * 100 / len(trackingStages),
	}
}
