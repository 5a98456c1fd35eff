package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStageAt(t *testing.T) {
	placed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	step := 3 * time.Second

	cases := []struct {
		name     string
		elapsed  time.Duration
		step     int
		stage    TrackingStage
		progress int
	}{
		{"just placed", 0, 1, StageConfirmed, 25},
		{"mid first interval", 1 * time.Second, 1, StageConfirmed, 25},
		{"second stage", 3 * time.Second, 2, StagePreparing, 50},
		{"third stage", 6 * time.Second, 3, StageOutForDelivery, 75},
		{"delivered", 9 * time.Second, 4, StageDelivered, 100},
		{"halts at delivered", time.Hour, 4, StageDelivered, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StageAt(placed, placed.Add(tc.elapsed), step)
			assert.Equal(t, tc.step, got.Step)
			assert.Equal(t, tc.stage, got.Stage)
			assert.Equal(t, tc.progress, got.Progress)
		})
	}
}

func TestStageAtClockSkew(t *testing.T) {
	placed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	// a now before placedAt never underflows below step one
	got := StageAt(placed, placed.Add(-time.Minute), 3*time.Second)
	assert.Equal(t, 1, got.Step)
	assert.Equal(t, StageConfirmed, got.Stage)
}
