package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVelocity(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		want     Activity
	}{
		{"zero", 0, ActivityStill},
		{"creeping", 0.29, ActivityStill},
		{"walking boundary", 0.3, ActivityWalking},
		{"strolling", 1.0, ActivityWalking},
		{"running boundary", 2.5, ActivityRunning},
		{"running", 3.6, ActivityRunning},
		{"cycling boundary", 5.0, ActivityCycling},
		{"cycling", 7.5, ActivityCycling},
		{"driving boundary", 12.0, ActivityDriving},
		{"motorway", 36.0, ActivityDriving},
		{"flying boundary", 62.5, ActivityFlying},
		{"jet", 250.0, ActivityFlying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVelocity(tt.velocity))
		})
	}
}
