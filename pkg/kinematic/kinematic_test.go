package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 285.0, Lerp(285, 400, 0))
	assert.Equal(t, 400.0, Lerp(285, 400, 1))
	assert.Equal(t, 342.5, Lerp(285, 400, 0.5))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "at start", v: 100, want: 0},
		{name: "half way", v: 225, want: 0.5},
		{name: "at end", v: 350, want: 1},
		{name: "past end", v: 352, want: 1},
		{name: "before start", v: 90, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.v, 100, 350))
		})
	}
	assert.Equal(t, 1.0, Progress(5, 5, 5))
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{name: "step right", current: 125, target: 200, want: 128},
		{name: "step left", current: 125, target: 0, want: 122},
		{name: "land on target", current: 125, target: 127, want: 127},
		{name: "land on target from right", current: 125, target: 124, want: 124},
		{name: "already there", current: 125, target: 125, want: 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepToward(tt.current, tt.target, 3))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-4, 0, 580))
	assert.Equal(t, 580.0, Clamp(584, 0, 580))
	assert.Equal(t, 12.0, Clamp(12, 0, 580))
}
