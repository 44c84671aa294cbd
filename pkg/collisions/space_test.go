package collisions

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestHorizontalOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    *resolv.Object
		b    *resolv.Object
		want bool
	}{
		{
			name: "overlapping",
			a:    resolv.NewObject(290, 0, 30, 30),
			b:    resolv.NewObject(275, 0, 50, 20),
			want: true,
		},
		{
			name: "touching right edge",
			a:    resolv.NewObject(245, 0, 30, 30),
			b:    resolv.NewObject(275, 0, 50, 20),
			want: false,
		},
		{
			name: "touching left edge",
			a:    resolv.NewObject(325, 0, 30, 30),
			b:    resolv.NewObject(275, 0, 50, 20),
			want: false,
		},
		{
			name: "apart",
			a:    resolv.NewObject(0, 0, 30, 30),
			b:    resolv.NewObject(275, 0, 50, 20),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HorizontalOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, HorizontalOverlap(tt.b, tt.a))
		})
	}
}

func TestHorizontallyOutside(t *testing.T) {
	assert.True(t, HorizontallyOutside(resolv.NewObject(100, 0, 30, 30), 150, 450))
	assert.False(t, HorizontallyOutside(resolv.NewObject(120, 0, 30, 30), 150, 450))
	assert.False(t, HorizontallyOutside(resolv.NewObject(450, 0, 30, 30), 150, 450))
	assert.True(t, HorizontallyOutside(resolv.NewObject(451, 0, 30, 30), 150, 450))
}

func TestNewFieldSpace(t *testing.T) {
	space := NewFieldSpace()

	goals, posts := 0, 0
	for _, obj := range space.Objects() {
		if obj.HasTags(TagGoal) {
			goals++
		} else if obj.HasTags(TagPost) {
			posts++
		}
	}
	assert.Equal(t, 1, goals)
	assert.Equal(t, 2, posts)
}

func TestMove(t *testing.T) {
	space := NewFieldSpace()
	ball := resolv.NewObject(285, 100, 30, 30, TagBall)
	space.Add(ball)

	Move(ball, 400, 350)
	assert.Equal(t, 400.0, ball.Position.X)
	assert.Equal(t, 350.0, ball.Position.Y)
}
