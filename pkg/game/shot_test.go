package game

import (
	"testing"

	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestResolveShot(t *testing.T) {
	type args struct {
		ballX   float64
		keeperX float64
	}
	tests := []struct {
		name string
		args args
		want types.Outcome
	}{
		{
			name: "keeper save takes precedence over an on-target ball",
			args: args{ballX: 290, keeperX: 125},
			want: types.OutcomeSaved,
		},
		{
			name: "keeper save at the near post",
			args: args{ballX: 140, keeperX: 0},
			want: types.OutcomeSaved,
		},
		{
			name: "entirely left of the goal",
			args: args{ballX: 100, keeperX: 125},
			want: types.OutcomeMissed,
		},
		{
			name: "entirely right of the goal",
			args: args{ballX: 451, keeperX: 125},
			want: types.OutcomeMissed,
		},
		{
			name: "inside the goal away from the keeper",
			args: args{ballX: 160, keeperX: 200},
			want: types.OutcomeGoal,
		},
		{
			name: "touching the left edge of the goal is not a miss",
			args: args{ballX: 120, keeperX: 125},
			want: types.OutcomeGoal,
		},
		{
			name: "touching the right edge of the goal is not a miss",
			args: args{ballX: 450, keeperX: 0},
			want: types.OutcomeGoal,
		},
		{
			name: "touching the keeper is not a save",
			args: args{ballX: 245, keeperX: 125},
			want: types.OutcomeGoal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveShot(tt.args.ballX, tt.args.keeperX))
		})
	}
}
