package objects

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObject struct {
	*BaseObject

	log *[]string
}

func newRecordingObject(id string, zIndex int, log *[]string) *recordingObject {
	return &recordingObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		log:        log,
	}
}

func (o *recordingObject) Init() error {
	*o.log = append(*o.log, "init "+o.GetID())
	return nil
}

func (o *recordingObject) Destroy() error {
	*o.log = append(*o.log, "destroy "+o.GetID())
	return nil
}

func TestBaseObject_children(t *testing.T) {
	log := []string{}
	root := NewBaseObject("root", nil)

	require.NoError(t, root.AddChild("a", newRecordingObject("a", 0, &log)))
	require.NoError(t, root.AddChild("b", newRecordingObject("b", 0, &log)))
	assert.Error(t, root.AddChild("a", newRecordingObject("a", 0, &log)))

	children := root.GetChildren()
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].GetID())
	assert.Equal(t, "b", children[1].GetID())
	assert.Equal(t, root, root.GetChild("a").GetParent())

	require.NoError(t, root.GetChild("a").RemoveFromParent())
	assert.Nil(t, root.GetChild("a"))
	assert.Error(t, root.RemoveChild("a"))

	assert.Equal(t, []string{"init a", "init b", "destroy a"}, log)
}

func TestSortedZIndexObject_order(t *testing.T) {
	log := []string{}
	root := NewSortedZIndexObject("root")
	for i, z := range []int{3, 1, 2, 1, 0} {
		id := fmt.Sprintf("child-%d", i)
		require.NoError(t, root.AddChild(id, newRecordingObject(id, z, &log)))
	}

	ids := []string{}
	for _, child := range root.GetChildren() {
		ids = append(ids, child.GetID())
	}
	assert.Equal(t, []string{"child-4", "child-1", "child-3", "child-2", "child-0"}, ids)

	require.NoError(t, root.GetChild("child-3").RemoveFromParent())
	assert.Len(t, root.GetChildren(), 4)
	assert.Nil(t, root.GetChild("child-3"))
}

func TestTextEffect_expires(t *testing.T) {
	root := NewSortedZIndexObject("root")
	effect := NewTextEffect("effect", NewTextEffectOptions{Text: "GOAAALLL!!!", TTL: 1})
	require.NoError(t, root.AddChild("effect", effect))

	require.NoError(t, UpdateTree(root))
	assert.Empty(t, root.GetChildren())
}

func TestScreenY(t *testing.T) {
	assert.Equal(t, float32(400), ScreenY(0, 0))
	assert.Equal(t, float32(370), ScreenY(0, 30))
	assert.Equal(t, float32(30), ScreenY(350, 20))
}

func TestMessageColor(t *testing.T) {
	tests := []struct {
		name     string
		snapshot types.Snapshot
		want     color.Color
	}{
		{name: "aiming", snapshot: types.Snapshot{}, want: color.White},
		{name: "in flight", snapshot: types.Snapshot{Phase: types.PhaseBallInFlight}, want: color.White},
		{name: "goal", snapshot: types.Snapshot{Resolved: true, LastOutcome: types.OutcomeGoal}, want: goalColor},
		{name: "saved", snapshot: types.Snapshot{Resolved: true, LastOutcome: types.OutcomeSaved}, want: savedColor},
		{name: "missed", snapshot: types.Snapshot{Resolved: true, LastOutcome: types.OutcomeMissed}, want: missedColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageColor(tt.snapshot))
		})
	}
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "GOALS: 3  MISSES: 1", ScoreText(3, 1))
}
