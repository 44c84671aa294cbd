package state

import (
	"context"
	"testing"

	gametypes "github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.Get(ctx)
	assert.Error(t, err)

	want := gametypes.Snapshot{
		Phase:   gametypes.PhaseBallInFlight,
		TargetX: 120,
		Goals:   2,
		Misses:  1,
	}
	require.NoError(t, m.Set(ctx, want))

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInMemoryStateManager_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewInMemoryStateManager()
	assert.ErrorIs(t, m.Set(ctx, gametypes.Snapshot{}), context.Canceled)
}
