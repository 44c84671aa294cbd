package state

import (
	"context"

	gametypes "github.com/cbodonnell/penaltykick/pkg/game/types"
)

// StateManager provides shared access to the latest game snapshot.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns the most recently published snapshot.
	Get(ctx context.Context) (gametypes.Snapshot, error)
	// Set publishes a snapshot.
	Set(ctx context.Context, snapshot gametypes.Snapshot) error
}
