package state

import (
	"context"
	"fmt"
	"sync"

	gametypes "github.com/cbodonnell/penaltykick/pkg/game/types"
)

type InMemoryStateManager struct {
	lock     sync.RWMutex
	snapshot gametypes.Snapshot
	set      bool
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (gametypes.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return gametypes.Snapshot{}, err
	}
	m.lock.RLock()
	defer m.lock.RUnlock()

	if !m.set {
		return gametypes.Snapshot{}, fmt.Errorf("game state has not been set")
	}
	return m.snapshot, nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, snapshot gametypes.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.lock.Lock()
	defer m.lock.Unlock()

	m.snapshot = snapshot
	m.set = true
	return nil
}
