package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"foodmarket/pkg/logger"
)

const keyPrefix = "cart:"

// Manager couples the pure reducer with a snapshot store: every mutation
// runs the reducer and persists the result under the session's key.
type Manager struct {
	store SnapshotStore
	log   logger.ILogger
}

func NewManager(store SnapshotStore, log logger.ILogger) *Manager {
	return &Manager{store: store, log: log}
}

// Get restores the session's cart. A missing or corrupt snapshot yields an
// empty cart rather than an error.
func (m *Manager) Get(ctx context.Context, sessionID string) State {
	data, err := m.store.Load(ctx, keyPrefix+sessionID)
	if err != nil {
		if err != ErrNoSnapshot {
			m.log.Warning("failed to load cart snapshot", logger.String("session", sessionID), logger.Error(err))
		}
		return Empty()
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		m.log.Warning("corrupt cart snapshot, starting empty", logger.String("session", sessionID), logger.Error(err))
		return Empty()
	}
	if state.Items == nil {
		state.Items = []Line{}
	}
	return state
}

func (m *Manager) save(ctx context.Context, sessionID string, state State) (State, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return state, fmt.Errorf("marshal cart: %w", err)
	}
	if err := m.store.Save(ctx, keyPrefix+sessionID, data); err != nil {
		return state, fmt.Errorf("save cart: %w", err)
	}
	return state, nil
}

func (m *Manager) AddItem(ctx context.Context, sessionID string, line Line, quantity int) (State, error) {
	return m.save(ctx, sessionID, AddItem(m.Get(ctx, sessionID), line, quantity))
}

func (m *Manager) RemoveItem(ctx context.Context, sessionID, menuItemID string) (State, error) {
	return m.save(ctx, sessionID, RemoveItem(m.Get(ctx, sessionID), menuItemID))
}

func (m *Manager) UpdateQuantity(ctx context.Context, sessionID, menuItemID string, quantity int) (State, error) {
	return m.save(ctx, sessionID, UpdateQuantity(m.Get(ctx, sessionID), menuItemID, quantity))
}

func (m *Manager) UpdateInstructions(ctx context.Context, sessionID, menuItemID, instructions string) (State, error) {
	return m.save(ctx, sessionID, UpdateInstructions(m.Get(ctx, sessionID), menuItemID, instructions))
}

func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, keyPrefix+sessionID)
}
