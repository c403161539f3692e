package build

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/buildmaster/cli/internal/api"
	"github.com/buildmaster/cli/internal/catalog"
	"github.com/buildmaster/cli/internal/state"
)

// Saver persists a named build remotely. *api.Client satisfies it.
type Saver interface {
	SaveBuild(ctx context.Context, cfg api.BuildConfig) (api.BuildConfig, error)
}

// Store is the working build. Every mutation updates the in-memory
// selection first and then mirrors it to disk; a failed mirror degrades
// persistence but never blocks the edit, and the failure stays visible
// through LastError until a later mirror succeeds.
type Store struct {
	mu        sync.Mutex
	selection Selection
	records   *state.Store
	remote    Saver
	lastErr   error
	now       func() time.Time
}

// mirror is the durable form of the working build.
type mirror struct {
	Components Selection `json:"components"`
	TotalPrice float64   `json:"totalPrice"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewStore creates an empty build store.
func NewStore(records *state.Store, remote Saver) *Store {
	return &Store{
		selection: make(Selection),
		records:   records,
		remote:    remote,
		now:       time.Now,
	}
}

// Rehydrate restores the working build from disk. A corrupt mirror is
// reported and the store comes up empty rather than half-restored.
func (s *Store) Rehydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var m mirror
	found, err := s.records.Load(state.KeyBuild, &m)
	if err != nil {
		s.selection = make(Selection)
		return fmt.Errorf("restoring build: %w", err)
	}
	if !found {
		return nil
	}
	if m.Components == nil {
		m.Components = make(Selection)
	}
	s.selection = m.Components
	return nil
}

// AddOrReplace installs a component in its slot. A component whose slot
// is already occupied replaces the occupant; the total follows in the
// same step.
func (s *Store) AddOrReplace(c catalog.Component) error {
	if c.ID == "" {
		return errors.New("component has no id")
	}
	if c.Slot == "" {
		return fmt.Errorf("component %q has no slot type", c.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.withComponent(c)
	s.persistLocked()
	return nil
}

// Remove vacates a slot. Removing an empty slot is a no-op and reports
// false.
func (s *Store) Remove(slot catalog.SlotType) bool {
	slot = catalog.NormalizeSlotType(string(slot))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selection[slot]; !ok {
		return false
	}
	s.selection = s.selection.withoutSlot(slot)
	s.persistLocked()
	return true
}

// Clear empties the whole selection. Clearing an empty build is a
// no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.selection) == 0 {
		return
	}
	s.selection = make(Selection)
	s.persistLocked()
}

// Install replaces the working build with a saved one.
func (s *Store) Install(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Components == nil {
		s.selection = make(Selection)
	} else {
		s.selection = snap.Components.clone()
	}
	s.persistLocked()
}

// Selection returns a copy of the current selection.
func (s *Store) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.clone()
}

// Total returns the current build price.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Total()
}

// Component returns the occupant of a slot, when there is one.
func (s *Store) Component(slot catalog.SlotType) (catalog.Component, bool) {
	slot = catalog.NormalizeSlotType(string(slot))
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.selection[slot]
	return c, ok
}

// Len returns the number of occupied slots.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selection)
}

// LastError reports the most recent persistence failure, or nil when
// the mirror is healthy. Mutations succeed regardless; this is how the
// degradation stays visible.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Save freezes the selection under a name and sends it to the backend.
// The call blocks until the backend confirms; nothing is marked saved
// on failure, so a retry sends the same content again.
func (s *Store) Save(ctx context.Context, name string) (Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Snapshot{}, errors.New("build name must not be empty")
	}

	s.mu.Lock()
	if len(s.selection) == 0 {
		s.mu.Unlock()
		return Snapshot{}, errors.New("cannot save an empty build")
	}
	snap := newSnapshot(name, s.selection, s.now())
	s.mu.Unlock()

	saved, err := s.remote.SaveBuild(ctx, snap.Wire())
	if err != nil {
		return Snapshot{}, fmt.Errorf("saving build %q: %w", name, err)
	}
	if saved.ID != "" {
		snap.ID = saved.ID
	}
	return snap, nil
}

// persistLocked mirrors the selection to disk. Callers hold the lock.
func (s *Store) persistLocked() {
	err := s.records.Save(state.KeyBuild, mirror{
		Components: s.selection,
		TotalPrice: s.selection.Total(),
		UpdatedAt:  s.now(),
	})
	if err != nil {
		s.lastErr = fmt.Errorf("mirroring build: %w", err)
		return
	}
	s.lastErr = nil
}
