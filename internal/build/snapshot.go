package build

import (
	"time"

	"github.com/google/uuid"

	"github.com/buildmaster/cli/internal/api"
	"github.com/buildmaster/cli/internal/catalog"
)

// Snapshot is a named, frozen copy of a build taken at save time.
// Later edits to the working selection never reach back into it.
type Snapshot struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Components Selection `json:"components"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// newSnapshot freezes the selection under a name. The total is derived
// here, at freeze time, so the snapshot records exactly the sum of the
// parts it contains.
func newSnapshot(name string, sel Selection, now time.Time) Snapshot {
	frozen := sel.clone()
	return Snapshot{
		ID:         uuid.NewString(),
		Name:       name,
		Components: frozen,
		TotalPrice: frozen.Total(),
		CreatedAt:  now,
	}
}

// Wire converts the snapshot into the backend's save payload.
func (s Snapshot) Wire() api.BuildConfig {
	return api.BuildConfig{
		ID:         s.ID,
		Name:       s.Name,
		Components: map[catalog.SlotType]catalog.Component(s.Components),
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
	}
}

// SnapshotFromWire converts a stored build back into a snapshot.
func SnapshotFromWire(cfg api.BuildConfig) Snapshot {
	return Snapshot{
		ID:         cfg.ID,
		Name:       cfg.Name,
		Components: Selection(cfg.Components),
		TotalPrice: cfg.TotalPrice,
		CreatedAt:  cfg.CreatedAt,
	}
}
