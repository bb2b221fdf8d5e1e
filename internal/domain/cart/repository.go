package cart

import "context"

// SnapshotRepository persists the full cart contents under a single
// namespaced key, mirroring the durable-storage contract: every save
// overwrites the previous snapshot, and a missing or unreadable
// snapshot loads as an empty item list rather than an error.
type SnapshotRepository interface {
	// Save overwrites the stored snapshot with the given items
	Save(ctx context.Context, items []LineItem) error
	// Load returns the stored items, or an empty slice when nothing
	// usable is stored
	Load(ctx context.Context) ([]LineItem, error)
}
