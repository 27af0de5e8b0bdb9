package audit

import "context"

// AuditRepository is append-only: entries are never updated or removed.
type AuditRepository interface {
	Append(ctx context.Context, entry Entry) error

	// List returns entries newest first.
	List(ctx context.Context, filter EntryFilter) ([]Entry, error)
}
