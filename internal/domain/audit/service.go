package audit

import (
	"context"

	"github.com/srad-secure/srad-backend-go/internal/pkg/sse"
)

type AuditService interface {
	// Record appends one entry attributed to the actor found in ctx.
	Record(ctx context.Context, req RecordRequest) (Entry, error)

	// RecordAs appends one entry attributed to an explicit actor.
	RecordAs(ctx context.Context, actor Actor, req RecordRequest) (Entry, error)

	List(ctx context.Context, filter EntryFilter) ([]EntryResponse, error)

	// Subscribe attaches a listener to the live feed of appended entries.
	Subscribe(ctx context.Context) (<-chan sse.Event, func())
}
