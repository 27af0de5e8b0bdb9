package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
	"github.com/srad-secure/srad-backend-go/internal/pkg/jwt"
)

const streamKeepalive = 30 * time.Second

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService audit.AuditService
	jwtService   jwt.Service
	keepalive    time.Duration
}

// List implements AuditHandler. Entries come newest first.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := intQuery(r, "limit", 0)
	if !ok {
		response.BadRequest(w, "limit must be a non-negative integer", nil)
		return
	}

	filter := audit.EntryFilter{
		Action:     optionalQuery[audit.Action](r, "action"),
		EntityType: optionalQuery[audit.EntityType](r, "entity_type"),
		EntityID:   optionalQuery[string](r, "entity_id"),
		Limit:      limit,
	}
	if filter.Action != nil && !filter.Action.Valid() {
		response.HandleError(w, audit.ErrUnknownAction)
		return
	}
	if filter.EntityType != nil && !filter.EntityType.Valid() {
		response.HandleError(w, audit.ErrUnknownEntityType)
		return
	}

	entries, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListAudit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, entries, limit)
}

// Stream handles the SSE connection for the live operations feed
func (h *AuditHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	operatorID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.auditService.Subscribe(r.Context())
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"operator_id\":%q}\n\n", operatorID)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("Stream encode error", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func NewAuditHandler(auditService audit.AuditService, jwtService jwt.Service) AuditHandler {
	return &AuditHandlerImpl{
		auditService: auditService,
		jwtService:   jwtService,
		keepalive:    streamKeepalive,
	}
}
