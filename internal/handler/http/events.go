package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/sse"
)

const keepaliveInterval = 30 * time.Second

type EventHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	hub *sse.Hub
}

func NewEventHandler(hub *sse.Hub) EventHandler {
	return &eventHandlerImpl{hub: hub}
}

// Stream pushes dashboard events for the caller's role until the client goes away.
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		response.HandleError(w, err)
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

	events, cancel := h.hub.Subscribe(string(s.Role))
	defer cancel()

	fmt.Fprintf(w, "event: connected\ndata: {\"role\":%q}\n\n", s.Role)
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := sse.Write(w, event); err != nil {
				slog.Error("Stream write error", "error", err)
				return
			}
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
