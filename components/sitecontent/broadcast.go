package sitecontent

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const broadcastBuffer = 8

// BroadcastHook fans content events out to in-process subscribers such as
// live preview tabs. It satisfies HostHook so it can sit inside a MultiHost.
type BroadcastHook struct {
	mu   sync.RWMutex
	subs map[int]chan ContentEvent
	next int
}

// NewBroadcastHook creates a broadcast hook.
func NewBroadcastHook() *BroadcastHook {
	return &BroadcastHook{
		subs: make(map[int]chan ContentEvent),
	}
}

// ContentChanged implements HostHook. Slow subscribers miss events rather
// than block editors.
func (h *BroadcastHook) ContentChanged(_ context.Context, event ContentEvent) error {
	h.publish(event)
	return nil
}

// ExitToSite implements HostHook.
func (h *BroadcastHook) ExitToSite(context.Context) {
	h.publish(ContentEvent{Reason: "exit"})
}

// Logout implements HostHook.
func (h *BroadcastHook) Logout(context.Context) {
	h.publish(ContentEvent{Reason: "logout"})
}

func (h *BroadcastHook) publish(event ContentEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe returns a channel of content events and a cancel func.
func (h *BroadcastHook) Subscribe() (<-chan ContentEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan ContentEvent, broadcastBuffer)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the request and streams content events as JSON.
func (h *BroadcastHook) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer conn.Close()

	events, cancel := h.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}

// ServeSSE streams content events as Server-Sent Events.
func (h *BroadcastHook) ServeSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	events, cancel := h.Subscribe()
	defer cancel()

	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return
			}
			if _, err := w.Write([]byte("event: " + eventName(event) + "\ndata: ")); err != nil {
				return
			}
			if _, err := w.Write(append(payload, '\n', '\n')); err != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}
}

func eventName(event ContentEvent) string {
	if event.Reason == "" {
		return "content"
	}
	return event.Reason
}
