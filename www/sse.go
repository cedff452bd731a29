package www

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"fleetdash/engine"
	"fleetdash/metrics"
)

const (
	sseBuffer    = 8
	sseKeepalive = 25 * time.Second
)

type sseFrame struct {
	event string
	data  []byte
}

// EventHub fans engine events out to connected /events streams. A client
// whose buffer is full misses the frame.
type EventHub struct {
	mu      sync.Mutex
	clients map[chan sseFrame]struct{}
	bus     *engine.EventBus
	subID   int
	log     *zap.SugaredLogger
	done    chan struct{}
	once    sync.Once
}

func NewEventHub(bus *engine.EventBus, log *zap.SugaredLogger) *EventHub {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EventHub{
		clients: make(map[chan sseFrame]struct{}),
		bus:     bus,
		log:     log,
		done:    make(chan struct{}),
	}
}

// Start subscribes the hub to live ticks and connection changes.
func (h *EventHub) Start() {
	h.subID = h.bus.SubscribeTypes(h.onEvent,
		engine.EventLiveTick,
		engine.EventMessagingConnected,
		engine.EventMessagingDisconnected,
		engine.EventRedisConnected,
		engine.EventRedisDisconnected,
	)
}

// Stop unsubscribes and ends every open stream.
func (h *EventHub) Stop() {
	h.once.Do(func() {
		h.bus.Unsubscribe(h.subID)
		close(h.done)
	})
}

func (h *EventHub) onEvent(evt engine.Event) {
	var payload any = evt.Payload
	if tick, ok := evt.Payload.(engine.LiveTickEvent); ok {
		payload = tick.Snapshot
	}
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Warnf("www: encode %s event: %v", evt.Type, err)
		return
	}
	h.Broadcast(evt.Type.String(), data)
}

// Broadcast queues a frame for every client.
func (h *EventHub) Broadcast(event string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- sseFrame{event: event, data: data}:
		default:
		}
	}
}

func (h *EventHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *EventHub) add() chan sseFrame {
	ch := make(chan sseFrame, sseBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	metrics.SSEClients.Inc()
	return ch
}

func (h *EventHub) remove(ch chan sseFrame) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	metrics.SSEClients.Dec()
}

func (h *EventHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch := h.add()
	defer h.remove(ch)

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(sseKeepalive)
	defer keepalive.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-h.done:
			return
		case <-keepalive.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case f := <-ch:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", f.event, f.data)
			flusher.Flush()
		}
	}
}
