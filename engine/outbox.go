package engine

import (
	"sync"

	"go.uber.org/zap"

	"fleetdash/messaging"
	"fleetdash/metrics"
)

type outboxMsg struct {
	msgType string
	payload any
}

// outbox publishes engine events off the emitting goroutine. When the buffer
// is full new messages are dropped.
type outbox struct {
	client *messaging.Client
	source func() string
	log    *zap.SugaredLogger
	queue  chan outboxMsg
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func newOutbox(client *messaging.Client, source func() string, log *zap.SugaredLogger, size int) *outbox {
	return &outbox{
		client: client,
		source: source,
		log:    log,
		queue:  make(chan outboxMsg, size),
		done:   make(chan struct{}),
	}
}

func (o *outbox) enqueue(msgType string, payload any) {
	if o.client == nil || o.client.Backend() == "" {
		return
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		return
	}
	select {
	case o.queue <- outboxMsg{msgType: msgType, payload: payload}:
	default:
		metrics.MessagesPublished.WithLabelValues("dropped").Inc()
		o.log.Debugf("engine: outbox full, dropped %s", msgType)
	}
}

func (o *outbox) run() {
	defer close(o.done)
	for m := range o.queue {
		o.publish(m)
	}
}

func (o *outbox) publish(m outboxMsg) {
	env, err := messaging.NewEnvelope(m.msgType, o.source(), m.payload)
	if err != nil {
		o.log.Warnf("engine: encode %s: %v", m.msgType, err)
		return
	}
	data, err := env.Encode()
	if err != nil {
		o.log.Warnf("engine: encode %s: %v", m.msgType, err)
		return
	}
	if err := o.client.Publish(o.client.Topic(), data); err != nil {
		metrics.MessagesPublished.WithLabelValues("failed").Inc()
		o.log.Debugf("engine: publish %s: %v", m.msgType, err)
		return
	}
	metrics.MessagesPublished.WithLabelValues("ok").Inc()
}

// close drains what is queued and waits for the publisher to exit.
func (o *outbox) close() {
	o.mu.Lock()
	if !o.closed {
		o.closed = true
		close(o.queue)
	}
	o.mu.Unlock()
	<-o.done
}
