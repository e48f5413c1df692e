package event

import "sync"

// Hub fans events out to all current subscribers. Delivery is best-effort
// and at-most-once: a subscriber whose buffer is full has the frame dropped
// rather than stalling the publisher or other subscribers. There is no
// replay; a late subscriber only sees events emitted after it joined.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
	buf  int
}

const defaultBuffer = 16

func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan Event]struct{}),
		buf:  defaultBuffer,
	}
}

// Subscribe registers a new subscriber and returns its channel plus a
// cancel func. Cancel is idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buf)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish sends each event to every subscriber in order. Never blocks.
func (h *Hub) Publish(events ...Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ev := range events {
		for ch := range h.subs {
			select {
			case ch <- ev:
			default:
				// subscriber too slow; drop the frame
			}
		}
	}
}

// SubscriberCount reports how many clients are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
