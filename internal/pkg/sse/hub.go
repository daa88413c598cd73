package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Event is a named payload delivered to every subscriber of a topic.
type Event struct {
	Topic string
	Name  string
	Data  any
}

// Hub fans events out to topic subscribers. Slow subscribers drop events.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[chan Event]struct{}
	buffer int
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[chan Event]struct{}),
		buffer: 16,
	}
}

// Subscribe registers a subscriber on topic. Call cancel to unsubscribe; it closes the channel.
func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[chan Event]struct{})
	}
	h.topics[topic][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.topics[topic], ch)
			close(ch)
			if len(h.topics[topic]) == 0 {
				delete(h.topics, topic)
			}
		})
	}

	return ch, cancel
}

// Publish delivers event to every subscriber of each topic without blocking.
func (h *Hub) Publish(event Event, topics ...string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, topic := range topics {
		e := event
		e.Topic = topic
		for ch := range h.topics[topic] {
			select {
			case ch <- e:
			default:
			}
		}
	}
}

func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.topics[topic])
}

// Write encodes e as one text/event-stream frame.
func Write(w io.Writer, e Event) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", e.Name, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Name, data)
	return err
}
