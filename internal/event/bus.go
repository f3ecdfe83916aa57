package event

import "sync"

// Name identifies a topic on the bus.
type Name string

// Handler consumes one published payload. Each delivery runs on its own
// goroutine, so handlers synchronize their own state.
type Handler func(payload any)

// Bus is the in-process pub/sub fabric between the services.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Name][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Name][]Handler)}
}

func (b *Bus) Subscribe(topic Name, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish delivers payload to every subscriber of topic asynchronously.
func (b *Bus) Publish(topic Name, payload any) {
	b.mu.RLock()
	hs := b.handlers[topic]
	b.mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}
