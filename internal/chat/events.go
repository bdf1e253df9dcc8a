package chat

import (
	"time"

	"github.com/rs/xid"
)

// Event signals that a mutation committed and cached views of the message
// stream are stale. Subscribers are invoked synchronously, in
// subscription order.
type Event struct {
	ID        string
	Action    string
	MessageID uint
	At        time.Time
}

type SubscriberFunc func(evt Event)

func (g *Guard) Subscribe(fn SubscriberFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.subscribers = append(g.subscribers, fn)
}

func (g *Guard) notify(action string, messageID uint) {
	g.mu.Lock()
	subscribers := make([]SubscriberFunc, len(g.subscribers))
	copy(subscribers, g.subscribers)
	g.mu.Unlock()

	evt := Event{
		ID:        xid.New().String(),
		Action:    action,
		MessageID: messageID,
		At:        time.Now(),
	}

	for _, fn := range subscribers {
		fn(evt)
	}
}
