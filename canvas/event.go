// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package canvas

type EventType int

const (
	PointerMove EventType = iota
	PointerDown
	PointerUp
)

func (t EventType) String() string {
	switch t {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a pointer event with position relative to the canvas origin.
type Event struct {
	Type EventType
	X    float64
	Y    float64
}

type Handler func(e Event)

// Subscription is the handle of an attached event handler.
type Subscription struct {
	c       *Canvas
	handler Handler
}

// Listen attaches h to the canvas until the returned subscription is closed.
func (c *Canvas) Listen(h Handler) *Subscription {
	s := &Subscription{c: c, handler: h}
	c.listeners = append(c.listeners, s)
	return s
}

// Close detaches the handler. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.c == nil {
		return
	}
	for i, l := range s.c.listeners {
		if l == s {
			s.c.listeners = append(s.c.listeners[:i], s.c.listeners[i+1:]...)
			break
		}
	}
	s.c = nil
}

func (s *Subscription) Active() bool {
	return s != nil && s.c != nil
}

func (c *Canvas) NumListeners() int {
	return len(c.listeners)
}

// Dispatch delivers e to all attached handlers in subscription order.
func (c *Canvas) Dispatch(e Event) {
	listeners := make([]*Subscription, len(c.listeners))
	copy(listeners, c.listeners)
	for _, l := range listeners {
		if l.Active() {
			l.handler(e)
		}
	}
}
