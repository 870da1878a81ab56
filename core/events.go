// SPDX-License-Identifier: MIT
//
// File: events.go
// Role: Change-event types and the listener registry.
// Concurrency:
//   - listeners guarded by muListeners, never by mu.
//   - emit snapshots the listener list and calls it without holding any lock,
//     so a listener may query the graph (or even unsubscribe) re-entrantly.

package core

import "fmt"

// EventKind names the kind of change a mutation produced.
type EventKind int

const (
	NodeAdded EventKind = iota + 1
	NodeMoved
	NodeRemoved
	EdgeAdded
	EdgeChanged
	EdgeRemoved
)

func (k EventKind) String() string {
	switch k {
	case NodeAdded:
		return "node-added"
	case NodeMoved:
		return "node-moved"
	case NodeRemoved:
		return "node-removed"
	case EdgeAdded:
		return "edge-added"
	case EdgeChanged:
		return "edge-changed"
	case EdgeRemoved:
		return "edge-removed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes one committed change to one element.
// Node is set for node events, Edge for edge events; both are value copies
// taken at commit time.
type Event struct {
	Kind EventKind
	Node Node
	Edge Edge
}

// IsNode reports whether the event concerns a node.
func (e Event) IsNode() bool { return e.Kind >= NodeAdded && e.Kind <= NodeRemoved }

// Listener receives change events.
type Listener func(Event)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Subscribe registers fn for every future change event and returns a function
// that removes the subscription. Listeners are called in subscription order.
// Calling the returned function more than once is harmless.
func (g *Graph) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	g.muListeners.Lock()
	g.nextListener++
	id := g.nextListener
	g.listeners = append(g.listeners, listenerEntry{id: id, fn: fn})
	g.muListeners.Unlock()

	return func() {
		g.muListeners.Lock()
		defer g.muListeners.Unlock()
		for i, le := range g.listeners {
			if le.id == id {
				g.listeners = append(g.listeners[:i:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

// emit delivers events to a snapshot of the current listeners.
func (g *Graph) emit(events ...Event) {
	if len(events) == 0 {
		return
	}
	g.muListeners.Lock()
	snapshot := make([]listenerEntry, len(g.listeners))
	copy(snapshot, g.listeners)
	g.muListeners.Unlock()

	for _, ev := range events {
		for _, le := range snapshot {
			le.fn(ev)
		}
	}
}
