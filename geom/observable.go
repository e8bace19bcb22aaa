// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Key identifies a single subscription on an Observable.
// The zero Key identifies nothing; passing it to Unsubscribe is a no-op.
type Key struct {
	target *Observable
	id     uint64
}

// Valid reports whether the key was returned by Subscribe.
// It stays true after the subscription is removed.
func (k Key) Valid() bool {
	return k.target != nil
}

type listener struct {
	id uint64
	fn func()
}

// Observable delivers change notifications to subscribed callbacks.
// Embed it in a geometry type to satisfy the notification half of Geometry.
//
// The zero value is ready to use. Observable is NOT safe for concurrent use.
type Observable struct {
	listeners []listener
	nextID    uint64
	revision  uint64
}

// Subscribe registers fn to be called on every Changed call and returns
// the key that revokes it.
func (o *Observable) Subscribe(fn func()) Key {
	o.nextID++
	o.listeners = append(o.listeners, listener{id: o.nextID, fn: fn})
	return Key{target: o, id: o.nextID}
}

// Unsubscribe removes the subscription identified by k.
// Keys from another Observable, stale keys and the zero Key are ignored.
func (o *Observable) Unsubscribe(k Key) {
	if k.target != o {
		return
	}
	for i, l := range o.listeners {
		if l.id == k.id {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}

// Changed increments the revision and notifies every listener in
// subscription order. A listener removed by an earlier listener during
// the same notification is not called.
func (o *Observable) Changed() {
	o.revision++
	if len(o.listeners) == 0 {
		return
	}
	snapshot := make([]listener, len(o.listeners))
	copy(snapshot, o.listeners)
	for _, l := range snapshot {
		if o.subscribed(l.id) {
			l.fn()
		}
	}
}

func (o *Observable) subscribed(id uint64) bool {
	for _, l := range o.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

// Revision returns the number of Changed calls so far.
func (o *Observable) Revision() uint64 {
	return o.revision
}

// ListenerCount returns the number of active subscriptions.
func (o *Observable) ListenerCount() int {
	return len(o.listeners)
}
