package folio

// handler pairs a callback with the id used to unregister it.
type handler[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered set of callbacks. Handlers registered or removed
// while emit is running take effect on the next emit.
type handlerList[T any] struct {
	items  []handler[T]
	nextID uint32
}

func (l *handlerList[T]) add(fn func(T)) uint32 {
	l.nextID++
	l.items = append(l.items, handler[T]{id: l.nextID, fn: fn})
	return l.nextID
}

// remove deletes the handler with the given id. Returns false if it was
// already gone.
func (l *handlerList[T]) remove(id uint32) bool {
	for i := range l.items {
		if l.items[i].id == id {
			// Copy-on-remove so an in-flight emit keeps iterating its snapshot.
			items := make([]handler[T], 0, len(l.items)-1)
			items = append(items, l.items[:i]...)
			items = append(items, l.items[i+1:]...)
			l.items = items
			return true
		}
	}
	return false
}

func (l *handlerList[T]) emit(v T) {
	for _, h := range l.items {
		h.fn(v)
	}
}

func (l *handlerList[T]) len() int {
	return len(l.items)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(uint32) bool
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once, or on the zero CallbackHandle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

func newHandle[T any](l *handlerList[T], fn func(T)) CallbackHandle {
	return CallbackHandle{id: l.add(fn), remove: l.remove}
}
