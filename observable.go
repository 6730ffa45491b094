package gridview

// Event identifies a notification emitted by TableView.
type Event int

const (
	// WillRedraw fires just before the list engine rebuilds its
	// materialized window.
	WillRedraw Event = iota
	// DidRedraw fires once the rebuild has been applied.
	DidRedraw
	// DidChangeBound fires when the viewport scrolled or resized, i.e.
	// whenever previously sampled geometry may be stale.
	DidChangeBound
)

func (e Event) String() string {
	switch e {
	case WillRedraw:
		return "willRedraw"
	case DidRedraw:
		return "didRedraw"
	case DidChangeBound:
		return "didChangeBound"
	}
	return "unknown"
}

// notifier is an observer registry with typed events. Handlers run
// synchronously, in subscription order, on the goroutine that emits.
type notifier struct {
	handlers map[Event][]func()
}

// on registers a handler and returns its unsubscribe func.
func (n *notifier) on(e Event, fn func()) func() {
	if n.handlers == nil {
		n.handlers = make(map[Event][]func())
	}
	n.handlers[e] = append(n.handlers[e], fn)
	idx := len(n.handlers[e]) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		n.handlers[e][idx] = nil
	}
}

func (n *notifier) emit(e Event) {
	for _, fn := range n.handlers[e] {
		if fn != nil {
			fn()
		}
	}
}

// signal is a bare subscription list used for viewport scroll and resize
// callbacks. Same discipline as notifier: synchronous, subscription order,
// unsubscribe by slot.
type signal struct {
	handlers []func()
}

func (s *signal) subscribe(fn func()) func() {
	s.handlers = append(s.handlers, fn)
	idx := len(s.handlers) - 1
	return func() {
		s.handlers[idx] = nil
	}
}

func (s *signal) emit() {
	for _, fn := range s.handlers {
		if fn != nil {
			fn()
		}
	}
}

// active returns how many live subscriptions the signal holds.
func (s *signal) active() int {
	n := 0
	for _, fn := range s.handlers {
		if fn != nil {
			n++
		}
	}
	return n
}

// Observable is a generic row container that notifies on changes. It
// backs live data feeds: bind one to a TableView and every mutation
// flows into the grid without the caller re-pushing state.
type Observable[T any] struct {
	items     []T
	listeners []func(Change[T])
}

// Change describes a modification to the observable.
type Change[T any] struct {
	Type  ChangeType
	Index int
	Item  T // for Add/Update, the new value
	Old   T // for Update/Remove, the old value
}

type ChangeType int

const (
	ChangeAdd ChangeType = iota
	ChangeUpdate
	ChangeRemove
	ChangeClear
	ChangeSet // full replacement
)

// NewObservable creates an empty observable list.
func NewObservable[T any]() *Observable[T] {
	return &Observable[T]{}
}

// Items returns all items.
func (o *Observable[T]) Items() []T {
	return o.items
}

// Len returns the number of items.
func (o *Observable[T]) Len() int {
	return len(o.items)
}

// At returns the item at index i, or the zero value if out of bounds.
func (o *Observable[T]) At(i int) T {
	if i < 0 || i >= len(o.items) {
		var zero T
		return zero
	}
	return o.items[i]
}

// Set replaces all items.
func (o *Observable[T]) Set(items []T) *Observable[T] {
	o.items = items
	o.notify(Change[T]{Type: ChangeSet})
	return o
}

// Add appends an item.
func (o *Observable[T]) Add(item T) *Observable[T] {
	idx := len(o.items)
	o.items = append(o.items, item)
	o.notify(Change[T]{Type: ChangeAdd, Index: idx, Item: item})
	return o
}

// Insert inserts an item at index i, clamping i into range.
func (o *Observable[T]) Insert(i int, item T) *Observable[T] {
	if i < 0 {
		i = 0
	}
	if i > len(o.items) {
		i = len(o.items)
	}
	o.items = append(o.items[:i], append([]T{item}, o.items[i:]...)...)
	o.notify(Change[T]{Type: ChangeAdd, Index: i, Item: item})
	return o
}

// RemoveAt removes the item at index i.
func (o *Observable[T]) RemoveAt(i int) *Observable[T] {
	if i < 0 || i >= len(o.items) {
		return o
	}
	old := o.items[i]
	o.items = append(o.items[:i], o.items[i+1:]...)
	o.notify(Change[T]{Type: ChangeRemove, Index: i, Old: old})
	return o
}

// Update modifies the item at index i in place.
func (o *Observable[T]) Update(i int, fn func(*T)) *Observable[T] {
	if i < 0 || i >= len(o.items) {
		return o
	}
	old := o.items[i]
	fn(&o.items[i])
	o.notify(Change[T]{Type: ChangeUpdate, Index: i, Item: o.items[i], Old: old})
	return o
}

// Clear removes all items.
func (o *Observable[T]) Clear() *Observable[T] {
	o.items = o.items[:0]
	o.notify(Change[T]{Type: ChangeClear})
	return o
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (o *Observable[T]) Subscribe(fn func(Change[T])) func() {
	o.listeners = append(o.listeners, fn)
	idx := len(o.listeners) - 1
	return func() {
		o.listeners[idx] = nil
	}
}

func (o *Observable[T]) notify(c Change[T]) {
	for _, fn := range o.listeners {
		if fn != nil {
			fn(c)
		}
	}
}

// BindRows feeds an observable row list into a table. Every change
// re-sources the body rows; the virtual window makes that cheap. The
// returned func severs the binding.
func BindRows(t *TableView, data *Observable[Row]) func() {
	push := func() {
		t.Set(StateUpdate{BodyRows: data.Items()})
	}
	unsub := data.Subscribe(func(Change[Row]) {
		push()
	})
	push()
	return unsub
}
