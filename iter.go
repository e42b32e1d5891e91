package sll

// Iter is a cursor over a list's elements in chain order.
type Iter struct {
	e *node
}

// Iter returns a cursor positioned at the head. Each call returns a
// fresh cursor, so iteration restarts by calling Iter again. Mutating
// the list while a cursor is in use leaves the cursor's remaining
// elements undefined.
func (l *Sll) Iter() *Iter {
	return &Iter{e: l.head}
}

// Next returns the next element and advances the cursor. The boolean is
// false once the cursor has passed the tail.
func (it *Iter) Next() (any, bool) {
	if it.e == nil {
		return nil, false
	}
	item := it.e.item
	it.e = it.e.next
	return item, true
}
