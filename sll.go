// Package sll implements Sll, a polymorphic singly linked list.
//
// Each node holds one value of any type and a link to the next node, so a
// single list may mix element types. The list supports indexed access,
// iteration, containment, deletion, prepending, extending, concatenation,
// and duplication. It is not safe for concurrent use.
package sll

import (
	"github.com/goose-lang/primitive"
	"github.com/pkg/errors"
)

type node struct {
	item any
	next *node
}

// Sll is a singly linked list of arbitrary values. The zero value is an
// empty list ready to use.
type Sll struct {
	head *node
}

// New returns a list containing items in the order given; the first
// argument becomes index 0. New() returns an empty list.
func New(items ...any) *Sll {
	l := &Sll{}
	l.Extend(items...)
	return l
}

// Len returns the number of elements by walking the chain.
func (l *Sll) Len() int {
	n := 0
	for e := l.head; e != nil; e = e.next {
		n++
	}
	return n
}

// IsEmpty reports whether the list has no elements.
func (l *Sll) IsEmpty() bool {
	return l.head == nil
}

// nodeAt returns the node at index i, or nil if i is out of range.
func (l *Sll) nodeAt(i int) *node {
	if i < 0 {
		return nil
	}
	e := l.head
	for ; e != nil && i > 0; e = e.next {
		i--
	}
	return e
}

// Get returns the element at index i. It fails with ErrIndexOutOfRange
// when i < 0 or i >= Len(); there is no negative-from-end indexing.
func (l *Sll) Get(i int) (any, error) {
	e := l.nodeAt(i)
	if e == nil {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "get index %d, length %d", i, l.Len())
	}
	return e.item, nil
}

// Set replaces the element at index i. It fails with ErrIndexOutOfRange
// when i is out of range, leaving the list unchanged.
func (l *Sll) Set(i int, item any) error {
	e := l.nodeAt(i)
	if e == nil {
		return errors.Wrapf(ErrIndexOutOfRange, "set index %d, length %d", i, l.Len())
	}
	e.item = item
	return nil
}

// Contains reports whether some element compares equal to item. Equality
// is Go interface equality on the dynamic value, so comparing against an
// uncomparable type such as a slice or map panics.
func (l *Sll) Contains(item any) bool {
	for e := l.head; e != nil; e = e.next {
		if e.item == item {
			return true
		}
	}
	return false
}

// Count returns the number of elements equal to item.
func (l *Sll) Count(item any) int {
	n := 0
	for e := l.head; e != nil; e = e.next {
		if e.item == item {
			n++
		}
	}
	return n
}

// DeleteAt removes the element at index i, relinking its predecessor to
// its successor. Subsequent indices shift down by one. It fails with
// ErrIndexOutOfRange when i is out of range, leaving the list unchanged.
func (l *Sll) DeleteAt(i int) error {
	if i < 0 || i >= l.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "delete index %d, length %d", i, l.Len())
	}
	primitive.Assert(l.head != nil)
	if i == 0 {
		l.head = l.head.next
		return nil
	}
	prev := l.nodeAt(i - 1)
	prev.next = prev.next.next
	return nil
}

// Clear removes every element. The garbage collector reclaims the chain.
func (l *Sll) Clear() {
	l.head = nil
}

// makeChain builds a fresh chain from items, returning its head and tail.
// Both are nil when items is empty.
func makeChain(items []any) (*node, *node) {
	var head, tail *node
	for _, item := range items {
		e := &node{item: item}
		if head == nil {
			head = e
		} else {
			tail.next = e
		}
		tail = e
	}
	return head, tail
}

// copyChain returns a structural copy of the chain starting at e, sharing
// no nodes with the original, as its head and tail.
func copyChain(e *node) (*node, *node) {
	var head, tail *node
	for ; e != nil; e = e.next {
		c := &node{item: e.item}
		if head == nil {
			head = c
		} else {
			tail.next = c
		}
		tail = c
	}
	return head, tail
}

// Prepend inserts items, in the order given, before the current head.
// Prepend() with no items is a no-op.
func (l *Sll) Prepend(items ...any) {
	head, tail := makeChain(items)
	if head == nil {
		return
	}
	tail.next = l.head
	l.head = head
}

// Extend appends items, in order, after the current tail. The chain is
// walked once regardless of how many items are given. On an empty list
// Extend behaves like construction from items.
func (l *Sll) Extend(items ...any) {
	head, _ := makeChain(items)
	if head == nil {
		return
	}
	if l.head == nil {
		l.head = head
		return
	}
	e := l.head
	for e.next != nil {
		e = e.next
	}
	e.next = head
}

// Append adds a single item after the current tail.
func (l *Sll) Append(item any) {
	l.Extend(item)
}

// Concat returns a new list holding l's elements followed by other's.
// Neither operand is modified and the result shares no nodes with them.
func (l *Sll) Concat(other *Sll) *Sll {
	head, tail := copyChain(l.head)
	otherHead, _ := copyChain(other.head)
	if head == nil {
		return &Sll{head: otherHead}
	}
	tail.next = otherHead
	return &Sll{head: head}
}

// Repeat returns a new list holding n consecutive copies of l's elements.
// Repeat(0) returns an empty list. It fails with ErrNegativeRepeat when
// n < 0.
func (l *Sll) Repeat(n int) (*Sll, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeRepeat, "repeat count %d", n)
	}
	out := &Sll{}
	var tail *node
	for k := 0; k < n; k++ {
		head, t := copyChain(l.head)
		if head == nil {
			break
		}
		if out.head == nil {
			out.head = head
		} else {
			tail.next = head
		}
		tail = t
	}
	primitive.Assert(out.Len() == n*l.Len())
	return out, nil
}

// Find scans from the head for the first element equal to item and
// returns a structural copy of the suffix starting at it, the found
// element included. When no element matches, the result is an empty
// list; callers can distinguish that case with IsEmpty.
func (l *Sll) Find(item any) *Sll {
	e := l.head
	for e != nil && e.item != item {
		e = e.next
	}
	head, _ := copyChain(e)
	return &Sll{head: head}
}

// Sublist returns a structural copy of the suffix starting at index i.
// It fails with ErrIndexOutOfRange when i is out of range.
func (l *Sll) Sublist(i int) (*Sll, error) {
	e := l.nodeAt(i)
	if e == nil {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "sublist index %d, length %d", i, l.Len())
	}
	head, _ := copyChain(e)
	return &Sll{head: head}, nil
}

// Last returns the final element. It fails with ErrEmpty when the list
// has no elements.
func (l *Sll) Last() (any, error) {
	if l.head == nil {
		return nil, errors.Wrap(ErrEmpty, "last")
	}
	e := l.head
	for e.next != nil {
		e = e.next
	}
	return e.item, nil
}

// LastSublist returns a new one-element list holding the final element.
// It fails with ErrEmpty when the list has no elements.
func (l *Sll) LastSublist() (*Sll, error) {
	if l.head == nil {
		return nil, errors.Wrap(ErrEmpty, "last sublist")
	}
	e := l.head
	for e.next != nil {
		e = e.next
	}
	return New(e.item), nil
}

// Reverse reverses the list in place by flipping the next links.
func (l *Sll) Reverse() {
	var prev *node
	e := l.head
	for e != nil {
		next := e.next
		e.next = prev
		prev = e
		e = next
	}
	l.head = prev
}

// Items returns the elements as a slice in chain order. The slice is a
// snapshot: mutating it does not affect the list, and later mutations of
// the list do not affect it.
func (l *Sll) Items() []any {
	var items []any
	for e := l.head; e != nil; e = e.next {
		items = append(items, e.item)
	}
	return items
}

// Equal reports whether l and other hold equal elements in the same
// order.
func (l *Sll) Equal(other *Sll) bool {
	a, b := l.head, other.head
	for a != nil && b != nil {
		if a.item != b.item {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}
