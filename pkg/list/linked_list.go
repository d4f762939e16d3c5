// Package list holds the doubly linked list the heap sort runs on.
// Nodes are never relinked by the sort; only their values move around, so node identity and order
// of links stay fixed for the whole lifetime of a list.

package list

import "iter"

// Node is a single element of a doubly linked list.
type Node[V any] struct {
	next  *Node[V]
	prev  *Node[V] // Non-owning back reference.
	Value V
}

// NewNode allocates a detached node holding `v`.
func NewNode[V any](v V) *Node[V] {
	return &Node[V]{Value: v}
}

// Next returns the next node in the list.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the previous node in the list.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}

// Swap exchanges the values of `a` and `b`. Links are left untouched.
func Swap[V any](a, b *Node[V]) {
	a.Value, b.Value = b.Value, a.Value
}

// LinkedList is a doubly linked list. The zero value is an empty list ready to use.
type LinkedList[V any] struct {
	head *Node[V]
	tail *Node[V]
	size int
}

// New returns a list holding `values` in the given order.
func New[V any](values ...V) *LinkedList[V] {
	l := new(LinkedList[V])
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *LinkedList[V]) Len() int {
	return l.size
}

// Front returns the first node of the list or nil if the list is empty.
func (l *LinkedList[V]) Front() *Node[V] {
	return l.head
}

// Back returns the last node of the list or nil if the list is empty.
func (l *LinkedList[V]) Back() *Node[V] {
	return l.tail
}

// At walks `pos` steps from the head and returns the node found there, or nil if `pos` is out of range.
// Lookups are linear on purpose; callers address the list like an array.
func (l *LinkedList[V]) At(pos int) *Node[V] {
	if pos < 0 || pos >= l.size {
		return nil
	}
	n := l.head
	for ; pos > 0; pos-- {
		n = n.next
	}
	return n
}

// PushBack adds a new value to the back of the list.
func (l *LinkedList[V]) PushBack(v V) *Node[V] {
	n := NewNode(v)
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else { // List was empty.
		l.head = n
	}
	l.tail = n
	l.size++
	return n
}

// All iterates over the values from head to tail.
func (l *LinkedList[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values returns a copy of the list values from head to tail.
func (l *LinkedList[V]) Values() []V {
	values := make([]V, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Clear unlinks every node in a single pass and leaves the list empty.
func (l *LinkedList[V]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}
