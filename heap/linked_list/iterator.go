package linked_list

import "linked_seq/heap"

// Position is a place in a list: an Iterator or a ConstIterator. Positions are
// equal when they refer to the same node, whatever the element values.
type Position[T any] interface {
	at() *node[T]
}

// Iterator is a forward position in a List that allows modifying the element
// it refers to.
//
// An Iterator stays valid until the node it refers to is removed. Advancing
// End(), or dereferencing End() or BeforeBegin(), panics.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) at() *node[T] {
	return it.n
}

// Next moves it to the following position.
func (it *Iterator[T]) Next() {
	heap.Require(it.n != nil)
	it.n = it.n.next
}

// Advance returns the position after it, leaving it unchanged.
func (it Iterator[T]) Advance() Iterator[T] {
	it.Next()
	return it
}

func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the element stored in the list.
func (it Iterator[T]) Ptr() *T {
	heap.Require(it.n != nil && !it.n.sentinel)
	return &it.n.elem
}

func (it Iterator[T]) Set(v T) {
	*it.Ptr() = v
}

func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.at()
}

// Const returns the read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) at() *node[T] {
	return it.n
}

func (it *ConstIterator[T]) Next() {
	heap.Require(it.n != nil)
	it.n = it.n.next
}

func (it ConstIterator[T]) Advance() ConstIterator[T] {
	it.Next()
	return it
}

func (it ConstIterator[T]) Value() T {
	heap.Require(it.n != nil && !it.n.sentinel)
	return it.n.elem
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.at()
}
