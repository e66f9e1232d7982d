package linked_list

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"linked_seq/heap"
)

// ErrClone is wrapped by errors from CloneFunc and AssignFunc when copying an
// element fails.
var ErrClone = errors.New("linked_list: element copy failed")

type node[T any] struct {
	elem T
	next *node[T]
	// set only on a list's own head; that position holds no element
	sentinel bool
}

// List is a singly-linked list. It keeps a sentinel node before the first
// element, so inserting at the front is the same operation as inserting after
// any other position, and a pointer to the last node for O(1) append.
//
// The zero value is an empty list ready to use. A List must not be copied by
// value once used: the tail may point at the list's own sentinel. Use Clone or
// Assign instead.
type List[T any] struct {
	head node[T]
	// last node, or &head when the list is empty
	tail *node[T]
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := new(List[T])
	l.lazyInit()
	return l
}

// From returns a list holding values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// FromSeq returns a list holding the values produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.tail == nil {
		l.head.sentinel = true
		l.tail = &l.head
	}
}

// Len returns the number of elements in O(1).
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements, in O(1).
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first element, or false if the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head.next == nil {
		return v, false
	}
	return l.head.next.elem, true
}

// Back returns the last element, or false if the list is empty.
func (l *List[T]) Back() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.tail.elem, true
}

// BeforeBegin returns the position before the first element. It must not be
// dereferenced; it exists as an anchor for InsertAfter and EraseAfter.
func (l *List[T]) BeforeBegin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: &l.head}
}

// Begin returns an iterator to the first element, equal to End() if the list
// is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End returns the position one past the last element. It must not be
// dereferenced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// InsertAfter inserts v right after pos, which may be BeforeBegin(), and
// returns an iterator to the new element.
//
// pos must be a position of this list other than End().
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	l.lazyInit()
	p := pos.at()
	heap.Require(p != nil)

	n := &node[T]{elem: v, next: p.next}
	p.next = n
	if p == l.tail {
		l.tail = n
	}
	l.len++
	return Iterator[T]{n: n}
}

// InsertAfterFunc is InsertAfter with a value built by mk. If mk fails the
// list is left unmodified and the error is returned.
func (l *List[T]) InsertAfterFunc(pos Position[T], mk func() (T, error)) (Iterator[T], error) {
	v, err := mk()
	if err != nil {
		return Iterator[T]{}, fmt.Errorf("linked_list: insert: %w", err)
	}
	return l.InsertAfter(pos, v), nil
}

// EraseAfter removes the element following pos and returns an iterator to the
// element that now follows pos (End() if none).
//
// pos must be a position of this list that has a next element.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	p := pos.at()
	heap.Require(p != nil && p.next != nil)

	n := p.next
	p.next = n.next
	if n == l.tail {
		l.tail = p
	}
	*n = node[T]{}
	l.len--
	return Iterator[T]{n: p.next}
}

// PushFront inserts v before the first element.
func (l *List[T]) PushFront(v T) {
	l.InsertAfter(l.BeforeBegin(), v)
}

// PushBack appends v after the last element.
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.InsertAfter(Iterator[T]{n: l.tail}, v)
}

// PopFront removes the first element. The list must not be empty.
func (l *List[T]) PopFront() {
	heap.Require(l.len > 0)
	l.EraseAfter(l.BeforeBegin())
}

// Clear removes every element in O(n).
func (l *List[T]) Clear() {
	n := l.head.next
	for n != nil {
		next := n.next
		*n = node[T]{}
		n = next
	}
	l.head.next = nil
	l.len = 0
	l.tail = nil
	l.lazyInit()
}

// Swap exchanges the contents of l and other in O(1). Iterators to elements
// follow their elements into the other list; BeforeBegin() stays with each
// list.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()

	heap.Swap(&l.head.next, &other.head.next)
	heap.Swap(&l.len, &other.len)
	heap.Swap(&l.tail, &other.tail)

	// an empty list's tail is its own sentinel, which did not move
	if l.len == 0 {
		l.tail = &l.head
	}
	if other.len == 0 {
		other.tail = &other.head
	}
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Clone returns a deep copy of l: new nodes holding copies of the elements in
// the same order.
func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.All())
}

// CloneFunc returns a copy of l with each element copied by clone. If clone
// fails, no list is returned and l is untouched.
func (l *List[T]) CloneFunc(clone func(T) (T, error)) (*List[T], error) {
	tmp := New[T]()
	for i, v := range l.Enumerate() {
		c, err := clone(v)
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %w", ErrClone, i, err)
		}
		tmp.PushBack(c)
	}
	return tmp, nil
}

// Assign replaces the contents of l with a copy of src.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// AssignFunc replaces the contents of l with a copy of src made by clone. If
// clone fails, l keeps its previous contents.
func (l *List[T]) AssignFunc(src *List[T], clone func(T) (T, error)) error {
	if l == src {
		return nil
	}
	tmp, err := src.CloneFunc(clone)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// All returns an iterator over the elements, front to back. It can be ranged
// over any number of times.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Backing is like All but yields pointers to the stored elements, which may be
// written through.
func (l *List[T]) Backing() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}

// Enumerate yields each element with its index.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head.next; n != nil; n = n.next {
			if !yield(i, n.elem) {
				return
			}
			i++
		}
	}
}

// Values returns the elements in a new slice.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.len)
	for v := range l.All() {
		vals = append(vals, v)
	}
	return vals
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.Enumerate() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
