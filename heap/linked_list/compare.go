package linked_list

import "cmp"

// Equal reports whether a and b have the same length and equal elements in
// the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with elements compared by eq.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	x, y := a.head.next, b.head.next
	for x != nil {
		if !eq(x.elem, y.elem) {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a sorts before b lexicographically: the first pair of
// differing elements decides, and a proper prefix sorts first.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessFunc is Less with elements ordered by less.
func LessFunc[T any](a, b *List[T], less func(T, T) bool) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if less(x.elem, y.elem) {
			return true
		}
		if less(y.elem, x.elem) {
			return false
		}
	}
	return x == nil && y != nil
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b. Elements are ordered by cmp.Compare, so it agrees with Less
// except that NaN sorts before every other float.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with elements ordered by compare.
func CompareFunc[T any](a, b *List[T], compare func(T, T) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := compare(x.elem, y.elem); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}
