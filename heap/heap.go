package heap

import "github.com/goose-lang/std"

// Swap exchanges the values behind x and y. Ownership of whatever the values
// point to moves with them.
func Swap[T any](x *T, y *T) {
	old_y := *y
	*y = *x
	*x = old_y
}

// Require checks a caller contract. A violation is a programming error, not a
// recoverable condition, so it panics.
func Require(cond bool) {
	std.Assert(cond)
}
