package vec

// Cloner is implemented by element types whose copies must be made with
// Clone rather than plain assignment, typically because an element owns a
// resource a bitwise copy would alias. Clone may fail; vector operations
// that duplicate elements (NewFrom, CopyFrom) propagate the failure.
// Implement Clone with a value receiver so stored values satisfy the
// interface.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Disposer is implemented by element types that must release resources when
// the vector destroys an element. Dispose runs exactly once per live
// element: on Pop, Erase, shrinking Resize, Clear, overwrite by CopyFrom,
// and Release. It never runs for slots whose element was moved elsewhere.
type Disposer interface {
	Dispose()
}

// cloneOf duplicates src, through Clone when T implements Cloner.
func cloneOf[T any](src T) (T, error) {
	if c, ok := any(src).(Cloner[T]); ok {
		return c.Clone()
	}
	return src, nil
}

// destroy ends the element in *p: it runs the Dispose hook if the type has
// one, then zeroes the slot so it is raw again and holds no stale
// references.
func destroy[T any](p *T) {
	if d, ok := any(*p).(Disposer); ok {
		d.Dispose()
	}
	var zero T
	*p = zero
}

// destroyRange destroys every element of s in place.
func destroyRange[T any](s []T) {
	for i := range s {
		destroy(&s[i])
	}
}

// forget zeroes slots without running Dispose hooks. Used for slots whose
// element was transferred elsewhere and for bitwise duplicates left behind
// by shifts, which must not be disposed a second time.
func forget[T any](s []T) {
	clear(s)
}
