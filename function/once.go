package function

type once[R any] struct {
	invoked bool
	result  R
}

// do invokes f unless it already completed once. A panicking f does not count as an invocation.
func (o *once[R]) do(f func() R) R {
	if !o.invoked {
		o.result = f()
		o.invoked = true
	}
	return o.result
}

type resultWithError[R any] struct {
	value R
	err   error
}

// Once returns a function which invokes f on its first call only. Every call
// returns the result of that first invocation.
func Once[R any](f func() R) func() R {
	state := &once[R]{}
	return func() R {
		return state.do(f)
	}
}

// Once1 is similar to Once for a function of one argument. Arguments of calls
// after the first one are ignored.
func Once1[A, R any](f func(A) R) func(A) R {
	state := &once[R]{}
	return func(a A) R {
		return state.do(func() R { return f(a) })
	}
}

// OnceVariadic is similar to Once1 for a variadic function.
func OnceVariadic[A, R any](f func(...A) R) func(...A) R {
	state := &once[R]{}
	return func(args ...A) R {
		return state.do(func() R { return f(args...) })
	}
}

// OnceWithError is similar to Once for a function which may fail. The error of
// the first invocation is returned by every call too.
func OnceWithError[R any](f func() (R, error)) func() (R, error) {
	state := &once[resultWithError[R]]{}
	return func() (R, error) {
		r := state.do(func() resultWithError[R] {
			value, err := f()
			return resultWithError[R]{value: value, err: err}
		})
		return r.value, r.err
	}
}

// OnceAction returns a function which invokes f on its first call only.
func OnceAction(f func()) func() {
	state := &once[struct{}]{}
	return func() {
		state.do(func() struct{} {
			f()
			return struct{}{}
		})
	}
}
