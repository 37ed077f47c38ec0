// Package result provides a two-variant outcome type returned by every
// workflow handler: either a success value or a typed error, never both.
// Expected failures travel through the error variant instead of panics or
// bare error returns, so callers cannot ignore them by accident.
package result

// Result holds exactly one of a success value or an error value.
// The zero Result is a failure carrying the zero error value; construct
// instances with Success or Failure.
type Result[S any, E any] struct {
	value S
	err   E
	ok    bool
}

// Success wraps a success value.
func Success[S any, E any](value S) Result[S, E] {
	return Result[S, E]{value: value, ok: true}
}

// Failure wraps an error value.
func Failure[S any, E any](err E) Result[S, E] {
	return Result[S, E]{err: err}
}

// IsSuccess reports whether the result holds a success value.
func (r Result[S, E]) IsSuccess() bool {
	return r.ok
}

// Ok returns the success value and whether it is present.
func (r Result[S, E]) Ok() (S, bool) {
	return r.value, r.ok
}

// Err returns the error value and whether it is present.
func (r Result[S, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// Switch invokes exactly one of the two callbacks depending on the variant.
func (r Result[S, E]) Switch(onSuccess func(S), onFailure func(E)) {
	if r.ok {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}

// Match maps the result to a single value by applying the callback that
// corresponds to the held variant.
func Match[S, E, T any](r Result[S, E], onSuccess func(S) T, onFailure func(E) T) T {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
