package parse

import "sync"

// Map applies f to the value of a successful parse. Failures pass
// through untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c Cursor) Result[B] {
		r := p(c)
		if r.Failed() {
			return failed[B](r.Fail, r.Consumed)
		}
		return succeed(f(r.Value), r.Rest, r.Consumed)
	}
}

// Text runs p and yields the input text it consumed instead of its
// value.
func Text[T any](p Parser[T]) Parser[string] {
	return func(c Cursor) Result[string] {
		r := p(c)
		if r.Failed() {
			return failed[string](r.Fail, r.Consumed)
		}
		return succeed(c.slice(r.Rest), r.Rest, r.Consumed)
	}
}

// Seq2 runs pa then pb and combines their values with f.
func Seq2[A, B, R any](pa Parser[A], pb Parser[B], f func(A, B) R) Parser[R] {
	return func(c Cursor) Result[R] {
		ra := pa(c)
		if ra.Failed() {
			return failed[R](ra.Fail, ra.Consumed)
		}
		rb := pb(ra.Rest)
		consumed := ra.Consumed || rb.Consumed
		if rb.Failed() {
			return failed[R](rb.Fail, consumed)
		}
		return succeed(f(ra.Value, rb.Value), rb.Rest, consumed)
	}
}

// Seq3 runs three parsers in order and combines their values with f.
func Seq3[A, B, C, R any](pa Parser[A], pb Parser[B], pc Parser[C], f func(A, B, C) R) Parser[R] {
	return func(c Cursor) Result[R] {
		ra := pa(c)
		if ra.Failed() {
			return failed[R](ra.Fail, ra.Consumed)
		}
		rb := pb(ra.Rest)
		consumed := ra.Consumed || rb.Consumed
		if rb.Failed() {
			return failed[R](rb.Fail, consumed)
		}
		rc := pc(rb.Rest)
		consumed = consumed || rc.Consumed
		if rc.Failed() {
			return failed[R](rc.Fail, consumed)
		}
		return succeed(f(ra.Value, rb.Value, rc.Value), rc.Rest, consumed)
	}
}

// Seq4 runs four parsers in order and combines their values with f.
func Seq4[A, B, C, D, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], f func(A, B, C, D) R) Parser[R] {
	return func(c Cursor) Result[R] {
		ra := pa(c)
		if ra.Failed() {
			return failed[R](ra.Fail, ra.Consumed)
		}
		rb := pb(ra.Rest)
		consumed := ra.Consumed || rb.Consumed
		if rb.Failed() {
			return failed[R](rb.Fail, consumed)
		}
		rc := pc(rb.Rest)
		consumed = consumed || rc.Consumed
		if rc.Failed() {
			return failed[R](rc.Fail, consumed)
		}
		rd := pd(rc.Rest)
		consumed = consumed || rd.Consumed
		if rd.Failed() {
			return failed[R](rd.Fail, consumed)
		}
		return succeed(f(ra.Value, rb.Value, rc.Value, rd.Value), rd.Rest, consumed)
	}
}

// Left runs pa then pb and keeps pa's value.
func Left[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	return Seq2(pa, pb, func(a A, _ B) A { return a })
}

// Right runs pa then pb and keeps pb's value.
func Right[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	return Seq2(pa, pb, func(_ A, b B) B { return b })
}

// Or tries each parser against the same original cursor, returning the
// first success. A partially-matching alternative never commits: later
// alternatives are attempted from the original cursor no matter how far
// an earlier one consumed before failing. When every alternative fails,
// the reported failure is the furthest one, with expected sets unioned
// on an exact position tie.
func Or[T any](parsers ...Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		var merged *Failure
		for _, p := range parsers {
			r := p(c)
			if !r.Failed() {
				return r
			}
			merged = mergeFailures(merged, r.Fail)
		}
		if merged == nil {
			return failAt[T](c.Pos(), false, "no alternative")
		}
		return failed[T](merged, merged.Consumed)
	}
}

// Opt tries p and falls back to def when p fails without consuming
// input. A failure after consuming input propagates, so a malformed
// construct is not silently read as absent.
func Opt[T any](p Parser[T], def T) Parser[T] {
	return func(c Cursor) Result[T] {
		r := p(c)
		if r.Failed() && !r.Consumed {
			return succeed(def, c, false)
		}
		return r
	}
}

// Many applies p repeatedly, collecting values until p fails without
// consuming input. A failure that did consume input means a malformed
// element rather than the end of the list and propagates. The loop is
// iterative: recursion depth does not grow with input length.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		var values []T
		cur := c
		consumed := false
		for {
			r := p(cur)
			if r.Failed() {
				if r.Consumed {
					return failed[[]T](r.Fail, true)
				}
				return succeed(values, cur, consumed)
			}
			values = append(values, r.Value)
			cur = r.Rest
			if !r.Consumed {
				// a zero-width success would repeat forever
				return succeed(values, cur, consumed)
			}
			consumed = true
		}
	}
}

// Many1 is Many requiring at least one element.
func Many1[T any](p Parser[T]) Parser[[]T] {
	rest := Many(p)
	return func(c Cursor) Result[[]T] {
		first := p(c)
		if first.Failed() {
			return failed[[]T](first.Fail, first.Consumed)
		}
		more := rest(first.Rest)
		if more.Failed() {
			return failed[[]T](more.Fail, true)
		}
		values := append([]T{first.Value}, more.Value...)
		return succeed(values, more.Rest, first.Consumed || more.Consumed)
	}
}

// ManyTill applies p repeatedly until end succeeds, yielding the
// collected values of p. When both p and end fail their failures are
// merged for diagnostics.
func ManyTill[T, E any](p Parser[T], end Parser[E]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		var values []T
		cur := c
		consumed := false
		for {
			stop := end(cur)
			if !stop.Failed() {
				return succeed(values, stop.Rest, consumed || stop.Consumed)
			}
			if stop.Consumed {
				return failed[[]T](stop.Fail, true)
			}
			r := p(cur)
			if r.Failed() {
				return failed[[]T](mergeFailures(stop.Fail, r.Fail), consumed || r.Consumed)
			}
			values = append(values, r.Value)
			cur = r.Rest
			if !r.Consumed {
				return succeed(values, cur, consumed)
			}
			consumed = true
		}
	}
}

// SepBy parses zero or more occurrences of p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Opt(SepBy1(p, sep), nil)
}

// SepBy1 parses one or more occurrences of p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	rest := Many(Right(sep, p))
	return func(c Cursor) Result[[]T] {
		first := p(c)
		if first.Failed() {
			return failed[[]T](first.Fail, first.Consumed)
		}
		more := rest(first.Rest)
		if more.Failed() {
			return failed[[]T](more.Fail, true)
		}
		values := append([]T{first.Value}, more.Value...)
		return succeed(values, more.Rest, first.Consumed || more.Consumed)
	}
}

// EndBy parses zero or more occurrences of p, each terminated by sep.
func EndBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Many(Left(p, sep))
}

// EndBy1 is EndBy requiring at least one element.
func EndBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Many1(Left(p, sep))
}

// Between parses open, then p, then close, yielding p's value. A
// mismatched close bracket is reported at the position of the mismatch.
func Between[L, T, R any](open Parser[L], p Parser[T], close Parser[R]) Parser[T] {
	return Seq3(open, p, close, func(_ L, v T, _ R) T { return v })
}

// Lazy defers construction of a parser until it is first applied, then
// caches it. Recursive grammar rules cannot be built by eagerly
// evaluating their own definition; every cycle of rules must pass
// through at least one Lazy.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var once sync.Once
	var p Parser[T]
	return func(c Cursor) Result[T] {
		once.Do(func() { p = build() })
		return p(c)
	}
}
