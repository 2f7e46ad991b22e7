package parse

// FailureKind classifies a parse failure. All kinds flow through Result
// as ordinary values; none of them aborts the parse.
type FailureKind int

const (
	// Mismatch: the expected token(s) were not found at a position.
	Mismatch FailureKind = iota
	// PrematureEnd: an end-of-input check ran with input remaining.
	PrematureEnd
	// ReservedWord: an identifier-shaped token equals a reserved word.
	ReservedWord
)

// Failure describes one failed parse attempt. Expected holds
// human-readable token descriptions; Consumed reports whether the
// attempt advanced past at least one character before failing. The flag
// is diagnostic only: alternation backtracks regardless of it.
type Failure struct {
	At       Position
	Expected []string
	Consumed bool
	Kind     FailureKind
	Word     string // the offending word, for ReservedWord failures
}

// Result is the outcome of applying one parser to one cursor. Fail is
// nil on success; Value and Rest are only meaningful when Fail is nil.
type Result[T any] struct {
	Value    T
	Rest     Cursor
	Consumed bool
	Fail     *Failure
}

func (r Result[T]) Failed() bool {
	return r.Fail != nil
}

func succeed[T any](value T, rest Cursor, consumed bool) Result[T] {
	return Result[T]{Value: value, Rest: rest, Consumed: consumed}
}

func failAt[T any](at Position, consumed bool, expected ...string) Result[T] {
	return Result[T]{
		Consumed: consumed,
		Fail:     &Failure{At: at, Expected: expected, Consumed: consumed},
	}
}

// failed rewraps a failure under a different result type, preserving the
// failure itself. The consumed flag may differ from the failure's own
// when an earlier sibling in a sequence already consumed input.
func failed[T any](f *Failure, consumed bool) Result[T] {
	return Result[T]{Consumed: consumed, Fail: f}
}

// mergeFailures applies the furthest-failure policy: the failure at the
// later offset wins outright; on an exact tie the expected sets are
// unioned, de-duplicated in first-recorded order.
func mergeFailures(a, b *Failure) *Failure {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.At.Offset > b.At.Offset {
		return a
	}
	if b.At.Offset > a.At.Offset {
		return b
	}
	merged := &Failure{
		At:       a.At,
		Expected: unionExpected(a.Expected, b.Expected),
		Consumed: a.Consumed || b.Consumed,
		Kind:     a.Kind,
		Word:     a.Word,
	}
	// A reserved-word conflict is the more specific diagnostic.
	if merged.Kind == Mismatch && b.Kind != Mismatch {
		merged.Kind = b.Kind
		merged.Word = b.Word
	}
	return merged
}

func unionExpected(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, lists := range [2][]string{a, b} {
		for _, e := range lists {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}
