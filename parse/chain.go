package parse

// Chainl1 parses one or more occurrences of operand separated by op,
// where op yields the binary function combining two operands. The
// result folds strictly left-associatively in the order the operators
// were read: a f b g c becomes g(f(a, b), c). The fold is iterative, so
// recursion depth does not grow with the length of the operator chain.
// An operator/operand pair that fails after consuming input propagates
// as a malformed expression; a pair failing cleanly ends the chain.
func Chainl1[T any](operand Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return func(c Cursor) Result[T] {
		first := operand(c)
		if first.Failed() {
			return first
		}
		acc := first.Value
		cur := first.Rest
		consumed := first.Consumed
		for {
			opr := op(cur)
			if opr.Failed() {
				if opr.Consumed {
					return failed[T](opr.Fail, true)
				}
				return succeed(acc, cur, consumed)
			}
			next := operand(opr.Rest)
			if next.Failed() {
				if opr.Consumed || next.Consumed {
					return failed[T](next.Fail, true)
				}
				return succeed(acc, cur, consumed)
			}
			acc = opr.Value(acc, next.Value)
			cur = next.Rest
			if !opr.Consumed && !next.Consumed {
				// a zero-width pair would repeat forever
				return succeed(acc, cur, consumed)
			}
			consumed = true
		}
	}
}

// Chainr1 is the right-associative mirror of Chainl1: a f b g c becomes
// f(a, g(b, c)). Operands and operators are collected iteratively and
// folded from the right.
func Chainr1[T any](operand Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return func(c Cursor) Result[T] {
		first := operand(c)
		if first.Failed() {
			return first
		}
		operands := []T{first.Value}
		var ops []func(T, T) T
		cur := first.Rest
		consumed := first.Consumed
		for {
			opr := op(cur)
			if opr.Failed() {
				if opr.Consumed {
					return failed[T](opr.Fail, true)
				}
				break
			}
			next := operand(opr.Rest)
			if next.Failed() {
				if opr.Consumed || next.Consumed {
					return failed[T](next.Fail, true)
				}
				break
			}
			ops = append(ops, opr.Value)
			operands = append(operands, next.Value)
			cur = next.Rest
			if !opr.Consumed && !next.Consumed {
				break
			}
			consumed = true
		}
		acc := operands[len(operands)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			acc = ops[i](operands[i], acc)
		}
		return succeed(acc, cur, consumed)
	}
}
