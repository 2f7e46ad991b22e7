// Package parse provides parser combinators for building
// recursive-descent parsers over text.
//
// # Overview
//
// A Parser[T] is a function from an input Cursor to a Result[T]: either
// a value of type T plus the rest of the input, or a positioned failure.
// Grammars are assembled by composing small parsers with the
// combinators in this package and executed with Run:
//
//	digit := parse.Satisfy("digit", unicode.IsDigit)
//	number := parse.Map(parse.Many1(digit), runesToInt)
//	value, err := parse.Run(parse.Full(number), "42")
//
// # Backtracking
//
// Or tries every alternative from the same starting cursor. Unlike
// committed-choice engines, an alternative that consumes input before
// failing does not commit the choice; the next alternative is attempted
// from the original position. The Consumed flag on results is purely
// diagnostic. When all alternatives fail, the error reported is the one
// whose position is furthest into the input, with the expected sets
// unioned when positions tie exactly.
//
// # Recursion
//
// Combinators compose eagerly, so a rule that refers to itself must go
// through Lazy, which defers construction until the parser first runs:
//
//	var expr parse.Parser[int]
//	expr = parse.Or(
//		parse.Between(open, parse.Lazy(func() parse.Parser[int] { return expr }), close),
//		number,
//	)
//
// Many, Many1 and Chainl1 iterate rather than recurse, so long inputs
// (long lists, long operator chains) do not grow the call stack.
//
// # Errors
//
// All grammar-level failures flow through Result as values; Run converts
// the final failure into a *Error with a one-line, 1-based line/column
// rendering. The only panic in the engine is advancing a Cursor past the
// end of input, which is a contract violation in a hand-built primitive,
// not a parse failure.
package parse
