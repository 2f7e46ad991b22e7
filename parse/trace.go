package parse

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("parc.parse")

// Traced wraps p so that every application is logged at debug level
// under the given rule name. The wrapper changes no parsing behavior;
// enable a commonlog backend with sufficient verbosity to see the
// output.
func Traced[T any](name string, p Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		log.Debugf("%s: try at %s", name, c.Pos())
		r := p(c)
		if r.Failed() {
			log.Debugf("%s: fail at %s: expected %s", name, r.Fail.At, joinExpected(r.Fail.Expected))
		} else {
			log.Debugf("%s: ok, now at %s", name, r.Rest.Pos())
		}
		return r
	}
}
