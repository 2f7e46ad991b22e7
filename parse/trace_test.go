package parse

import "testing"

func TestTracedPreservesBehavior(t *testing.T) {
	p := Traced("letter-a", Rune('a'))

	if r := p(NewCursor("ab")); r.Failed() || r.Value != 'a' || !r.Consumed {
		t.Errorf("success case changed: %+v", r)
	}
	r := p(NewCursor("b"))
	if !r.Failed() || r.Fail.Expected[0] != "'a'" {
		t.Errorf("failure case changed: %+v", r)
	}
}
