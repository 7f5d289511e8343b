package sdp

import (
	"github.com/qmuntal/stateless"
)

// Grammar machine pseudo trigger and state for the end of input.
const (
	TriggerEOF = "EOF"
	StateEnd   = "end"
)

// NewGrammarMachine builds a state machine over the field order grammar.
// Triggers are field keys like "v=" and [TriggerEOF], states are [State] values and [StateEnd].
// If strict is false the out of order media fields accepted by the lenient parser are included.
func NewGrammarMachine(strict bool) *stateless.StateMachine {
	tbl := &lenientTransitions
	if strict {
		tbl = &strictTransitions
	}

	fsm := stateless.NewStateMachine(StateVersion)
	for s := range numStates {
		src := State(s)
		cfg := fsm.Configure(src)
		for _, key := range tbl.keys(src) {
			dst, _ := tbl.next(src, key)
			if dst == src {
				cfg.PermitReentry(key)
			} else {
				cfg.Permit(key, dst)
			}
		}
		if src.Accepting() {
			cfg.Permit(TriggerEOF, StateEnd)
		}
	}
	fsm.Configure(StateEnd)
	return fsm
}

// GrammarGraph returns the field order grammar as a DOT graph.
func GrammarGraph(strict bool) string {
	return NewGrammarMachine(strict).ToGraph()
}
