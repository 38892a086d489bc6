//  Copyright (c) 2017 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fsm

// Halt is the universal halt signal. It is never a valid state; a table row
// whose Source is Halt is the sentinel terminating the table, and a run whose
// state reaches Halt is over.
const Halt = -1

// NoRedirect, used in the Fail field, means a failed match is ignored and the
// scan keeps going under the unchanged state. Any negative value works; this
// one names the intent.
const NoRedirect = -1

// MatchKind selects the matching strategy a transition uses.
type MatchKind int

const (
	// MatchExact matches the Pattern bytes literally at the cursor.
	MatchExact MatchKind = iota

	// MatchClass matches a single byte against a set of candidates, given
	// either as a compiled Class or as raw Pattern bytes.
	MatchClass

	// MatchMachine runs the Sub table as a nested machine and consumes
	// whatever the sub-run accepts.
	MatchMachine

	// MatchPredicate delegates the match decision to the Pred callable.
	MatchPredicate
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchClass:
		return "class"
	case MatchMachine:
		return "machine"
	case MatchPredicate:
		return "predicate"
	}
	return "unknown"
}

// StateKind classifies the state a transition moves to on success.
type StateKind int

const (
	// StateNormal is an ordinary state; reaching it clears the accept flag.
	StateNormal StateKind = iota

	// StateAccept marks the run as accepting; if the machine halts while the
	// flag is still set, the run succeeds.
	StateAccept

	// StateReject aborts the entire run immediately.
	StateReject
)

func (k StateKind) String() string {
	switch k {
	case StateNormal:
		return "normal"
	case StateAccept:
		return "accept"
	case StateReject:
		return "reject"
	}
	return "unknown"
}

// Predicate is the extension point for host-defined matching. Match receives
// a scratch view of the remaining input, the run's shared context, and the
// transition's Local value. It returns the number of bytes the transition
// consumes, or a negative value when no match can be made.
type Predicate interface {
	Match(c *Cursor, ctx interface{}, local interface{}) int
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(c *Cursor, ctx interface{}, local interface{}) int

// Match calls f.
func (f PredicateFunc) Match(c *Cursor, ctx interface{}, local interface{}) int {
	return f(c, ctx, local)
}

// Callback is invoked after a transition matches, before the cursor advances,
// so it observes the just-matched bytes still in place. Callbacks exist to
// accumulate results into the context; they must not assume the cursor has
// moved.
type Callback func(c *Cursor, ctx interface{}, local interface{})

// Transition is one row of a table. Rows sharing a Source state are tried in
// table order and the first match wins.
//
// NOTE: the zero value of Fail names state 0, which is a valid redirect
// target. Rows that do not redirect on failure must set Fail to NoRedirect.
type Transition struct {
	// Source is the state this row applies to. Negative marks the sentinel.
	Source int

	// Kind selects the matching strategy.
	Kind MatchKind

	// Pattern holds the literal bytes for MatchExact, or the candidate bytes
	// for MatchClass when no compiled Class is set. Unused otherwise.
	Pattern []byte

	// Class is the compiled byte set for MatchClass rows.
	Class *ByteClass

	// Sub is the table run by MatchMachine rows.
	Sub Table

	// Pred is the callable consulted by MatchPredicate rows.
	Pred Predicate

	// Local is passed unmodified to Pred and OnSuccess.
	Local interface{}

	// Next is the state to move to when this row matches. It may be Halt.
	Next int

	// Fail is the state to move to when this row does not match; negative
	// means no redirect.
	Fail int

	// Target classifies Next as normal, accepting, or rejecting.
	Target StateKind

	// OnSuccess, if set, runs on match with the authoritative, not yet
	// advanced cursor.
	OnSuccess Callback

	// Name is an optional diagnostic label.
	Name string
}

// Table is an ordered sequence of transitions terminated by a sentinel row.
// A table is read-only to the engine and may be shared by any number of
// concurrent runs.
type Table []Transition

// End returns the sentinel row terminating a table.
func End() Transition {
	return Transition{Source: Halt, Fail: NoRedirect}
}
