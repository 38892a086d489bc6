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

import "io"

// Version is the version of the fsm engine.
const Version = "0.2.0"

// Options configures optional Machine behavior. A nil *Options is valid.
type Options struct {
	// Trace, when set, receives a line for every attempted transition. This
	// is a debug aid only.
	Trace io.Writer
}

// Machine is a reusable handle over a validated table. A Machine is read-only
// after New and safe for any number of concurrent runs, provided each run has
// its own cursor and (unless the host serializes access) its own context.
type Machine struct {
	table Table
	tr    *tracer
}

// New validates table and returns a Machine over it. opts may be nil.
func New(table Table, opts *Options) (*Machine, error) {
	err := Validate(table)
	if err != nil {
		return nil, err
	}
	rv := &Machine{
		table: table,
	}
	if opts != nil && opts.Trace != nil {
		rv.tr = &tracer{w: opts.Trace}
	}
	return rv, nil
}

// Run walks the machine's table over the input at c, exactly as the
// package-level Run does.
func (m *Machine) Run(c *Cursor, ctx interface{}) int {
	return run(m.table, c, ctx, m.tr)
}

// Run walks table over the input at c. The run starts in state 0 and keeps
// transitioning until the machine halts. If it halts accepting, Run returns
// the total number of bytes consumed, having advanced c past them; otherwise
// it returns -1. Only committed transitions move c, so on failure it is left
// at the position of the last successful transition. ctx is threaded,
// unexamined, through every predicate, callback, and nested sub-run.
//
// Run performs no validation and no allocation; a malformed row is simply a
// row that never matches.
func Run(table Table, c *Cursor, ctx interface{}) int {
	return run(table, c, ctx, nil)
}

func run(table Table, c *Cursor, ctx interface{}, tr *tracer) int {
	state := 0
	consumed := 0
	accept := false

	// all live states are numbered non-negatively
	for state >= 0 {
		success := false

		for i := range table {
			t := &table[i]
			if t.Source < 0 {
				// sentinel row ends the scan
				break
			}
			// eligibility is checked against the current state, which a
			// failed row earlier in this same pass may already have
			// redirected
			if t.Source != state {
				continue
			}

			// the attempt gets a copy of the cursor, so a failing match, or
			// a sub-machine that ate part of the input before failing, can
			// never move the authoritative head
			view := *c
			n := attempt(t, &view, ctx, tr)
			if n < 0 {
				// a negative fail state is ignored; otherwise redirect and
				// keep scanning this pass under the new state
				if t.Fail >= 0 {
					state = t.Fail
				}
				continue
			}

			// the callback observes the matched bytes still in place
			if t.OnSuccess != nil {
				t.OnSuccess(c, ctx, t.Local)
			}

			if n > c.Len() {
				n = c.Len()
			}
			consumed += n
			c.Advance(n)
			state = t.Next

			switch t.Target {
			case StateAccept:
				accept = true
			case StateReject:
				// a reject aborts the whole run, discarding anything
				// previously accepted
				return -1
			default:
				accept = false
			}

			success = true
			break
		}

		if !success {
			state = Halt
		}
	}

	if accept {
		return consumed
	}
	return -1
}
