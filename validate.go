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

import "errors"

var (
	// ErrMissingSentinel is returned when a table has no terminating
	// sentinel row.
	ErrMissingSentinel = errors.New("table has no terminating sentinel row")

	// ErrBadMatchKind is returned when a row carries a match kind outside
	// the known set.
	ErrBadMatchKind = errors.New("unknown match kind")

	// ErrBadStateKind is returned when a row carries a state kind outside
	// the known set.
	ErrBadStateKind = errors.New("unknown state kind")

	// ErrBadNextState is returned when a row's next state is neither a
	// valid state nor the halt signal.
	ErrBadNextState = errors.New("next state must be non-negative or the halt signal")
)

// Validate checks that table is well formed: it ends in a sentinel row and
// every live row carries kinds from the known sets and a usable next state.
// Sub-machine tables are checked recursively.
//
// Validate is an aid for table authors, not a gate: Run never requires a
// valid table, since a malformed row is just a row that cannot match.
func Validate(table Table) error {
	for i := range table {
		t := &table[i]
		if t.Source < 0 {
			return nil
		}
		if t.Kind < MatchExact || t.Kind > MatchPredicate {
			return ErrBadMatchKind
		}
		if t.Target < StateNormal || t.Target > StateReject {
			return ErrBadStateKind
		}
		if t.Next < Halt {
			return ErrBadNextState
		}
		if t.Kind == MatchMachine && t.Sub != nil {
			err := Validate(t.Sub)
			if err != nil {
				return err
			}
		}
	}
	return ErrMissingSentinel
}
