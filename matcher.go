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

import "bytes"

// attempt decides whether a single transition fires against the input at view
// and returns how many bytes it consumes, or -1 when no match can be made.
// A row missing the field its kind requires, or carrying an unknown kind, is
// a match failure, never a fault.
func attempt(t *Transition, view *Cursor, ctx interface{}, tr *tracer) int {
	tr.attempting(t)

	switch t.Kind {

	case MatchExact:
		if len(t.Pattern) == 0 {
			return -1
		}
		if !bytes.HasPrefix(view.Bytes(), t.Pattern) {
			return -1
		}
		return len(t.Pattern)

	case MatchClass:
		if view.Len() == 0 {
			return -1
		}
		next := view.Bytes()[0]
		if t.Class != nil {
			if t.Class.Contains(next) {
				return 1
			}
			return -1
		}
		if len(t.Pattern) == 0 {
			return -1
		}
		if bytes.IndexByte(t.Pattern, next) >= 0 {
			return 1
		}
		return -1

	case MatchMachine:
		if t.Sub == nil {
			return -1
		}
		// the sub-run works on the caller's scratch view and shares the
		// caller's context; context mutation by sub-run callbacks is not
		// rolled back when the sub-run fails
		return run(t.Sub, view, ctx, tr)

	case MatchPredicate:
		if t.Pred == nil {
			return -1
		}
		return t.Pred.Match(view, ctx, t.Local)
	}

	return -1
}
