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

import "testing"

func TestAttemptExactString(t *testing.T) {
	tests := []struct {
		desc    string
		pattern []byte
		input   []byte
		want    int
	}{
		{
			"pattern matches prefix",
			[]byte("ab"),
			[]byte("abcd"),
			2,
		},
		{
			"pattern equals input",
			[]byte("abcd"),
			[]byte("abcd"),
			4,
		},
		{
			"pattern mismatch",
			[]byte("ax"),
			[]byte("abcd"),
			-1,
		},
		{
			"pattern longer than input",
			[]byte("abcde"),
			[]byte("ab"),
			-1,
		},
		{
			"nil pattern",
			nil,
			[]byte("abcd"),
			-1,
		},
		{
			"empty pattern",
			[]byte(""),
			[]byte("abcd"),
			-1,
		},
		{
			"empty input",
			[]byte("ab"),
			nil,
			-1,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			trans := &Transition{Kind: MatchExact, Pattern: test.pattern}
			got := attempt(trans, NewCursor(test.input), nil, nil)
			if got != test.want {
				t.Errorf("wanted: %d, got: %d", test.want, got)
			}
		})
	}
}

func TestAttemptByteClass(t *testing.T) {
	tests := []struct {
		desc  string
		trans Transition
		input []byte
		want  int
	}{
		{
			"member via raw pattern",
			Transition{Kind: MatchClass, Pattern: []byte("xyz")},
			[]byte("y-"),
			1,
		},
		{
			"non-member via raw pattern",
			Transition{Kind: MatchClass, Pattern: []byte("xyz")},
			[]byte("a-"),
			-1,
		},
		{
			"member via compiled class",
			Transition{Kind: MatchClass, Class: NewByteClass([]byte("xyz"))},
			[]byte("y-"),
			1,
		},
		{
			"non-member via compiled class",
			Transition{Kind: MatchClass, Class: NewByteClass([]byte("xyz"))},
			[]byte("a-"),
			-1,
		},
		{
			"neither class nor pattern",
			Transition{Kind: MatchClass},
			[]byte("a-"),
			-1,
		},
		{
			"empty input",
			Transition{Kind: MatchClass, Pattern: []byte("xyz")},
			nil,
			-1,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			trans := test.trans
			got := attempt(&trans, NewCursor(test.input), nil, nil)
			if got != test.want {
				t.Errorf("wanted: %d, got: %d", test.want, got)
			}
		})
	}
}

func TestAttemptSubMachine(t *testing.T) {
	sub := Table{
		{Source: 0, Kind: MatchExact, Pattern: []byte("ab"),
			Next: 1, Fail: NoRedirect, Target: StateAccept},
		End(),
	}

	trans := &Transition{Kind: MatchMachine, Sub: sub}
	got := attempt(trans, NewCursor([]byte("abcd")), nil, nil)
	if got != 2 {
		t.Errorf("wanted: 2, got: %d", got)
	}

	missing := &Transition{Kind: MatchMachine}
	got = attempt(missing, NewCursor([]byte("abcd")), nil, nil)
	if got != -1 {
		t.Errorf("wanted: -1, got: %d", got)
	}
}

func TestAttemptPredicate(t *testing.T) {
	var gotCtx, gotLocal interface{}
	trans := &Transition{
		Kind:  MatchPredicate,
		Local: "local-data",
		Pred: PredicateFunc(func(c *Cursor, ctx interface{}, local interface{}) int {
			gotCtx = ctx
			gotLocal = local
			return c.Len()
		}),
	}

	got := attempt(trans, NewCursor([]byte("abcd")), "the-context", nil)
	if got != 4 {
		t.Errorf("wanted: 4, got: %d", got)
	}
	if gotCtx != "the-context" {
		t.Errorf("wanted context passed through, got: %v", gotCtx)
	}
	if gotLocal != "local-data" {
		t.Errorf("wanted local data passed through, got: %v", gotLocal)
	}

	missing := &Transition{Kind: MatchPredicate}
	got = attempt(missing, NewCursor([]byte("abcd")), nil, nil)
	if got != -1 {
		t.Errorf("wanted: -1, got: %d", got)
	}
}

func TestAttemptUnknownKind(t *testing.T) {
	trans := &Transition{Kind: MatchKind(42), Pattern: []byte("ab")}
	got := attempt(trans, NewCursor([]byte("abcd")), nil, nil)
	if got != -1 {
		t.Errorf("wanted: -1, got: %d", got)
	}
}
