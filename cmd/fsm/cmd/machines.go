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

package cmd

import (
	"bytes"

	"github.com/couchbaselabs/fsm"
)

// The built-in recognizers. These are demonstration tables built by this
// command, not by the fsm library; the engine itself knows nothing about any
// grammar. Each run uses a *bytes.Buffer context into which the callbacks
// copy the matched text.

var digit = fsm.NewByteClass([]byte("0123456789"))

var letter = fsm.NewByteClass([]byte("_")).
	AddRange('a', 'z').
	AddRange('A', 'Z')

var wordChar = fsm.NewByteClass([]byte("_")).
	AddRange('a', 'z').
	AddRange('A', 'Z').
	AddRange('0', '9')

// appendLocal copies the transition's Local bytes into the context buffer.
func appendLocal(c *fsm.Cursor, ctx interface{}, local interface{}) {
	ctx.(*bytes.Buffer).Write(local.([]byte))
}

// appendNext copies the byte under the cursor, which the engine has not yet
// advanced past, into the context buffer.
func appendNext(c *fsm.Cursor, ctx interface{}, local interface{}) {
	if c.Len() > 0 {
		ctx.(*bytes.Buffer).WriteByte(c.Bytes()[0])
	}
}

// fraction recognizes a decimal point followed by one or more digits. It is
// run as a sub-machine of number.
var fraction = fsm.Table{
	{Source: 0, Kind: fsm.MatchExact, Pattern: []byte("."), Local: []byte("."),
		Next: 1, Fail: fsm.NoRedirect, OnSuccess: appendLocal, Name: "point"},
	{Source: 1, Kind: fsm.MatchClass, Class: digit,
		Next: 2, Fail: fsm.NoRedirect, Target: fsm.StateAccept, OnSuccess: appendNext, Name: "frac-digit"},
	{Source: 2, Kind: fsm.MatchClass, Class: digit,
		Next: 2, Fail: fsm.NoRedirect, Target: fsm.StateAccept, OnSuccess: appendNext, Name: "frac-digits"},
	fsm.End(),
}

// number recognizes an optionally signed decimal number with an optional
// fractional part. The sign row fail-redirects into the digit state, so a
// missing sign is handled within the same scan pass.
var number = fsm.Table{
	{Source: 0, Kind: fsm.MatchExact, Pattern: []byte("-"), Local: []byte("-"),
		Next: 1, Fail: 1, OnSuccess: appendLocal, Name: "sign"},
	{Source: 1, Kind: fsm.MatchClass, Class: digit,
		Next: 2, Fail: fsm.NoRedirect, Target: fsm.StateAccept, OnSuccess: appendNext, Name: "first-digit"},
	{Source: 2, Kind: fsm.MatchClass, Class: digit,
		Next: 2, Fail: fsm.NoRedirect, Target: fsm.StateAccept, OnSuccess: appendNext, Name: "digits"},
	{Source: 2, Kind: fsm.MatchMachine, Sub: fraction,
		Next: 3, Fail: fsm.NoRedirect, Target: fsm.StateAccept, Name: "fraction"},
	fsm.End(),
}

// ident recognizes a C-style identifier.
var ident = fsm.Table{
	{Source: 0, Kind: fsm.MatchClass, Class: letter,
		Next: 1, Fail: fsm.NoRedirect, Target: fsm.StateAccept, OnSuccess: appendNext, Name: "first-char"},
	{Source: 1, Kind: fsm.MatchClass, Class: wordChar,
		Next: 1, Fail: fsm.NoRedirect, Target: fsm.StateAccept, OnSuccess: appendNext, Name: "word-char"},
	fsm.End(),
}

// notQuote matches any single byte other than a double quote.
var notQuote = fsm.PredicateFunc(func(c *fsm.Cursor, ctx interface{}, local interface{}) int {
	if c.Len() == 0 || c.Bytes()[0] == '"' {
		return -1
	}
	return 1
})

// quoted recognizes a double-quoted string; the context buffer receives the
// body without the quotes.
var quoted = fsm.Table{
	{Source: 0, Kind: fsm.MatchExact, Pattern: []byte(`"`),
		Next: 1, Fail: fsm.NoRedirect, Name: "open-quote"},
	{Source: 1, Kind: fsm.MatchExact, Pattern: []byte(`"`),
		Next: 2, Fail: fsm.NoRedirect, Target: fsm.StateAccept, Name: "close-quote"},
	{Source: 1, Kind: fsm.MatchPredicate, Pred: notQuote,
		Next: 1, Fail: fsm.NoRedirect, OnSuccess: appendNext, Name: "body"},
	fsm.End(),
}

var machines = map[string]fsm.Table{
	"number": number,
	"ident":  ident,
	"quoted": quoted,
}
