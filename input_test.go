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

import (
	"io/ioutil"
	"os"
	"testing"
)

func TestOpenInput(t *testing.T) {
	f, err := ioutil.TempFile("", "fsm-input")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	_, err = f.WriteString("abcd")
	if err != nil {
		t.Fatal(err)
	}
	err = f.Close()
	if err != nil {
		t.Fatal(err)
	}

	in, err := Open(f.Name())
	if err != nil {
		t.Fatalf("error opening input: %v", err)
	}
	defer func() {
		err := in.Close()
		if err != nil {
			t.Fatal(err)
		}
	}()

	if string(in.Bytes()) != "abcd" {
		t.Errorf("wanted 'abcd', got: %q", in.Bytes())
	}

	table := Table{
		{Source: 0, Kind: MatchExact, Pattern: []byte("ab"),
			Next: 1, Fail: NoRedirect, Target: StateAccept},
		End(),
	}
	got := Run(table, in.Cursor(), nil)
	if got != 2 {
		t.Errorf("wanted: 2, got: %d", got)
	}
}

func TestOpenEmptyInput(t *testing.T) {
	f, err := ioutil.TempFile("", "fsm-input-empty")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	err = f.Close()
	if err != nil {
		t.Fatal(err)
	}

	in, err := Open(f.Name())
	if err != nil {
		t.Fatalf("error opening empty input: %v", err)
	}
	defer func() {
		err := in.Close()
		if err != nil {
			t.Fatal(err)
		}
	}()

	if len(in.Bytes()) != 0 {
		t.Errorf("wanted no bytes, got: %d", len(in.Bytes()))
	}

	table := Table{
		{Source: 0, Kind: MatchExact, Pattern: []byte("ab"),
			Next: 1, Fail: NoRedirect, Target: StateAccept},
		End(),
	}
	got := Run(table, in.Cursor(), nil)
	if got != -1 {
		t.Errorf("wanted: -1, got: %d", got)
	}
}

func TestOpenMissingInput(t *testing.T) {
	_, err := Open("no-such-file-anywhere")
	if err == nil {
		t.Errorf("wanted an error opening a missing file")
	}
}
