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
	"bytes"

	"github.com/willf/bitset"
)

// ByteClass is a compiled set of candidate bytes for MatchClass transitions.
// Membership tests cost the same no matter how large the class is.
type ByteClass struct {
	bits *bitset.BitSet
}

// NewByteClass builds a class containing every byte in members. members may
// be nil for an empty class to be filled in with AddRange.
func NewByteClass(members []byte) *ByteClass {
	rv := &ByteClass{
		bits: bitset.New(256),
	}
	for _, b := range members {
		rv.bits.Set(uint(b))
	}
	return rv
}

// AddRange adds every byte from lo through hi inclusive and returns the class
// to allow chaining.
func (bc *ByteClass) AddRange(lo, hi byte) *ByteClass {
	for b := uint(lo); b <= uint(hi); b++ {
		bc.bits.Set(b)
	}
	return bc
}

// Contains returns true if and only if b is a member of the class.
func (bc *ByteClass) Contains(b byte) bool {
	return bc.bits.Test(uint(b))
}

// Len returns the number of bytes in the class.
func (bc *ByteClass) Len() int {
	return int(bc.bits.Count())
}

// String renders the members in ascending byte order, for diagnostics.
func (bc *ByteClass) String() string {
	var buf bytes.Buffer
	for i := uint(0); i < 256; i++ {
		if bc.bits.Test(i) {
			buf.WriteByte(byte(i))
		}
	}
	return buf.String()
}
