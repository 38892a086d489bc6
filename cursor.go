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

// Cursor is a read head over a byte stream. The driver owns the authoritative
// cursor for a run and hands value copies to every match attempt, so a failed
// attempt can never move the real head. The cursor does not own the bytes it
// reads.
type Cursor struct {
	data []byte
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Bytes returns the unconsumed remainder of the input.
func (c *Cursor) Bytes() []byte {
	return c.data
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Advance consumes the next n bytes. Counts outside the remaining input are
// clamped, so a misbehaving predicate cannot push the head out of bounds.
func (c *Cursor) Advance(n int) {
	if n < 0 {
		return
	}
	if n > len(c.data) {
		n = len(c.data)
	}
	c.data = c.data[n:]
}
