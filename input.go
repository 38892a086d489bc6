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
	"os"

	mmap "github.com/blevesearch/mmap-go"
)

// Input is a memory-mapped, read-only view of a file, so machines can run
// over large inputs without copying them onto the heap.
type Input struct {
	f  *os.File
	mm mmap.MMap
}

// Open memory-maps the file at path. You MUST call Close() for any Input
// that is opened.
func Open(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if fi.Size() == 0 {
		// zero-length files cannot be mapped
		return &Input{f: f}, nil
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Input{
		f:  f,
		mm: mm,
	}, nil
}

// Bytes returns the mapped contents.
func (in *Input) Bytes() []byte {
	return in.mm
}

// Cursor returns a new cursor positioned at the start of the input.
func (in *Input) Cursor() *Cursor {
	return NewCursor(in.mm)
}

// Close will unmap the data and close the backing file.
func (in *Input) Close() error {
	if in.mm != nil {
		err := in.mm.Unmap()
		if err != nil {
			return err
		}
		in.mm = nil
	}
	return in.f.Close()
}
