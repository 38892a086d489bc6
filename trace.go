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
	"fmt"
	"io"
)

// tracer logs attempted transitions. The nil tracer is silent.
type tracer struct {
	w io.Writer
}

func (t *tracer) attempting(tr *Transition) {
	if t == nil {
		return
	}
	if tr.Name != "" {
		fmt.Fprintf(t.w, "attempting transition %s\n", tr.Name)
		return
	}
	fmt.Fprintf(t.w, "attempting %v transition at state %d\n", tr.Kind, tr.Source)
}
