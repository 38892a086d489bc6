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
	"bufio"
	"bytes"
	"fmt"
	"io"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// ExportTableDot will export the contents of the provided Table into the
// GraphViz (dot) file format. Success edges are solid and labeled with the
// row's name or pattern; fail-redirect edges are dashed; accepting targets
// are drawn as double circles and rejecting targets as octagons.
func ExportTableDot(table Table, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i := range table {
		t := &table[i]
		if t.Source < 0 {
			break
		}
		_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=%q]\n", t.Source, t.Next, dotLabel(t)))
		if t.Target == StateAccept {
			_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n", t.Next))
		}
		if t.Target == StateReject {
			_, _ = buf.WriteString(fmt.Sprintf("%d [shape=octagon]\n", t.Next))
		}
		if t.Fail >= 0 {
			_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [style=dashed]\n", t.Source, t.Fail))
		}
		_, _ = buf.WriteString("\n")
	}

	_, err = bw.Write(buf.Bytes())
	if err != nil {
		return err
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func dotLabel(t *Transition) string {
	if t.Name != "" {
		return t.Name
	}
	switch t.Kind {
	case MatchExact:
		return string(t.Pattern)
	case MatchClass:
		if t.Class != nil {
			return "[" + t.Class.String() + "]"
		}
		return "[" + string(t.Pattern) + "]"
	case MatchMachine:
		return "(machine)"
	case MatchPredicate:
		return "(predicate)"
	}
	return "?"
}
