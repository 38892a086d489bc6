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
	"fmt"
	"os"

	"github.com/couchbaselabs/fsm"
	"github.com/spf13/cobra"
)

var trace bool

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match runs a built-in recognizer against the contents of a file",
	Long:  `Match runs a built-in recognizer against the contents of a file and reports how many bytes it accepted.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("path is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		table, ok := machines[machineName]
		if !ok {
			return fmt.Errorf("no machine named %q", machineName)
		}

		var opts *fsm.Options
		if trace {
			opts = &fsm.Options{Trace: os.Stderr}
		}
		m, err := fsm.New(table, opts)
		if err != nil {
			return err
		}

		in, err := fsm.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		var matched bytes.Buffer
		n := m.Run(in.Cursor(), &matched)
		if n < 0 {
			return fmt.Errorf("no match")
		}
		fmt.Printf("matched %d bytes: %s\n", n, matched.String())
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&machineName, "machine", "number", "built-in machine to run")
	matchCmd.Flags().BoolVar(&trace, "trace", false, "log attempted transitions to stderr")
	RootCmd.AddCommand(matchCmd)
}
