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
	"fmt"
	"io"
	"os"

	"github.com/couchbaselabs/fsm"
	"github.com/spf13/cobra"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Dot exports a built-in machine in the GraphViz (dot) file format",
	Long:  `Dot exports a built-in machine in the GraphViz (dot) file format, to stdout or to the optionally specified path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, ok := machines[machineName]
		if !ok {
			return fmt.Errorf("no machine named %q", machineName)
		}

		var w io.Writer = os.Stdout
		if len(args) > 0 {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		return fsm.ExportTableDot(table, w)
	},
}

func init() {
	dotCmd.Flags().StringVar(&machineName, "machine", "number", "built-in machine to export")
	RootCmd.AddCommand(dotCmd)
}
