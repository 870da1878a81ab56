// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphisual/engine"
)

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithms that can be visualized",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, a := range engine.Algorithms() {
				anchors := "start"
				if a.Anchors() == 2 {
					anchors = "start, end"
				}
				fmt.Fprintf(out, "  %s  %s %s\n", brand.Sprintf("%-9s", a.String()), a.Title(), subtle.Sprintf("(%s)", anchors))
			}
		},
	}
}
