package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the tree and print its structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.buildTree(cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := tree.WriteTo(out); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "hasOneBranch: %t\nsinglePath: %t\n",
				tree.HasOneBranch(), tree.IsSinglePath())
			return err
		},
	}
	a.addInputFlags(cmd)

	return cmd
}
