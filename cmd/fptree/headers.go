package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHeadersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Print the header table, most frequent item first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.buildTree(cmd.InOrStdin())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ITEM\tSUPPORT\tNODES")
			for _, h := range tree.Headers() {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", h.Item, h.Support, len(h.Nodes))
			}
			return tw.Flush()
		},
	}
	a.addInputFlags(cmd)

	return cmd
}
