package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
)

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the dashboard views in navigation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tPATH")
			for _, e := range views.Entries() {
				fmt.Fprintf(tw, "%s\t%s\t/view/%s\n", e.ID, e.Title, e.ID)
			}
			return tw.Flush()
		},
	}
}
