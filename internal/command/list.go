package command

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached credential records",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := resolver.Entries()
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				cmd.Printf("no cached credentials in %s\n", resolver.Root())
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RECORD\tSIZE\tMODIFIED")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%d\t%s\n", e.Name, e.Size, e.ModTime.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}
