package command

import (
	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <node>",
		Short: "Delete the cached credential record for a node",
		Long: "Delete the cached credential record for a node. Removing a node " +
			"that has no cached record is not an error.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return records.Remove(cmd.Context(), args[0])
		},
	}
}
