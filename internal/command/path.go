package command

import (
	"github.com/spf13/cobra"
)

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <node>",
		Short: "Print the record file path for a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(resolver.RecordPath(args[0]))
			return nil
		},
	}
}
