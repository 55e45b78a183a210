package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func purgeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every cached credential record",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := resolver.Entries()
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				cmd.Printf("no cached credentials in %s\n", resolver.Root())
				return nil
			}

			if !force && !confirm(cmd, len(entries)) {
				cmd.Println("aborted")
				return nil
			}

			for _, e := range entries {
				if err := os.Remove(e.Path); err != nil {
					return fmt.Errorf("removing %s: %w", e.Path, err)
				}
			}

			cmd.Printf("removed %d credential record(s)\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "purge without confirmation")
	return cmd
}

func confirm(cmd *cobra.Command, count int) bool {
	cmd.Printf("remove %d credential record(s) from %s? [y/N] ", count, resolver.Root())
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
