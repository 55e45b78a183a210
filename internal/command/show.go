package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/merobox/authcache/internal/credential"
)

func showCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show <node>",
		Short: "Show the cached credential record for a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID := args[0]

			record, found, err := records.Load(cmd.Context(), nodeID)
			if err != nil {
				return err
			}
			if !found {
				cmd.Printf("no cached credentials for node %q\n", nodeID)
				return nil
			}

			cmd.Printf("node:    %s\n", nodeID)
			cmd.Printf("record:  %s\n", resolver.RecordPath(nodeID))

			if summary, err := record.Claims(); err == nil {
				printSummary(cmd, summary)
			}

			if reveal {
				data, err := serializer.Encode(record)
				if err != nil {
					return err
				}
				cmd.Printf("\n%s", data)
				return nil
			}

			cmd.Printf("access:  %s\n", redact(record.AccessToken))
			cmd.Printf("refresh: %s\n", redact(record.RefreshToken))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the raw credential record, token material included")
	return cmd
}

func printSummary(cmd *cobra.Command, s credential.Summary) {
	if s.Subject != "" {
		cmd.Printf("subject: %s\n", s.Subject)
	}
	if s.Issuer != "" {
		cmd.Printf("issuer:  %s\n", s.Issuer)
	}
	if !s.Expiry.IsZero() {
		state := "valid"
		if time.Now().After(s.Expiry) {
			state = "expired"
		}
		cmd.Printf("expiry:  %s (%s)\n", s.Expiry.Format(time.RFC3339), state)
	}
}

func redact(token string) string {
	if token == "" {
		return "(none)"
	}
	return fmt.Sprintf("(%d bytes, redacted)", len(token))
}
