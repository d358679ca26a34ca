package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/ordertracker/internal/dto"
)

func statusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which storage backend the server uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			resp, err := client.Get(cmd.Context(), "/api/storage", nil)
			if err != nil {
				return fmt.Errorf("status failed: %w", err)
			}

			var status dto.StorageStatusDTO
			if err := json.Unmarshal(resp.Body, &status); err != nil {
				return fmt.Errorf("unexpected response: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Storage Status")
			fmt.Fprintln(out, strings.Repeat("=", 30))
			fmt.Fprintf(out, "  Backend:  %s\n", status.Backend)
			fmt.Fprintf(out, "  External: %s\n", yesNo(status.External))
			fmt.Fprintf(out, "  Healthy:  %s\n", yesNo(status.Healthy))
			if status.Error != "" {
				fmt.Fprintf(out, "  Error:    %s\n", status.Error)
			}
			fmt.Fprintf(out, "  Checked:  %s\n", status.CheckedAt)
			return nil
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
