package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/ordertracker/internal/dto"
)

func migrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Copy the in-process ledger into the configured external store",
		Long: `Ask the running server to copy every order and activity it holds in
memory into its external store (Redis or Postgres).

Examples:
  ordersctl migrate
  ordersctl migrate -s http://tracker:8080 -p secret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			resp, err := client.Post(cmd.Context(), "/api/migrate-to-kv", nil)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			var result dto.MigrationResponseDTO
			if err := json.Unmarshal(resp.Body, &result); err != nil {
				return fmt.Errorf("unexpected response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			fmt.Fprintf(cmd.OutOrStdout(), "  orders:     %d\n", result.MigratedOrders)
			fmt.Fprintf(cmd.OutOrStdout(), "  activities: %d\n", result.MigratedActivities)
			return nil
		},
	}
}
