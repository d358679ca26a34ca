package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/ordertracker/pkg/clients"
)

func exportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download CSV exports",
	}
	cmd.PersistentFlags().StringP("dir", "d", ".", "directory to write the file into")

	cmd.AddCommand(exportOrdersCmd(opts))
	cmd.AddCommand(exportActivityCmd(opts))
	return cmd
}

func exportOrdersCmd(opts *options) *cobra.Command {
	var (
		month, year int
		all         bool
	)
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Export the orders of a month, or all of them",
		Example: `  ordersctl export orders --month 6 --year 2025
  ordersctl export orders --all -d /tmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && (month == 0 || year == 0) {
				return fmt.Errorf("either --all or both --month and --year are required")
			}
			query := url.Values{}
			if all {
				query.Set("all", "true")
			} else {
				query.Set("month", strconv.Itoa(month))
				query.Set("year", strconv.Itoa(year))
			}
			return download(cmd, opts, "/api/export/orders", query, "pedidos.csv")
		},
	}
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12")
	cmd.Flags().IntVar(&year, "year", 0, "year")
	cmd.Flags().BoolVar(&all, "all", false, "export every order")
	return cmd
}

func exportActivityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Export the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return download(cmd, opts, "/api/export/activity-log", nil, "registro-actividad.csv")
		},
	}
}

func download(cmd *cobra.Command, opts *options, path string, query url.Values, fallback string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	client, err := connect(cmd, opts)
	if err != nil {
		return err
	}
	resp, err := client.Get(cmd.Context(), path, query)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return save(cmd, dir, resp, fallback)
}

func save(cmd *cobra.Command, dir string, resp *clients.Response, fallback string) error {
	name := filepath.Base(resp.Filename())
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = fallback
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, resp.Body, 0o644); err != nil {
		return fmt.Errorf("can't write %s: %w", target, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", target, len(resp.Body))
	return nil
}
