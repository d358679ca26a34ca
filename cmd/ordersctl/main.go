package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/ordertracker/pkg/clients"
)

var Version = "dev"

type options struct {
	server   string
	userID   int
	password string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Admin commands for the order tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVarP(&opts.server, "server", "s", envOr("ORDERTRACKER_URL", "http://localhost:8080"), "order tracker base URL")
	rootCmd.PersistentFlags().IntVarP(&opts.userID, "user", "u", 1, "user id to log in as (1 Alex, 2 Isa)")
	rootCmd.PersistentFlags().StringVarP(&opts.password, "password", "p", os.Getenv("ORDERTRACKER_PASSWORD"), "shared password")

	rootCmd.AddCommand(migrateCmd(opts))
	rootCmd.AddCommand(statusCmd(opts))
	rootCmd.AddCommand(exportCmd(opts))

	return rootCmd
}

// connect builds a client and logs in when a password is given.
func connect(cmd *cobra.Command, opts *options) (*clients.HTTPClient, error) {
	client := clients.NewHTTPClient(opts.server)
	if opts.password == "" {
		return client, nil
	}
	if err := client.Login(cmd.Context(), opts.userID, opts.password); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return client, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
