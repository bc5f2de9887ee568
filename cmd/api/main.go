package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sungraze: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCmd()
	cmd := &cobra.Command{
		Use:          "sungraze",
		Short:        "Sungraze Projects catalog and enquiry API",
		SilenceUsage: true,
		// running the binary with no subcommand starts the server
		RunE: serve.RunE,
	}
	cmd.AddCommand(
		serve,
		newSeedCmd(),
		newPublishCatalogCmd(),
	)
	return cmd
}
