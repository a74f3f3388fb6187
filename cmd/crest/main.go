package main

import (
	"os"

	"github.com/spf13/cobra"

	"crest/internal/interfaces/cli/migrate"
	"crest/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crest",
		Short: "Crest - community platform back-office service",
		Long:  `Crest is the support and moderation back-office service: tickets, reports, appeals, notifications and the audit trail.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
