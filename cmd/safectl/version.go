package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-safe-keeper/models"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client and, with --remote, server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			local := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)).Info()
			fmt.Fprintf(opts.stdout, "Client: %s (built %s, commit %s)\n",
				color.CyanString(local.Version), local.BuildDate, local.BuildCommit)

			if !remote {
				return nil
			}

			client, err := opts.client()
			if err != nil {
				return err
			}
			info, err := client.GetServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}

			fmt.Fprintf(opts.stdout, "Server: %s\n", color.CyanString(info.Version))
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "also query the server")

	return cmd
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
