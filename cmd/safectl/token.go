package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/service"
)

// signKeyEnvVar matches the variable the server reads its sign key from.
const signKeyEnvVar = "APP_TOKEN_SIGN_KEY"

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var app config.App

	cmd := &cobra.Command{
		Use:   "token <service-name>",
		Short: "Mint a service token for the HTTP API",
		Long: `Mint a signed service token. The sign key and issuer must match the
server configuration; the token subject is the calling service name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.TokenSignKey == "" {
				app.TokenSignKey = os.Getenv(signKeyEnvVar)
			}

			token, err := service.NewTokenService(app, opts.logger).CreateToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			opts.logger.Debug().Str("service", args[0]).Time("expires_at", token.ExpiresAt.Time).Msg("token minted")
			_, err = fmt.Fprintln(opts.stdout, token.SignedString)
			return err
		},
	}

	cmd.Flags().StringVar(&app.TokenSignKey, "sign-key", "", "token sign key (default $"+signKeyEnvVar+")")
	cmd.Flags().StringVar(&app.TokenIssuer, "issuer", "go-safe-keeper", "token issuer")
	cmd.Flags().DurationVar(&app.TokenDuration, "duration", time.Hour, "token lifetime")

	return cmd
}
