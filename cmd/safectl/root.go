package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-safe-keeper/internal/adapter"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
)

// tokenEnvVar supplies --token when the flag is not given.
const tokenEnvVar = "SAFE_TOKEN"

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	server  string
	token   string
	timeout time.Duration
	verbose bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger *logger.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "safectl",
		Short: "safectl - operator tool for the safe service",
		Long: `safectl encrypts and decrypts selected fields of JSON objects through a
running safe service, masks fields locally and mints service tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logger.NewConsoleLogger(opts.stderr, "safectl", opts.verbose)
			if opts.token == "" {
				opts.token = os.Getenv(tokenEnvVar)
			}
			opts.logger.Debug().Str("server", opts.server).Bool("token_set", opts.token != "").Msg("initialized")
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.server, "server", "s", "localhost:8080", "address of the safe service")
	flags.StringVarP(&opts.token, "token", "t", "", "service token (default $"+tokenEnvVar+")")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newObjectCmd(opts, "encrypt", "Encrypt fields of a JSON object", adapter.SafeClient.EncryptObject),
		newObjectCmd(opts, "decrypt", "Decrypt fields of a JSON object", adapter.SafeClient.DecryptObject),
		newMaskCmd(opts),
		newTokenCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

func (o *rootOptions) client() (adapter.SafeClient, error) {
	c, err := adapter.NewHTTPSafeClient(o.server, o.timeout, o.logger)
	if err != nil {
		return nil, err
	}
	c.SetToken(o.token)
	return c, nil
}
