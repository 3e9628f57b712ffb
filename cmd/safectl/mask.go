package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-safe-keeper/internal/service"
)

// newMaskCmd masks locally; no server round trip is needed.
func newMaskCmd(opts *rootOptions) *cobra.Command {
	var (
		keys []string
		mask string
		file string
	)

	cmd := &cobra.Command{
		Use:     "mask",
		Short:   "Replace fields of a JSON object with a mask",
		Example: `  safectl mask -k password -k card.number < object.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readObject(opts.stdin, file)
			if err != nil {
				return err
			}
			return writeObject(opts.stdout, service.ReplaceEncryptedValuesWith(obj, mask, keys...))
		},
	}

	cmd.Flags().StringSliceVarP(&keys, "key", "k", nil, "dotted path of a field to mask (repeatable)")
	cmd.Flags().StringVarP(&mask, "mask", "m", service.DefaultMask, "replacement literal")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the object from this file instead of stdin")

	return cmd
}
