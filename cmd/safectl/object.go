package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-safe-keeper/internal/adapter"
)

var errSafeRequired = errors.New("--safe is required")

type objectTransform func(c adapter.SafeClient, ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error)

func newObjectCmd(opts *rootOptions, use, short string, transform objectTransform) *cobra.Command {
	var (
		safeID string
		keys   []string
		file   string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: fmt.Sprintf(`  safectl %[1]s --safe acc-1 --key password --key card.number < object.json
  safectl %[1]s -S acc-1 -k password -f object.json`, use),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if safeID == "" {
				return errSafeRequired
			}

			obj, err := readObject(opts.stdin, file)
			if err != nil {
				return err
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			out, err := transform(client, cmd.Context(), safeID, obj, keys...)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}

			return writeObject(opts.stdout, out)
		},
	}

	cmd.Flags().StringVarP(&safeID, "safe", "S", "", "safe id the object belongs to")
	cmd.Flags().StringSliceVarP(&keys, "key", "k", nil, "dotted path of a field to transform (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the object from this file instead of stdin")

	return cmd
}

// readObject decodes a single JSON object from file, or from stdin when
// file is empty or "-".
func readObject(stdin io.Reader, file string) (map[string]any, error) {
	r := stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open object file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var obj map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("read JSON object: %w", err)
	}
	if obj == nil {
		return nil, errors.New("read JSON object: input is not an object")
	}
	return obj, nil
}

func writeObject(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
