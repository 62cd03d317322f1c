package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/polachok/iata-types/codes"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// kind binds a subcommand name to the parser for that code family.
type kind struct {
	name  string
	short string
	parse func(string) (fmt.Stringer, error)
}

var kinds = []kind{
	{
		name:  "aircraft",
		short: "Validate aircraft type codes (3 characters, A-Z 0-9)",
		parse: func(s string) (fmt.Stringer, error) { return codes.ParseAircraftCode(s) },
	},
	{
		name:  "airline",
		short: "Validate airline designators (2 characters, A-Z 0-9)",
		parse: func(s string) (fmt.Stringer, error) { return codes.ParseAirlineCode(s) },
	},
	{
		name:  "airport",
		short: "Validate airport codes (3 letters, A-Z)",
		parse: func(s string) (fmt.Stringer, error) { return codes.ParseAirportCode(s) },
	},
	{
		name:  "city",
		short: "Validate city codes (3 letters, A-Z)",
		parse: func(s string) (fmt.Stringer, error) { return codes.ParseCityCode(s) },
	},
	{
		name:  "flight",
		short: "Validate flight numbers (1 to 9999)",
		parse: func(s string) (fmt.Stringer, error) { return codes.ParseFlightNumber(s) },
	},
}

// newRootCommand builds the command tree. Flags live in the closure so
// repeated runs in tests do not share state.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:   "iata <kind> <code>...",
		Short: "Validate IATA aviation codes",
		Long: `iata parses aircraft, airline, airport and city codes and flight numbers,
printing each valid value in canonical form and reporting why invalid ones
were rejected.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputText, outputJSON, outputYAML:
				return nil
			}
			return fmt.Errorf("unknown output format %q, expected text, json or yaml", output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Usage(); err != nil {
				return fmt.Errorf("writing usage: %w", err)
			}
			return errors.New("missing code kind")
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	for _, k := range kinds {
		root.AddCommand(newKindCommand(k, &output, stdout, stderr))
	}
	return root
}

func newKindCommand(k kind, output *string, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   k.name + " <code>...",
		Short: k.short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, 0, len(args))
			invalid := 0
			for _, arg := range args {
				v, err := k.parse(arg)
				if err != nil {
					_, _ = fmt.Fprintln(stderr, err)
					invalid++
					continue
				}
				values = append(values, v)
			}

			if err := writeValues(stdout, *output, values); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d %s codes invalid", invalid, len(args), k.name)
			}
			return nil
		},
	}
}

// writeValues encodes values through the codes package marshalers.
func writeValues(w io.Writer, format string, values []any) error {
	switch format {
	case outputJSON:
		return json.NewEncoder(w).Encode(values)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(values); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
