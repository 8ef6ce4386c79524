package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/bintree/internal/render"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	OutputFormat string `flag:"output,o" desc:"Output format (text|tree|json|yaml)" default:""`
	Quiet        bool   `flag:"quiet,q" desc:"Suppress step output" default:"false"`
}

// AddStandardFlags adds standard flags to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "output":
			addOutputFlags(cmd, flags)
		case "quiet":
			cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress step output")
		}
	}

	return flags
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "",
		fmt.Sprintf("Output format (%s), defaults to output.format from config", strings.Join(render.Formats(), "|")))

	AddFlagValidation(cmd, "output", func(format string) error {
		return ValidateFormatWithSuggestion(format, render.Formats())
	})
}

// ResolveFormat returns the flag value when set, otherwise the configured default
func (f *StandardFlags) ResolveFormat(configured string) string {
	if f.OutputFormat != "" {
		return f.OutputFormat
	}
	return configured
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	originalSet := flag.Value.Set

	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}

// ValidateFormatWithSuggestion rejects unknown formats and names the closest
// supported one when the input is a prefix or case variant of it
func ValidateFormatWithSuggestion(format string, valid []string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}

	lower := strings.ToLower(format)
	for _, v := range valid {
		if lower == v || (lower != "" && strings.HasPrefix(v, lower)) {
			return fmt.Errorf("invalid format %q, did you mean %q? (supported: %s)",
				format, v, strings.Join(valid, ", "))
		}
	}

	return fmt.Errorf("invalid format %q (supported: %s)", format, strings.Join(valid, ", "))
}

// parseValues converts arguments such as "4 2 6" or "4,2,6" into integers
func parseValues(args []string) ([]int, error) {
	var values []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: must be an integer", field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}
