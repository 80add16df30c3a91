package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/asfmeta/pkg/config"
	"gopkg.in/yaml.v3"
)

// render writes v as yaml or json, or calls text for the plain format
func render(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	switch container.GetConfig().Output.Format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return text(w)
	}
}

// formatHex prints wire bytes in the configured hex style
func formatHex(b []byte) string {
	if container.GetConfig().Output.HexStyle == config.HexCompact {
		return strings.ToUpper(hex.EncodeToString(b))
	}
	return fmt.Sprintf("% X", b)
}

// parseHex accepts bytes as one string or several, separated by spaces or colons
func parseHex(args []string) ([]byte, error) {
	digits := strings.NewReplacer(" ", "", ":", "").Replace(strings.Join(args, ""))
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("invalid hex bytes: %w", err)
	}
	return raw, nil
}
