/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/asfmeta/pkg/guid"
)

type guidResult struct {
	GUID  string `yaml:"guid" json:"guid"`
	Bytes string `yaml:"bytes" json:"bytes"`
	UUID  string `yaml:"uuid,omitempty" json:"uuid,omitempty"`
}

// newGUIDCmd represents the guid command
func newGUIDCmd() *cobra.Command {
	guidCmd := &cobra.Command{
		Use:   "guid",
		Short: "Convert ASF GUIDs between text and wire form",
	}

	guidCmd.AddCommand(
		&cobra.Command{
			Use:   "encode <guid>",
			Short: "Encode a text GUID into its 16 wire bytes",
			Long: `Encode a text GUID into the 16 bytes stored in an ASF header.

Example:
  asf guid encode 75B22630-668E-11CF-A6D9-00AA0062CE6C`,
			Args: cobra.ExactArgs(1),
			RunE: runGUIDEncode,
		},
		&cobra.Command{
			Use:   "decode <hex bytes>",
			Short: "Decode 16 wire bytes into a text GUID",
			Long: `Decode the 16 bytes of an ASF header GUID into its text form.
Bytes may be given as one hex string or separated by spaces or colons.

Examples:
  asf guid decode 3026B2758E66CF11A6D900AA0062CE6C
  asf guid decode 30 26 B2 75 8E 66 CF 11 A6 D9 00 AA 00 62 CE 6C`,
			Args: cobra.MinimumNArgs(1),
			RunE: runGUIDDecode,
		},
		&cobra.Command{
			Use:   "uuid <guid>",
			Short: "Show the RFC 4122 byte order of a GUID",
			Args:  cobra.ExactArgs(1),
			RunE:  runGUIDUUID,
		},
	)

	return guidCmd
}

func runGUIDEncode(cmd *cobra.Command, args []string) error {
	g, err := guid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to encode GUID: %w", err)
	}

	res := guidResult{GUID: g.String(), Bytes: formatHex(g.Bytes())}
	container.GetLogger().WithFields(logrus.Fields{"guid": res.GUID, "bytes": res.Bytes}).Debug("encoded GUID")

	return render(cmd, res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Bytes)
		return err
	})
}

func runGUIDDecode(cmd *cobra.Command, args []string) error {
	raw, err := parseHex(args)
	if err != nil {
		return err
	}

	g, err := guid.FromBytes(raw)
	if err != nil {
		return fmt.Errorf("failed to decode GUID: %w", err)
	}

	res := guidResult{GUID: g.String(), Bytes: formatHex(raw)}
	container.GetLogger().WithFields(logrus.Fields{"guid": res.GUID, "bytes": res.Bytes}).Debug("decoded GUID")

	return render(cmd, res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.GUID)
		return err
	})
}

func runGUIDUUID(cmd *cobra.Command, args []string) error {
	g, err := guid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse GUID: %w", err)
	}

	res := guidResult{GUID: g.String(), Bytes: formatHex(g.Bytes()), UUID: g.UUID().String()}

	return render(cmd, res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.UUID)
		return err
	})
}
