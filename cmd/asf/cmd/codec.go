/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/asfmeta/pkg/codecs"
)

type codecResult struct {
	ID    codecs.ID `yaml:"id" json:"id"`
	Name  string    `yaml:"name" json:"name"`
	Known bool      `yaml:"known" json:"known"`
}

// newCodecCmd represents the codec command
func newCodecCmd() *cobra.Command {
	codecCmd := &cobra.Command{
		Use:   "codec",
		Short: "Look up ASF audio codec names",
	}

	codecCmd.AddCommand(
		&cobra.Command{
			Use:   "get <id>",
			Short: "Resolve a codec id to its name",
			Long: `Resolve a 16-bit WAVE format tag to its registered name.
The id may be decimal or hex with a 0x prefix. Unregistered ids print
the configured unknown label.

Examples:
  asf codec get 0x0161
  asf codec get 353`,
			Args: cobra.ExactArgs(1),
			RunE: runCodecGet,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every registered codec",
			Args:  cobra.NoArgs,
			RunE:  runCodecList,
		},
		&cobra.Command{
			Use:   "search <term>",
			Short: "Find codecs whose name contains term",
			Long: `Find codecs whose name contains term, ignoring case.

Example:
  asf codec search adpcm`,
			Args: cobra.MinimumNArgs(1),
			RunE: runCodecSearch,
		},
	)

	return codecCmd
}

func runCodecGet(cmd *cobra.Command, args []string) error {
	id, err := codecs.ParseID(args[0])
	if err != nil {
		return err
	}

	name, known := container.GetCodecTable().Lookup(id)
	if !known {
		name = container.GetConfig().Output.UnknownLabel
	}
	container.GetLogger().WithFields(logrus.Fields{"id": id, "known": known}).Debug("codec lookup")

	res := codecResult{ID: id, Name: name, Known: known}

	return render(cmd, res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\t%s\n", res.ID, res.Name)
		return err
	})
}

func runCodecList(cmd *cobra.Command, args []string) error {
	return outputEntries(cmd, container.GetCodecTable().Entries())
}

func runCodecSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	matches := container.GetCodecTable().Search(term)
	container.GetLogger().WithFields(logrus.Fields{"term": term, "matches": len(matches)}).Debug("codec search")

	return outputEntries(cmd, matches)
}

// outputEntries displays codec entries as a table
func outputEntries(cmd *cobra.Command, entries []codecs.Entry) error {
	if entries == nil {
		entries = []codecs.Entry{}
	}

	return render(cmd, entries, func(w io.Writer) error {
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "No codecs found")
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\n", e.ID, e.Name)
		}
		return tw.Flush()
	})
}
