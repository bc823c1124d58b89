package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/conf"
)

func newListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List public configuration entries",
		Long: `List every public configuration entry with its default value and
documentation. Internal entries are excluded.

The markdown format is suitable for generating reference documentation;
json and toml suit further tooling.`,
		Example: `  # Human-readable table
  quarryconf list

  # Reference documentation
  quarryconf list --format markdown > configuration.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderEntries(cmd.OutOrStdout(), conf.PublicEntries(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, toml, markdown")

	return cmd
}

func renderEntries(w io.Writer, entries []conf.EntryInfo, format string) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tDEFAULT\tDOC")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Default, e.Doc)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "toml":
		return toml.NewEncoder(w).Encode(struct {
			Entry []conf.EntryInfo `toml:"entry"`
		}{Entry: entries})
	case "markdown":
		fmt.Fprintln(w, "| Key | Default | Description |")
		fmt.Fprintln(w, "| --- | --- | --- |")
		for _, e := range entries {
			fmt.Fprintf(w, "| %s | %s | %s |\n",
				e.Key, e.Default, strings.ReplaceAll(e.Doc, "|", "\\|"))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
