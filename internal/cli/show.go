package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/billie-coop/winprefs/internal/settings"
	"github.com/billie-coop/winprefs/internal/tui/styles"
)

func newShowCommand(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <instance-id>",
		Short: "Print an instance's settings",
		Long: `Prints every setting of an instance. A new instance is seeded from the
default template first, exactly as the dialog would.

Output formats: text (default), json, yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(flags)
			if err != nil {
				return err
			}
			defer e.log.Close()

			store, err := e.openStore(args[0])
			if err != nil {
				return err
			}
			defer store.Close()

			return writeDocument(cmd.OutOrStdout(), store.Document(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeDocument(w io.Writer, doc *settings.Document, format string) error {
	switch format {
	case "json":
		data, err := doc.Encode()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "text":
		_, err := lipgloss.Fprintln(w, documentTable(doc))
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// documentTable lists the dialog's fields first, then any extra keys
func documentTable(doc *settings.Document) *table.Table {
	s := styles.CurrentTheme().S()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Subtle).
		Headers("SETTING", "KEY", "VALUE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Title.Padding(0, 1)
			}
			if col == 2 {
				return s.Text.Padding(0, 1)
			}
			return s.Muted.Padding(0, 1)
		})

	for _, f := range settings.Fields {
		value := "unset"
		if v, ok := doc.Get(f.Key); ok {
			value = f.Format(v)
		}
		t.Row(f.Label, f.Key, value)
	}

	doc.Range(func(key string, v settings.Value) bool {
		if _, known := settings.LookupField(key); !known {
			t.Row("", key, v.String())
		}
		return true
	})

	return t
}
