// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tafsir-engine/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the 114 chapters with their verse counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeListing(cmd.OutOrStdout(), format, catalog.Chapters(), func(t table.Writer) {
			t.AppendHeader(table.Row{"#", "Name", "English", "Verses", "Revealed"})
			for _, c := range catalog.Chapters() {
				t.AppendRow(table.Row{c.ID, c.NativeName, c.EnglishName, c.VerseCount, c.RevelationPlace})
			}
			t.AppendFooter(table.Row{"", "", "Total", catalog.TotalVerses(), ""})
		})
	},
}

var catalogAuthorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List the supported tafsir authors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeListing(cmd.OutOrStdout(), format, catalog.Authors(), func(t table.Writer) {
			t.AppendHeader(table.Row{"#", "Key", "Author"})
			for i, a := range catalog.Authors() {
				t.AppendRow(table.Row{i + 1, a.Key, a.DisplayName})
			}
		})
	},
}

func init() {
	catalogCmd.PersistentFlags().String("format", "table", "output format: table, yaml, or json")
	catalogCmd.AddCommand(catalogAuthorsCmd)
	rootCmd.AddCommand(catalogCmd)
}

// writeListing renders v as YAML or JSON, or as a table built by fill.
func writeListing(w io.Writer, format string, v any, fill func(table.Writer)) error {
	switch format {
	case "table", "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		fill(t)
		t.Render()
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
}
