// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/pdiddy/tafsir-engine/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build, search, and export the SQLite record index",
	Long: `Index keeps a SQLite database at {data-dir}/index/tafsir.db built from
the extracted chapter files. Use subcommands to build it, search tafsir
text, or export the indexed records.`,
}

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Index new and changed chapter files",
	Long: `Build scans data/{author}/*.json and indexes every record. Files whose
modification time has not changed since the last build are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := index.NewStore(indexConfig(), logger)
		if err != nil {
			return err
		}
		defer s.Close()

		sum, err := s.Ingest(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "indexed: %d, updated: %d, skipped: %d, failed: %d\n",
			sum.Indexed, sum.Updated, sum.Skipped, sum.Failed)
		if sum.Failed > 0 {
			return fmt.Errorf("%d file(s) failed indexing", sum.Failed)
		}
		return nil
	},
}

var indexSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search indexed tafsir text",
	Long: `Search matches text as a substring of the indexed tafsir text. Results
can be narrowed with --author and --chapter and are ordered by author,
chapter, and verse.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := queryOptsFromFlags(cmd, args)
		if opts.Query == "" && opts.Author == "" && opts.ChapterID == 0 {
			return fmt.Errorf("query or filter required: provide search text, --author, or --chapter")
		}

		s, err := index.NewStore(indexConfig(), logger)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.Search(cmd.Context(), opts)
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatSearchOutput(cmd.OutOrStdout(), results, jsonOutput)
	},
}

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export indexed records to YAML or JSON",
	Long: `Export writes the indexed records (or those matching the filters) to
{data-dir}/index/export.yaml or export.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		s, err := index.NewStore(indexConfig(), logger)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := queryOptsFromFlags(cmd, args)
		var path string
		switch format {
		case "yaml", "":
			path, err = s.ExportYAML(cmd.Context(), opts)
		case "json":
			path, err = s.ExportJSON(cmd.Context(), opts)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

const snippetWidth = 60

func formatSearchOutput(w io.Writer, results []index.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []index.QueryResult{}
		}
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Author", "Chapter", "Verse", "Text"})
	for _, r := range results {
		snippet := strings.ReplaceAll(r.TafsirText, "\n", " ")
		t.AppendRow(table.Row{r.AuthorKey, fmt.Sprintf("%d %s", r.ChapterID, r.EnglishName), r.VerseID,
			text.Trim(snippet, snippetWidth)})
	}
	t.Render()
	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	author, _ := cmd.Flags().GetString("author")
	chapter, _ := cmd.Flags().GetInt("chapter")
	limit, _ := cmd.Flags().GetInt("limit")
	return index.QueryOptions{
		Query:      strings.Join(args, " "),
		Author:     author,
		ChapterID:  chapter,
		MaxResults: limit,
	}
}

func init() {
	for _, c := range []*cobra.Command{indexSearchCmd, indexExportCmd} {
		// Shadows the persistent --author: an empty filter matches every author.
		c.Flags().String("author", "", "filter by author key")
		c.Flags().Int("chapter", 0, "filter by chapter number")
	}
	indexSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
