// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tafsir-engine/internal/extract"
	"github.com/pdiddy/tafsir-engine/internal/fetch"
	"github.com/pdiddy/tafsir-engine/internal/store"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract tafsir for a verse, a chapter, a range, or the whole Quran",
	Long: `Extract fetches {base-url}/{author}/{chapter}/{verse} for every requested
verse, parses the page, and writes the records of each chapter to
data/{author}/{chapter}.json. Verses that fail are logged and skipped.`,
}

var extractVerseCmd = &cobra.Command{
	Use:   "verse <chapter> <verse>",
	Short: "Extract a single verse",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		r, err := newRunner(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.verse(cmd.Context(), nums[0], nums[1])
	},
}

var extractChapterCmd = &cobra.Command{
	Use:   "chapter <chapter>",
	Short: "Extract every verse of one chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		r, err := newRunner(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.chapter(cmd.Context(), nums[0])
	},
}

var extractRangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "Extract chapters start through end, one file per chapter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		r, err := newRunner(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !confirmed(cmd, fmt.Sprintf(
			"This will extract chapters %d-%d from %s. This may take some time. Continue? (yes/no): ",
			nums[0], nums[1], r.author.DisplayName)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return r.chapterRange(cmd.Context(), nums[0], nums[1])
	},
}

var extractAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Extract all 114 chapters, one file per chapter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !confirmed(cmd, fmt.Sprintf(
			"This will extract the entire Quran from %s. This may take hours. Continue? (yes/no): ",
			r.author.DisplayName)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return r.all(cmd.Context())
	},
}

func init() {
	extractRangeCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	extractAllCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	extractCmd.AddCommand(extractVerseCmd)
	extractCmd.AddCommand(extractChapterCmd)
	extractCmd.AddCommand(extractRangeCmd)
	extractCmd.AddCommand(extractAllCmd)

	rootCmd.AddCommand(extractCmd)
}

func confirmed(cmd *cobra.Command, prompt string) bool {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true
	}
	return confirm(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), prompt)
}

// confirm prints prompt and reports whether the reply is "yes".
func confirm(in *bufio.Reader, out io.Writer, prompt string) bool {
	reply, _ := readLine(in, out, prompt)
	return strings.EqualFold(reply, "yes")
}

// readLine prints prompt and returns the next trimmed input line.
func readLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		nums[i] = n
	}
	return nums, nil
}

// runner ties an Extractor and a Writer to one author and reports results
// on out.
type runner struct {
	author    types.Author
	extractor *extract.Extractor
	writer    *store.Writer
	out       io.Writer
}

func newRunner(out io.Writer) (*runner, error) {
	author, err := configuredAuthor()
	if err != nil {
		return nil, err
	}
	return newRunnerFor(author, out), nil
}

func newRunnerFor(author types.Author, out io.Writer) *runner {
	cfg := extractionConfig(author)
	writer := store.New(cfg.DataDir, logger)
	return &runner{
		author:    author,
		extractor: extract.New(fetch.New(cfg.HTTPConfig, logger), writer, cfg, logger),
		writer:    writer,
		out:       out,
	}
}

func (r *runner) verse(ctx context.Context, chapterID, verseID int) error {
	rec, err := r.extractor.ExtractVerse(ctx, chapterID, verseID)
	if err != nil {
		if errors.Is(err, types.ErrInvalidChapter) || errors.Is(err, types.ErrInvalidVerse) {
			return err
		}
		logger.Warn("verse extraction failed", "chapter", chapterID, "verse", verseID, "err", err)
		fmt.Fprintf(r.out, "\nNo content extracted for chapter %d, verse %d. See %s for details.\n",
			chapterID, verseID, viper.GetString("log.file"))
		return nil
	}

	fmt.Fprintf(r.out, "\nExtracted content for chapter %d, verse %d - %s\n", chapterID, verseID, r.author.DisplayName)
	fmt.Fprintf(r.out, "Tafsir text length: %d characters\n", utf8.RuneCountInString(rec.TafsirText))
	return r.save([]types.ExtractedRecord{rec}, chapterID)
}

func (r *runner) chapter(ctx context.Context, chapterID int) error {
	records, err := r.extractor.ExtractChapter(ctx, chapterID)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "\nExtracted %d verses from chapter %d - %s\n", len(records), chapterID, r.author.DisplayName)
	if len(records) == 0 {
		return nil
	}
	return r.save(records, chapterID)
}

// save writes the records of a verse or chapter run and lists the files.
func (r *runner) save(records []types.ExtractedRecord, chapterID int) error {
	path, err := r.writer.Write(records, r.author.Key, []int{chapterID})
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "\nExtraction completed successfully!")
	fmt.Fprintln(r.out, "Files created:")
	fmt.Fprintf(r.out, "- %s: %d records\n", path, len(records))
	if logFile := viper.GetString("log.file"); logFile != "" {
		fmt.Fprintf(r.out, "- %s: Extraction log file\n", logFile)
	}
	fmt.Fprintf(r.out, "- Author: %s (%s)\n", r.author.DisplayName, r.author.Key)
	return nil
}

func (r *runner) chapterRange(ctx context.Context, startID, endID int) error {
	result, err := r.extractor.ExtractChapterRange(ctx, startID, endID)
	if errors.Is(err, types.ErrInvalidChapter) {
		return err
	}
	fmt.Fprintf(r.out, "\nExtracted %d total verses from chapters %d-%d - %s\n",
		len(result.Records), startID, endID, r.author.DisplayName)
	r.printBatch(result)
	return err
}

func (r *runner) all(ctx context.Context) error {
	result, err := r.extractor.ExtractAll(ctx)
	fmt.Fprintf(r.out, "\nExtracted %d total verses from the entire Quran - %s\n",
		len(result.Records), r.author.DisplayName)
	r.printBatch(result)
	return err
}

func (r *runner) printBatch(result extract.BatchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Run", "Chapters", "Verses", "Files", "Empty", "Write failures"})
	t.AppendRow(table.Row{result.RunID, result.Chapters, len(result.Records), len(result.Files),
		result.EmptyChapters, result.WriteFailures})
	t.Render()

	fmt.Fprintln(r.out, "\nNote: Individual chapter files have been created for each extracted chapter.")
	fmt.Fprintf(r.out, "Format: %s\n", filepath.Join(store.DataDir, r.author.Key, "{chapter}.json"))
}
