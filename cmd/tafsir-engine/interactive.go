// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tafsir-engine/internal/catalog"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Choose an author and an extraction from a menu",
	Long: `Interactive prints the author menu, then asks whether to extract a
single verse, a chapter, a range of chapters, or everything. Range and full
extractions ask for confirmation first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(ctx context.Context, stdin io.Reader, out io.Writer) error {
	in := bufio.NewReader(stdin)
	fmt.Fprintln(out, "=== Tafsir Content Extractor ===")

	author, err := chooseAuthor(in, out)
	if err != nil {
		return err
	}
	r := newRunnerFor(author, out)

	fmt.Fprintln(out, "\nExtraction Options:")
	fmt.Fprintln(out, "1. Extract single verse")
	fmt.Fprintln(out, "2. Extract entire chapter")
	fmt.Fprintln(out, "3. Extract specific range (WARNING: This will take some time)")
	fmt.Fprintln(out, "4. Extract all (WARNING: This will take a very long time)")

	choice, err := readLine(in, out, "Enter your choice (1-4): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		chapter, err := readInt(in, out, fmt.Sprintf("Enter chapter number (%d-%d): ", catalog.FirstChapter, catalog.LastChapter))
		if err != nil {
			return err
		}
		verse, err := readInt(in, out, "Enter verse number: ")
		if err != nil {
			return err
		}
		return r.verse(ctx, chapter, verse)

	case "2":
		chapter, err := readInt(in, out, fmt.Sprintf("Enter chapter number (%d-%d): ", catalog.FirstChapter, catalog.LastChapter))
		if err != nil {
			return err
		}
		return r.chapter(ctx, chapter)

	case "3":
		start, err := readInt(in, out, "Enter start chapter number: ")
		if err != nil {
			return err
		}
		end, err := readInt(in, out, "Enter end chapter number: ")
		if err != nil {
			return err
		}
		if !confirm(in, out, fmt.Sprintf(
			"This will extract chapters %d-%d from %s. This may take some time. Continue? (yes/no): ",
			start, end, author.DisplayName)) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		return r.chapterRange(ctx, start, end)

	case "4":
		if !confirm(in, out, fmt.Sprintf(
			"This will extract the entire Quran from %s. This may take hours. Continue? (yes/no): ",
			author.DisplayName)) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		return r.all(ctx)
	}

	fmt.Fprintln(out, "Invalid choice.")
	return nil
}

// chooseAuthor prints the numbered author menu. Anything other than a
// listed number selects the default author.
func chooseAuthor(in *bufio.Reader, out io.Writer) (types.Author, error) {
	authors := catalog.Authors()
	fmt.Fprintln(out, "\nAvailable Tafsir Authors:")
	for i, a := range authors {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, a.DisplayName, a.Key)
	}

	reply, err := readLine(in, out, fmt.Sprintf("Select tafsir author (1-%d): ", len(authors)))
	if err != nil {
		return types.Author{}, err
	}
	if n, convErr := strconv.Atoi(reply); convErr == nil && n >= 1 && n <= len(authors) {
		fmt.Fprintf(out, "Selected: %s\n", authors[n-1].DisplayName)
		return authors[n-1], nil
	}

	def, err := catalog.LookupAuthor(catalog.DefaultAuthorKey)
	if err != nil {
		return types.Author{}, err
	}
	fmt.Fprintf(out, "Invalid choice. Defaulting to %s.\n", def.DisplayName)
	return def, nil
}

func readInt(in *bufio.Reader, out io.Writer, prompt string) (int, error) {
	reply, err := readLine(in, out, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(reply)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", reply)
	}
	return n, nil
}
