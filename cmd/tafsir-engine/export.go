// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tafsir-engine/internal/store"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [chapters...]",
	Short: "Export extracted chapters of the configured author as CSV",
	Long: `Export reads data/{author}/{chapter}.json for each chapter given (or every
chapter file of the author when none are given) and writes one CSV file
named like the JSON output: data/{author}/{chapter}.csv for one chapter,
{author}_{min}-{max}.csv for several, {author}_all.csv for all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		author, err := configuredAuthor()
		if err != nil {
			return err
		}
		chapterIDs, err := parseInts(args)
		if err != nil {
			return err
		}

		root := viper.GetString("data_dir")
		records, err := loadChapters(root, author.Key, chapterIDs)
		if err != nil {
			return err
		}

		path, err := store.New(root, logger).WriteCSV(records, author.Key, chapterIDs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d records\n", path, len(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// loadChapters reads the chapter files of authorKey under root. With no
// chapterIDs it reads every chapter file present, in chapter order.
func loadChapters(root, authorKey string, chapterIDs []int) ([]types.ExtractedRecord, error) {
	dir := filepath.Join(root, store.DataDir, authorKey)
	if len(chapterIDs) == 0 {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}
		for _, e := range entries {
			name, ok := strings.CutSuffix(e.Name(), ".json")
			if !ok || e.IsDir() {
				continue
			}
			if id, err := strconv.Atoi(name); err == nil {
				chapterIDs = append(chapterIDs, id)
			}
		}
		slices.Sort(chapterIDs)
	}
	return readChapterFiles(dir, chapterIDs)
}

func readChapterFiles(dir string, chapterIDs []int) ([]types.ExtractedRecord, error) {
	var all []types.ExtractedRecord
	for _, id := range chapterIDs {
		records, err := store.ReadRecords(filepath.Join(dir, strconv.Itoa(id)+".json"))
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}
