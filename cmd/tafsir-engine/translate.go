// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tafsir-engine/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Mirror extracted files into a per-language tree",
	Long: `Translate reads every {source-dir}/{author}/*.json file and writes a copy
to {output-dir}/{language}/{author}/ in which each record carries a
translatedText field. The built-in translator copies the text unchanged;
records it cannot handle get a "[Translation failed: ...]" marker.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := translationConfig()
		sum, err := translate.New(translate.Identity{}, cfg, logger).Run(cmd.Context())
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Files", "Records", "Failed", "Skipped"})
		t.AppendRow(table.Row{sum.Files, sum.Records, sum.Failed, sum.Skipped})
		t.Render()
		fmt.Fprintf(cmd.OutOrStdout(), "Output: %s/%s/\n", cfg.OutputDir, cfg.Language)
		return nil
	},
}

func init() {
	translateCmd.Flags().String("source-dir", translate.DefaultSourceDir, "directory holding one folder per author")
	translateCmd.Flags().String("output-dir", translate.DefaultOutputDir, "root of the translated tree")
	translateCmd.Flags().String("language", translate.DefaultLanguage, "target language code")

	viper.BindPFlag("translate.source_dir", translateCmd.Flags().Lookup("source-dir"))
	viper.BindPFlag("translate.output_dir", translateCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("translate.language", translateCmd.Flags().Lookup("language"))

	rootCmd.AddCommand(translateCmd)
}
