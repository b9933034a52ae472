// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tafsir-engine CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tafsir-engine/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once the log configuration is known.
var (
	logger    = logging.Discard()
	logCloser io.Closer
)

// rootCmd is the base command for the tafsir-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "tafsir-engine",
	Short: "Extract Quranic exegesis from tafsir.app into local JSON files",
	Long: `tafsir-engine fetches the tafsir of one author verse by verse from
tafsir.app, normalizes the text, and writes one JSON file per chapter under
data/{author}/. Extracted files can be translated into a mirrored tree,
exported as CSV, and indexed in SQLite for search.

Run "tafsir-engine interactive" for the guided menu, or use the extract
subcommands directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, c, err := logging.New(logConfig())
		if err != nil {
			return err
		}
		logger, logCloser = l, c
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tafsir-engine.yaml or ~/.config/tafsir-engine/tafsir-engine.yaml)")
	registerPersistentFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tafsir-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tafsir-engine"))
		}
	}

	viper.SetEnvPrefix("TAFSIR_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
