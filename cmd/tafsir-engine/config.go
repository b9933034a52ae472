// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tafsir-engine/internal/catalog"
	"github.com/pdiddy/tafsir-engine/internal/fetch"
	"github.com/pdiddy/tafsir-engine/internal/logging"
	"github.com/pdiddy/tafsir-engine/internal/translate"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

const (
	defaultSiteURL    = "https://tafsir.app"
	defaultMaxResults = 20
)

func init() {
	viper.SetDefault("author", catalog.DefaultAuthorKey)
	viper.SetDefault("base_url", defaultSiteURL)
	viper.SetDefault("delay", fetch.DefaultDelay)
	viper.SetDefault("timeout", fetch.DefaultTimeout)
	viper.SetDefault("user_agent", fetch.DefaultUserAgent)
	viper.SetDefault("data_dir", ".")
	viper.SetDefault("log.file", logging.DefaultFile)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("translate.source_dir", translate.DefaultSourceDir)
	viper.SetDefault("translate.output_dir", translate.DefaultOutputDir)
	viper.SetDefault("translate.language", translate.DefaultLanguage)
	viper.SetDefault("index.max_results", defaultMaxResults)
}

// registerPersistentFlags adds the flags shared by every subcommand and
// binds each to its configuration key.
func registerPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("author", catalog.DefaultAuthorKey, "tafsir author key: "+strings.Join(catalog.AuthorKeys(), ", "))
	flags.String("base-url", defaultSiteURL, "site root; pages are fetched from {base-url}/{author}/{chapter}/{verse}")
	flags.Duration("delay", fetch.DefaultDelay, "pause before every request")
	flags.Duration("timeout", fetch.DefaultTimeout, "HTTP request timeout")
	flags.String("user-agent", fetch.DefaultUserAgent, "User-Agent header")
	flags.String("data-dir", ".", "root directory for data/ and index/")
	flags.String("log-file", logging.DefaultFile, "append log events to this file (empty disables)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	for key, flag := range map[string]string{
		"author":     "author",
		"base_url":   "base-url",
		"delay":      "delay",
		"timeout":    "timeout",
		"user_agent": "user-agent",
		"data_dir":   "data-dir",
		"log.file":   "log-file",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		File:   viper.GetString("log.file"),
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	}
}

func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("timeout"),
		Delay:     viper.GetDuration("delay"),
		UserAgent: viper.GetString("user_agent"),
	}
}

// configuredAuthor resolves the configured author key. An unknown key is
// fatal for every command that fetches or reads author data.
func configuredAuthor() (types.Author, error) {
	author, err := catalog.LookupAuthor(viper.GetString("author"))
	if err != nil {
		logger.Error("invalid author", "err", err)
		return types.Author{}, err
	}
	return author, nil
}

// extractionConfig builds the extraction settings for author.
func extractionConfig(author types.Author) types.ExtractionConfig {
	site := strings.TrimSuffix(viper.GetString("base_url"), "/")
	return types.ExtractionConfig{
		HTTPConfig: httpConfig(),
		Author:     author,
		BaseURL:    site + "/" + author.Key,
		DataDir:    viper.GetString("data_dir"),
	}
}

func translationConfig() types.TranslationConfig {
	return types.TranslationConfig{
		SourceDir: viper.GetString("translate.source_dir"),
		OutputDir: viper.GetString("translate.output_dir"),
		Language:  viper.GetString("translate.language"),
	}
}

func indexConfig() types.IndexConfig {
	return types.IndexConfig{
		DataDir:    viper.GetString("data_dir"),
		MaxResults: viper.GetInt("index.max_results"),
	}
}
