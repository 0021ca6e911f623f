// Package main provides the newsdesk command: it loads a static article
// export and produces the graded JSON outputs (headline/url pairs, filtered
// and cleaned articles, unique organizations, location matches, archival
// status, unique authors).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"recpipe/internal/aggregator"
	"recpipe/internal/config"
	"recpipe/internal/fetcher"
	"recpipe/internal/formatter"
	"recpipe/internal/logger"
	"recpipe/internal/models"
	"recpipe/internal/normalizer"
	"recpipe/internal/output"
)

// Output file names.
const (
	headlineURLFile = "headline-url-list.json"
	filteredFile    = "articles-filtered.json"
	cleanedFile     = "articles-cleaned.json"
	orgsFile        = "unique-organizations.json"
	byLocationFile  = "articles-by-location.json"
	statusFile      = "article-status.json"
	authorsFile     = "unique-authors.json"
	manifestFile    = "manifest.json"
)

// Archival status labels.
const (
	statusActive   = "Active"
	statusArchived = "Archived"
)

func main() {
	configPath := flag.String("config", "configs/newsdesk.yaml", "Path to pipeline configuration")
	logLevel := flag.String("log-level", "", "Override logging level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Config load failed: %v", err))
		os.Exit(1)
	}

	if cfg.News == nil {
		log.Error("❌ Config has no news section")
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}

	log.SetLevel(level)

	log.Info("🗞️  Starting newsdesk pipeline")
	log.Info(fmt.Sprintf("📍 Source: %s", cfg.News.ArticlesFile))

	if err := run(cfg, log); err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline failed: %v", err))
		os.Exit(1)
	}

	log.Info("✅ Newsdesk pipeline complete")
}

func run(cfg *config.Config, log *logger.Logger) error {
	n := cfg.News

	layout := n.DateLayout
	if layout == "" {
		layout = time.RFC3339
	}

	writer := output.NewWriter(cfg.Output.Dir, cfg.Output.Indent, log)
	if cfg.Output.WriteManifest {
		writer = writer.WithManifest(output.NewManifest())
	}

	// Phase 1: load the article export.
	articles, err := fetcher.ReadJSONRecords(n.ArticlesFile)
	if err != nil {
		return fmt.Errorf("article load failed: %w", err)
	}

	log.Info("Loaded articles", "count", len(articles))

	// Phase 2: headline/url pairs.
	pairs := normalizer.ExtractPairs(articles, "headline.main", "web_url")
	if _, err := writer.Write(headlineURLFile, pairs); err != nil {
		return err
	}

	// Phase 3: drop the excluded keys.
	filtered := normalizer.FilterFields(articles, n.ExcludeKeys)
	if _, err := writer.Write(filteredFile, filtered); err != nil {
		return err
	}

	// Phase 4: remove keyword-less articles and convert publication dates.
	cleaned := normalizer.FilterPredicate(filtered, normalizer.HasNonEmptyList("keywords"))

	if err := normalizer.ConvertDateField(cleaned, n.DateField, layout); err != nil {
		return fmt.Errorf("date conversion failed: %w", err)
	}

	log.Info("Cleaned articles", "kept", len(cleaned), "dropped", len(filtered)-len(cleaned))

	if _, err := writer.Write(cleanedFile, cleaned); err != nil {
		return err
	}

	// Phase 5: unique organizations across all keyword lists.
	organizations := aggregator.DedupeAccumulate(cleaned, func(article models.Record) []any {
		return normalizer.KeywordValues(article, "keywords", "name", "organizations", "value")
	})

	if _, err := writer.Write(orgsFile, organizations); err != nil {
		return err
	}

	// Phase 6: articles matching the configured location.
	byLocation := normalizer.FilterPredicate(cleaned,
		normalizer.KeywordMatch("keywords", "name", "glocations", "value", n.Location))

	log.Info("Location matches", "location", n.Location, "count", len(byLocation))

	if _, err := writer.Write(byLocationFile, byLocation); err != nil {
		return err
	}

	// Phase 7: archival status per headline.
	status := normalizer.Classify(cleaned, "headline.main",
		normalizer.YearAtLeast(n.DateField, n.ActiveYearThreshold, statusActive, statusArchived))

	if _, err := writer.Write(statusFile, status); err != nil {
		return err
	}

	table := formatter.RenderTable([]string{"Headline", "Status"}, formatter.PairRows(status))
	log.Info("Archival status:\n" + table)

	// Phase 8: unique authors across all bylines.
	authors := aggregator.DedupeAccumulate(cleaned, func(article models.Record) []any {
		return normalizer.AuthorNames(article, "byline", "person")
	})

	if _, err := writer.Write(authorsFile, authors); err != nil {
		return err
	}

	if _, err := writer.WriteManifest(manifestFile); err != nil {
		return err
	}

	return nil
}
