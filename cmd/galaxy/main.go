// Package main provides the galaxy command: it fetches the fleet-scenario
// records from the resource API, runs them through projection, boarding,
// capture and dialogue merging, and writes the graded JSON outputs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

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
	filmFilteredFile = "film-filtered.json"
	filmFinalFile    = "film-final.json"
	manifestFile     = "manifest.json"
)

// Bucket names on the boarded starship.
const (
	bucketPassengers = "passengers"
	bucketIntruder   = "intruder"
)

func main() {
	configPath := flag.String("config", "configs/galaxy.yaml", "Path to pipeline configuration")
	logLevel := flag.String("log-level", "", "Override logging level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Config load failed: %v", err))
		os.Exit(1)
	}

	if cfg.Galaxy == nil {
		log.Error("❌ Config has no galaxy section")
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}

	log.SetLevel(level)

	log.Info("🚀 Starting galaxy pipeline")
	log.Info(fmt.Sprintf("📍 API: %s", cfg.API.BaseURL))

	if err := run(cfg, log); err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline failed: %v", err))
		os.Exit(1)
	}

	log.Info("✅ Galaxy pipeline complete")
}

func run(cfg *config.Config, log *logger.Logger) error {
	g := cfg.Galaxy
	client := fetcher.NewClient(cfg.API.Timeout())

	filmsEndpoint := cfg.API.Endpoint("films")
	starshipsEndpoint := cfg.API.Endpoint("starships")
	peopleEndpoint := cfg.API.Endpoint("people")
	planetsEndpoint := cfg.API.Endpoint("planets")

	writer := output.NewWriter(cfg.Output.Dir, cfg.Output.Indent, log)
	if cfg.Output.WriteManifest {
		writer = writer.WithManifest(output.NewManifest())
	}

	// Phase 1: fetch and project the film.
	log.Info("Phase 1: Fetching film...", "search", g.FilmSearch)

	rawFilm, err := client.SearchOne(filmsEndpoint, g.FilmSearch)
	if err != nil {
		return fmt.Errorf("film fetch failed: %w", err)
	}

	film := normalizer.Project(rawFilm, models.FilmDefaults())

	if _, err := writer.Write(filmFilteredFile, film); err != nil {
		return err
	}

	// Phase 2: fetch and project the starships.
	log.Info("Phase 2: Fetching starships...", "count", len(g.Starships))

	flagshipEntry, ok := g.Flagship()
	if !ok {
		return errors.New("no flagship configured")
	}

	attackerEntry, ok := g.Attacker()
	if !ok {
		return errors.New("no attacker configured")
	}

	flagship, err := fetchStarship(client, starshipsEndpoint, flagshipEntry.Search)
	if err != nil {
		return err
	}

	attacker, err := fetchStarship(client, starshipsEndpoint, attackerEntry.Search)
	if err != nil {
		return err
	}

	// Phase 3: fetch the crew, resolving homeworlds and merging dialogue.
	log.Info("Phase 3: Fetching crew...", "count", len(g.Crew))

	resolve := normalizer.PlanetResolver(client, planetsEndpoint)

	var (
		boarding []aggregator.Flagged
		escaped  []aggregator.Flagged
	)

	for _, entry := range g.Crew {
		rawPerson, err := client.SearchOne(peopleEndpoint, entry.Search)
		if err != nil {
			return fmt.Errorf("crew fetch failed for %q: %w", entry.Search, err)
		}

		person, err := normalizer.ProjectWith(rawPerson, models.PersonDefaults(), "homeworld", resolve)
		if err != nil {
			return fmt.Errorf("crew projection failed for %q: %w", entry.Search, err)
		}

		aggregator.MergeMatching(person, g.Dialogue, "name", "dialogue")

		boarding = append(boarding, aggregator.Flagged{Item: person, Flag: entry.Intruder})

		if entry.Escapes {
			escaped = append(escaped, aggregator.Flagged{Item: person})
		}
	}

	// Phase 4: board the crew, then any troopers from the CSV roster.
	log.Info("Phase 4: Boarding...")

	aggregator.AssignByFlag(flagship, boarding, bucketIntruder, bucketPassengers)

	if g.TroopersCSV != "" {
		troopers, err := boardingListFromCSV(g.TroopersCSV)
		if err != nil {
			return err
		}

		aggregator.AssignByFlag(flagship, troopers, bucketIntruder, bucketPassengers)
		log.Info("Troopers boarded", "count", len(troopers))
	}

	logBoardingManifest(log, flagship)

	// Phase 5: capture the flagship into the attacker's docking bay.
	log.Info("Phase 5: Capture...")

	aggregator.AttachSubResource(attacker, "primary_docking_bay", "docked", flagship)

	// Phase 6: final film assembly.
	log.Info("Phase 6: Assembling film record...")

	aggregator.BucketInsert(film, "starships", attacker)

	for _, e := range escaped {
		e.Item["end_vessel"] = g.EscapeVessel
		aggregator.BucketInsert(film, "escaped_passengers", e.Item)
	}

	if _, err := writer.Write(filmFinalFile, film); err != nil {
		return err
	}

	if _, err := writer.WriteManifest(manifestFile); err != nil {
		return err
	}

	return nil
}

func fetchStarship(client *fetcher.Client, endpoint, search string) (models.Record, error) {
	raw, err := client.SearchOne(endpoint, search)
	if err != nil {
		return nil, fmt.Errorf("starship fetch failed for %q: %w", search, err)
	}

	return normalizer.Project(raw, models.StarshipDefaults()), nil
}

// boardingListFromCSV reads the trooper roster and pairs each projected
// trooper with the intruder flag parsed from its own column. The flag column
// holds "0" or "1".
func boardingListFromCSV(path string) ([]aggregator.Flagged, error) {
	rows, err := fetcher.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("trooper roster read failed: %w", err)
	}

	defaults := models.Record{
		"person":   "",
		"weapon":   "",
		"intruder": "",
	}

	flagged := make([]aggregator.Flagged, 0, len(rows))

	for i, row := range rows {
		trooper := normalizer.Project(row, defaults)

		raw := models.GetString(trooper, "intruder", "0")

		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("trooper roster row %d has invalid intruder flag %q: %w", i, raw, err)
		}

		flagged = append(flagged, aggregator.Flagged{Item: trooper, Flag: value != 0})
	}

	return flagged, nil
}

func logBoardingManifest(log *logger.Logger, starship models.Record) {
	var rows [][]string

	appendBucket := func(bucket, role string) {
		items, _ := starship[bucket].([]any)
		for _, item := range items {
			record, ok := item.(models.Record)
			if !ok {
				continue
			}

			name := models.GetString(record, "name", models.GetString(record, "person", "?"))
			rows = append(rows, []string{name, role})
		}
	}

	appendBucket(bucketPassengers, "passenger")
	appendBucket(bucketIntruder, "intruder")

	table := formatter.RenderTable([]string{"Name", "Role"}, rows)
	log.Info("Boarding manifest:\n" + table)
}
