// Package config provides configuration management for the record pipeline
// binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL        = errors.New("api.base_url is required")
	ErrInvalidTimeout        = errors.New("api.timeout_sec must be at least 1")
	ErrMissingOutputDir      = errors.New("output.dir is required")
	ErrInvalidIndent         = errors.New("output.indent must be non-negative")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrMissingFilmSearch     = errors.New("galaxy.film_search is required")
	ErrNoStarships           = errors.New("galaxy needs at least one starship entry")
	ErrStarshipMissingSearch = errors.New("search is required")
	ErrStarshipMissingRole   = errors.New("role must be 'flagship' or 'attacker'")
	ErrCrewMissingSearch     = errors.New("search is required")
	ErrMissingArticlesFile   = errors.New("news.articles_file is required")
	ErrMissingDateField      = errors.New("news.date_field is required")
	ErrInvalidThresholdYear  = errors.New("news.active_year_threshold must be a plausible year")
	ErrNoJobConfigured       = errors.New("either a galaxy or a news section is required")
)

// Starship roles within the fleet scenario.
const (
	RoleFlagship = "flagship"
	RoleAttacker = "attacker"
)

// Config represents the complete pipeline configuration. Exactly one of
// Galaxy or News drives a given binary; both may be present in a shared file.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Galaxy  *GalaxyConfig `yaml:"galaxy"`
	News    *NewsConfig   `yaml:"news"`
}

// APIConfig describes the remote resource API.
type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Timeout returns the fetch timeout as a duration.
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSec) * time.Second
}

// Endpoint joins a resource path onto the base URL.
func (a *APIConfig) Endpoint(resource string) string {
	return fmt.Sprintf("%s/%s/", a.BaseURL, resource)
}

// OutputConfig defines the JSON sink behavior.
type OutputConfig struct {
	Dir           string `yaml:"dir"`
	Indent        int    `yaml:"indent"`
	WriteManifest bool   `yaml:"write_manifest"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// StarshipEntry names one starship to fetch and its role in the scenario.
type StarshipEntry struct {
	Search string `yaml:"search"`
	Role   string `yaml:"role"`
}

// CrewEntry names one person to fetch and whether they board as an intruder.
type CrewEntry struct {
	Search   string `yaml:"search"`
	Intruder bool   `yaml:"intruder"`
	Escapes  bool   `yaml:"escapes"`
}

// GalaxyConfig drives the fleet-scenario pipeline.
type GalaxyConfig struct {
	FilmSearch   string              `yaml:"film_search"`
	Starships    []StarshipEntry     `yaml:"starships"`
	Crew         []CrewEntry         `yaml:"crew"`
	TroopersCSV  string              `yaml:"troopers_csv"`
	Dialogue     map[string][]string `yaml:"dialogue"`
	EscapeVessel string              `yaml:"escape_vessel"`
}

// NewsConfig drives the article-transform pipeline.
type NewsConfig struct {
	ArticlesFile        string   `yaml:"articles_file"`
	ExcludeKeys         []string `yaml:"exclude_keys"`
	Location            string   `yaml:"location"`
	DateField           string   `yaml:"date_field"`
	DateLayout          string   `yaml:"date_layout"`
	ActiveYearThreshold int      `yaml:"active_year_threshold"`
}

// Load reads and validates configuration from a YAML file.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Galaxy == nil && c.News == nil {
		return ErrNoJobConfigured
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if c.Output.Indent < 0 {
		return ErrInvalidIndent
	}

	if c.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[c.Logging.Level] {
			return ErrInvalidLogLevel
		}
	}

	if c.Galaxy != nil {
		if err := c.validateGalaxy(); err != nil {
			return err
		}
	}

	if c.News != nil {
		if err := c.validateNews(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateGalaxy() error {
	// The galaxy pipeline is the only network consumer.
	if c.API.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.API.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	g := c.Galaxy
	if g.FilmSearch == "" {
		return ErrMissingFilmSearch
	}

	if len(g.Starships) == 0 {
		return ErrNoStarships
	}

	for i, ship := range g.Starships {
		if ship.Search == "" {
			return fmt.Errorf("%w: galaxy.starships[%d]", ErrStarshipMissingSearch, i)
		}

		if ship.Role != RoleFlagship && ship.Role != RoleAttacker {
			return fmt.Errorf("%w: galaxy.starships[%d]", ErrStarshipMissingRole, i)
		}
	}

	for i, member := range g.Crew {
		if member.Search == "" {
			return fmt.Errorf("%w: galaxy.crew[%d]", ErrCrewMissingSearch, i)
		}
	}

	return nil
}

func (c *Config) validateNews() error {
	n := c.News
	if n.ArticlesFile == "" {
		return ErrMissingArticlesFile
	}

	if n.DateField == "" {
		return ErrMissingDateField
	}

	if n.ActiveYearThreshold < 1000 || n.ActiveYearThreshold > 9999 {
		return ErrInvalidThresholdYear
	}

	return nil
}

// Flagship returns the first configured starship with the flagship role.
func (g *GalaxyConfig) Flagship() (StarshipEntry, bool) {
	return g.shipByRole(RoleFlagship)
}

// Attacker returns the first configured starship with the attacker role.
func (g *GalaxyConfig) Attacker() (StarshipEntry, bool) {
	return g.shipByRole(RoleAttacker)
}

func (g *GalaxyConfig) shipByRole(role string) (StarshipEntry, bool) {
	for _, ship := range g.Starships {
		if ship.Role == role {
			return ship, true
		}
	}

	return StarshipEntry{}, false
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{API: %s, OutputDir: %s, Galaxy: %t, News: %t}",
		c.API.BaseURL,
		c.Output.Dir,
		c.Galaxy != nil,
		c.News != nil,
	)
}
