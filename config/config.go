package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "BOEPATCH_CONFIG"
	groqModelEnv  = "GROQ_MODEL"
	groqHostEnv   = "GROQ_HOST"

	// Rotating credential slots, GROQ_API_KEY_1 .. GROQ_API_KEY_9.
	groqKeyEnvPattern = "GROQ_API_KEY_%d"
	maxKeySlots       = 9
)

// Config holds the settings required across the application.
type Config struct {
	DataDir  string         `yaml:"dataDir"`
	Database DatabaseConfig `yaml:"database"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Server   ServerConfig   `yaml:"server"`
	Groq     GroqConfig     `yaml:"groq"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// DatabaseConfig describes the SQLite patch store location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ArchiveConfig describes the raw-document archive location.
type ArchiveConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig describes the HTTP query surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// GroqConfig defines how to contact the Groq chat-completions API.
type GroqConfig struct {
	Host            string   `yaml:"host"`
	Model           string   `yaml:"model"`
	Keys            []string `yaml:"keys"`
	MaxOutputTokens int      `yaml:"maxOutputTokens"`
}

// PipelineConfig tunes chunking and external rate pacing.
type PipelineConfig struct {
	ChunkSize        int           `yaml:"chunkSize"`
	Pause            time.Duration `yaml:"pause"`
	MaxContentLength int           `yaml:"maxContentLength"`
	TokenCeiling     int           `yaml:"tokenCeiling"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides on top of the defaults.
func Load() Config {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("config: cannot read file, falling back to defaults", "path", path, "err", err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			cfg = Default()
			slog.Warn("config: cannot parse file, falling back to defaults", "path", path, "err", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindPaths()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(groqHostEnv); v != "" {
		c.Groq.Host = v
	}
	if v := os.Getenv(groqModelEnv); v != "" {
		c.Groq.Model = v
	}

	var keys []string
	for i := 1; i <= maxKeySlots; i++ {
		if v := os.Getenv(fmt.Sprintf(groqKeyEnvPattern, i)); v != "" {
			keys = append(keys, v)
		}
	}
	if len(keys) > 0 {
		c.Groq.Keys = keys
	}
}

// bindPaths derives store locations from DataDir when they were not
// configured explicitly.
func (c *Config) bindPaths() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.DataDir, "db", "patches.db")
	}
	if c.Archive.Path == "" {
		c.Archive.Path = filepath.Join(c.DataDir, "archive")
	}
}

// RawDocsRoot returns the root the acquisition stage writes under:
// one JSON file per document in <dataDir>/json/<YYYYMMDD>.
func (c *Config) RawDocsRoot() string {
	return filepath.Join(c.DataDir, "json")
}

// RawDocsDir returns the per-date directory under RawDocsRoot.
func (c *Config) RawDocsDir(date string) string {
	return filepath.Join(c.RawDocsRoot(), date)
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		DataDir: "data",
		Server:  ServerConfig{Addr: ":8080"},
		Groq: GroqConfig{
			Host:            "https://api.groq.com/openai/v1",
			Model:           "llama-3.3-70b-versatile",
			MaxOutputTokens: 4000,
		},
		Pipeline: PipelineConfig{
			ChunkSize:        3,
			Pause:            2 * time.Second,
			MaxContentLength: 6000,
			TokenCeiling:     10000,
		},
	}
}
