// Package config provides hierarchical configuration management.
// Priority: defaults < system < user < project < env; CLI flags
// override everything at the command layer.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all csvtab configuration.
type Config struct {
	Version int `yaml:"version"`

	Output OutputConfig `yaml:"output"`
	Sum    SumConfig    `yaml:"sum"`
	Watch  WatchConfig  `yaml:"watch"`
	Export ExportConfig `yaml:"export"`
	Batch  BatchConfig  `yaml:"batch"`
}

// OutputConfig controls how tables are printed.
type OutputConfig struct {
	// Plain disables styled output and prints bare aligned text.
	Plain bool `yaml:"plain"`
}

// SumConfig controls the sum command.
type SumConfig struct {
	// SkipHeader treats the first record as a header row.
	SkipHeader bool `yaml:"skip_header"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after a write before re-rendering.
	Debounce time.Duration `yaml:"debounce"`
}

// ExportConfig controls XLSX export.
type ExportConfig struct {
	Sheet string `yaml:"sheet"`
}

// BatchConfig controls parallel multi-file processing.
type BatchConfig struct {
	// Workers is the parallelism limit; 0 means NumCPU.
	Workers int `yaml:"workers"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Export: ExportConfig{
			Sheet: "Sheet1",
		},
	}
}

// Manager handles configuration loading and merging.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	paths  []string // Paths that were loaded
}

// NewManager creates a new configuration manager.
func NewManager() *Manager {
	return &Manager{
		config: Default(),
	}
}

// Load loads configuration from all sources in priority order.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = Default()

	// Load from paths in order (later overrides earlier)
	for _, path := range m.getConfigPaths() {
		if err := m.loadFile(path); err != nil {
			if !os.IsNotExist(err) {
				return err
			}
		} else {
			m.paths = append(m.paths, path)
		}
	}

	m.loadEnv()
	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Sources returns the config files that were actually loaded.
func (m *Manager) Sources() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paths
}

// getConfigPaths returns config file paths in priority order.
func (m *Manager) getConfigPaths() []string {
	var paths []string

	if runtime.GOOS != "windows" {
		paths = append(paths, "/etc/csvtab/config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".csvtab", "config.yaml"))
	}

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".csvtab.yaml"))
	}

	return paths
}

// loadFile loads a single config file and merges it.
func (m *Manager) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var partial Config
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return err
	}

	m.merge(&partial)
	return nil
}

// merge merges non-zero values from src into config. Booleans merge
// only when true: yaml cannot distinguish false from absent.
func (m *Manager) merge(src *Config) {
	if src.Output.Plain {
		m.config.Output.Plain = true
	}
	if src.Sum.SkipHeader {
		m.config.Sum.SkipHeader = true
	}
	if src.Watch.Debounce != 0 {
		m.config.Watch.Debounce = src.Watch.Debounce
	}
	if src.Export.Sheet != "" {
		m.config.Export.Sheet = src.Export.Sheet
	}
	if src.Batch.Workers != 0 {
		m.config.Batch.Workers = src.Batch.Workers
	}
}

// loadEnv loads configuration from environment variables.
func (m *Manager) loadEnv() {
	if v := os.Getenv("CSVTAB_PLAIN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m.config.Output.Plain = b
		}
	}

	if v := os.Getenv("CSVTAB_SKIP_HEADER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m.config.Sum.SkipHeader = b
		}
	}

	if v := os.Getenv("CSVTAB_SHEET"); v != "" {
		m.config.Export.Sheet = v
	}

	if v := os.Getenv("CSVTAB_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			m.config.Batch.Workers = n
		}
	}
}
