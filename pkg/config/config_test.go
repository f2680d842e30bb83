package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 500ms", cfg.Watch.Debounce)
	}
	if cfg.Export.Sheet != "Sheet1" {
		t.Errorf("Export.Sheet = %q, want Sheet1", cfg.Export.Sheet)
	}
	if cfg.Output.Plain {
		t.Error("Output.Plain should default to false")
	}
	if cfg.Batch.Workers != 0 {
		t.Errorf("Batch.Workers = %d, want 0 (auto)", cfg.Batch.Workers)
	}
}

func TestManager_Merge(t *testing.T) {
	m := NewManager()

	m.merge(&Config{
		Sum:    SumConfig{SkipHeader: true},
		Export: ExportConfig{Sheet: "data"},
		Batch:  BatchConfig{Workers: 4},
	})

	cfg := m.Get()
	if !cfg.Sum.SkipHeader {
		t.Error("Sum.SkipHeader not merged")
	}
	if cfg.Export.Sheet != "data" {
		t.Errorf("Export.Sheet = %q, want data", cfg.Export.Sheet)
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("Batch.Workers = %d, want 4", cfg.Batch.Workers)
	}

	// Zero values do not clobber earlier settings.
	m.merge(&Config{})
	cfg = m.Get()
	if cfg.Export.Sheet != "data" {
		t.Errorf("Export.Sheet = %q after empty merge, want data", cfg.Export.Sheet)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Watch.Debounce = %v after empty merge, want 500ms", cfg.Watch.Debounce)
	}
}

func TestManager_Env(t *testing.T) {
	t.Setenv("CSVTAB_PLAIN", "true")
	t.Setenv("CSVTAB_SKIP_HEADER", "1")
	t.Setenv("CSVTAB_SHEET", "biostats")
	t.Setenv("CSVTAB_WORKERS", "8")

	m := NewManager()
	m.loadEnv()

	cfg := m.Get()
	if !cfg.Output.Plain {
		t.Error("CSVTAB_PLAIN not applied")
	}
	if !cfg.Sum.SkipHeader {
		t.Error("CSVTAB_SKIP_HEADER not applied")
	}
	if cfg.Export.Sheet != "biostats" {
		t.Errorf("Export.Sheet = %q, want biostats", cfg.Export.Sheet)
	}
	if cfg.Batch.Workers != 8 {
		t.Errorf("Batch.Workers = %d, want 8", cfg.Batch.Workers)
	}
}

func TestManager_EnvInvalid(t *testing.T) {
	t.Setenv("CSVTAB_WORKERS", "many")

	m := NewManager()
	m.loadEnv()

	if m.Get().Batch.Workers != 0 {
		t.Errorf("invalid CSVTAB_WORKERS should be ignored, got %d", m.Get().Batch.Workers)
	}
}
