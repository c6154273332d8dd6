package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wen911119/preact/internal/errors"
)

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %v is not *errors.Error", err)
	}
	return e.Code
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should default to false")
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
	if cfg.Tracing.TracerName != DefaultTracerName {
		t.Errorf("Tracing.TracerName = %q, want %q", cfg.Tracing.TracerName, DefaultTracerName)
	}
	if cfg.IndentWidth() != DefaultIndent {
		t.Errorf("IndentWidth() = %d, want %d", cfg.IndentWidth(), DefaultIndent)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Path() != "" {
			t.Errorf("Path() = %q, want empty", cfg.Path())
		}
		if cfg.Log.Level != DefaultLogLevel {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
		}
	})

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "preact.json"), `{
  "log": {"level": "debug", "format": "json"},
  "metrics": {"enabled": true, "namespace": "ui"},
  "tracing": {"enabled": true},
  "output": {"indent": 0}
}
`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v, want debug/json", cfg.Log)
		}
		if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "ui" {
			t.Errorf("Metrics = %+v, want enabled/ui", cfg.Metrics)
		}
		if !cfg.Tracing.Enabled || cfg.Tracing.TracerName != DefaultTracerName {
			t.Errorf("Tracing = %+v", cfg.Tracing)
		}
		if cfg.IndentWidth() != 0 {
			t.Errorf("IndentWidth() = %d, want 0", cfg.IndentWidth())
		}
		if filepath.Base(cfg.Path()) != "preact.json" {
			t.Errorf("Path() = %q", cfg.Path())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "preact.yaml"), `log:
  level: warn
metrics:
  enabled: true
tracing:
  tracerName: docs
output:
  indent: 4
`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
		}
		if cfg.Log.Format != DefaultLogFormat {
			t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
		}
		if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != DefaultNamespace {
			t.Errorf("Metrics = %+v", cfg.Metrics)
		}
		if cfg.Tracing.TracerName != "docs" {
			t.Errorf("Tracing.TracerName = %q, want docs", cfg.Tracing.TracerName)
		}
		if cfg.IndentWidth() != 4 {
			t.Errorf("IndentWidth() = %d, want 4", cfg.IndentWidth())
		}
	})

	t.Run("json wins over yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "preact.json"), `{"log": {"level": "error"}}`)
		writeFile(t, filepath.Join(dir, "preact.yaml"), "log:\n  level: debug\n")
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Log.Level != "error" {
			t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
		}
	})
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
	}{
		{"invalid json", "preact.json", "not valid json", "E100"},
		{"invalid yaml", "preact.yaml", "log: [unclosed", "E100"},
		{"unknown level", "level.json", `{"log": {"level": "loud"}}`, "E101"},
		{"unknown format", "format.json", `{"log": {"format": "xml"}}`, "E102"},
		{"bad namespace", "ns.json", `{"metrics": {"namespace": "bad-name"}}`, "E103"},
		{"unsupported type", "preact.toml", "", "E104"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("Expected error")
			}
			if got := errorCode(t, err); got != tt.wantCode {
				t.Errorf("code = %s, want %s (%v)", got, tt.wantCode, err)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.json"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		if !os.IsNotExist(stderrors.Unwrap(err)) {
			t.Errorf("error should wrap the not-exist error: %v", err)
		}
	})
}

func TestSave(t *testing.T) {
	for _, name := range []string{"preact.json", "preact.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := Default()
			cfg.Log.Level = "debug"
			cfg.Metrics.Enabled = true

			if err := cfg.Save(); err == nil {
				t.Error("Expected error when saving without path")
			}
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo error: %v", err)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile error: %v", err)
			}
			if loaded.Log.Level != "debug" || !loaded.Metrics.Enabled {
				t.Errorf("loaded = %+v", loaded)
			}

			loaded.Log.Format = "json"
			if err := loaded.Save(); err != nil {
				t.Fatalf("Save error: %v", err)
			}
			reloaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile error: %v", err)
			}
			if reloaded.Log.Format != "json" {
				t.Errorf("Log.Format = %q, want json", reloaded.Log.Format)
			}
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		err := Default().SaveTo(filepath.Join(t.TempDir(), "preact.ini"))
		if err == nil || !strings.Contains(err.Error(), "E104") {
			t.Errorf("SaveTo(.ini) = %v, want E104", err)
		}
	})
}

func TestValidate(t *testing.T) {
	indent := func(n int) *int { return &n }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, false},
		{"empty level", func(c *Config) { c.Log.Level = "" }, true},
		{"namespace with digits", func(c *Config) { c.Metrics.Namespace = "ui_2" }, false},
		{"namespace with leading digit", func(c *Config) { c.Metrics.Namespace = "2ui" }, true},
		{"compact output", func(c *Config) { c.Output.Indent = indent(0) }, false},
		{"negative indent", func(c *Config) { c.Output.Indent = indent(-1) }, true},
		{"huge indent", func(c *Config) { c.Output.Indent = indent(9) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
