package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newTestFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if cfg.Kind() != KindCircle {
		t.Errorf("default kind = %v, want circle", cfg.Kind())
	}
	if cfg.ListenAddr() != "localhost:8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr())
	}
}

func TestParseConfigSquareFlag(t *testing.T) {
	cfg, err := ParseConfig(newTestFlagSet(), []string{"-square", "-port", "9000"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Kind() != KindSquare || cfg.Port != 9000 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lisa.toml")
	data := "image = \"mona.png\"\nport = 7000\nworkers = 2\nsquare = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseConfig(newTestFlagSet(), []string{"-config", path, "-port", "9001"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Image != "mona.png" || cfg.Workers != 2 || !cfg.Square {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Port != 9001 {
		t.Errorf("explicit flag did not override file: port %d", cfg.Port)
	}
	if cfg.HistorySize != DefaultConfig().HistorySize {
		t.Errorf("unset key changed: history %d", cfg.HistorySize)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig(newTestFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Error("expected error for missing config file")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(bad, []byte("port = \"eighty\"\n"), 0o644)
	if _, err := ParseConfig(newTestFlagSet(), []string{"-config", bad}); err == nil {
		t.Error("expected error for mistyped config value")
	}

	if _, err := ParseConfig(newTestFlagSet(), []string{"-workers", "0"}); err == nil {
		t.Error("expected validation error for zero workers")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"port zero", func(c *Config) { c.Port = 0 }, false},
		{"port too high", func(c *Config) { c.Port = 70000 }, false},
		{"no image", func(c *Config) { c.Image = "" }, false},
		{"negative max size", func(c *Config) { c.MaxSize = -1 }, false},
		{"zero history", func(c *Config) { c.HistorySize = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, ok %v", err, tt.ok)
			}
		})
	}
}

func TestConfigRows(t *testing.T) {
	rows := DefaultConfig().Rows()
	got := map[string]any{}
	for _, r := range rows {
		got[r.Key] = r.Value
	}
	if got["seed"] != "time-based" || got["max size"] != "original" {
		t.Errorf("rows = %v", rows)
	}
}

func TestParseConfigShapeName(t *testing.T) {
	tests := []struct {
		args    []string
		want    ShapeKind
		wantErr bool
	}{
		{nil, KindCircle, false},
		{[]string{"-shape", "circle"}, KindCircle, false},
		{[]string{"-shape", "square"}, KindSquare, false},
		{[]string{"-shape", "circle", "-square"}, KindSquare, false},
		{[]string{"-shape", "triangle"}, KindCircle, true},
	}
	for _, tt := range tests {
		cfg, err := ParseConfig(newTestFlagSet(), tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("%v: err = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if err == nil && cfg.Kind() != tt.want {
			t.Errorf("%v: kind = %v, want %v", tt.args, cfg.Kind(), tt.want)
		}
	}
}

func TestViewerURL(t *testing.T) {
	tests := []struct {
		addr string
		port int
		want string
	}{
		{"localhost", 8080, "http://localhost:8080/lisa"},
		{"", 8080, "http://localhost:8080/lisa"},
		{"0.0.0.0", 9000, "http://localhost:9000/lisa"},
		{"::", 9000, "http://localhost:9000/lisa"},
		{"lisa.example.org", 80, "http://lisa.example.org:80/lisa"},
		{"192.168.1.5", 8080, "http://192.168.1.5:8080/lisa"},
		{"::1", 8080, "http://[::1]:8080/lisa"},
	}
	for _, tt := range tests {
		c := DefaultConfig()
		c.Addr, c.Port = tt.addr, tt.port
		if got := c.ViewerURL(); got != tt.want {
			t.Errorf("ViewerURL(%q, %d) = %q, want %q", tt.addr, tt.port, got, tt.want)
		}
	}
}
