package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ffab/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("FFAB_FFMPEG", "")
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "ffab", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantChains := filepath.Join(tempHome, ".config", "ffab", "chains")
	if cfg.Paths.ChainDir != wantChains {
		t.Fatalf("unexpected chain dir: got %q want %q", cfg.Paths.ChainDir, wantChains)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.FFmpeg.Binary)
	}
	if cfg.FFmpeg.LogLevel != "error" || !cfg.FFmpeg.ShowStats || cfg.FFmpeg.ShowBanner || !cfg.FFmpeg.Overwrite {
		t.Fatalf("unexpected ffmpeg defaults: %+v", cfg.FFmpeg)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" || cfg.Logging.Dir != "" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "ffab.toml")
	content := strings.Join([]string{
		"[ffmpeg]",
		`binary = "/opt/ffmpeg/bin/ffmpeg"`,
		`log_level = "WARNING"`,
		"show_stats = false",
		"",
		"[paths]",
		`chain_dir = "~/chains"`,
		"",
		"[logging]",
		`format = "JSON"`,
		`level = "debug"`,
		`dir = "~/logs"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected binary: %q", cfg.FFmpeg.Binary)
	}
	if cfg.FFmpeg.LogLevel != "warning" {
		t.Fatalf("expected log level lowercased, got %q", cfg.FFmpeg.LogLevel)
	}
	if cfg.FFmpeg.ShowStats {
		t.Fatal("expected show_stats override to apply")
	}
	if cfg.Paths.ChainDir != filepath.Join(tempHome, "chains") {
		t.Fatalf("unexpected chain dir: %q", cfg.Paths.ChainDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Dir != filepath.Join(tempHome, "logs") {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.ChainDir, cfg.Logging.Dir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	missing := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != missing {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Fatalf("unexpected binary: %q", cfg.FFmpeg.Binary)
	}
}

func TestEnvFallbackForFFmpegBinary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FFAB_FFMPEG", "/usr/local/bin/ffmpeg7")

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[ffmpeg]\nbinary = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FFmpeg.Binary != "/usr/local/bin/ffmpeg7" {
		t.Fatalf("expected env binary, got %q", cfg.FFmpeg.Binary)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"ffmpeg log level", "[ffmpeg]\nlog_level = \"loud\"\n", "ffmpeg.log_level"},
		{"log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"log level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
		{"malformed toml", "[ffmpeg\n", "parse config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleRoundTripsThroughLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("Load sample: %v", err)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
