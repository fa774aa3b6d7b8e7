package chain

import (
	"errors"
	"strings"

	"ffab/internal/config"
	"ffab/internal/filtercomplex"
)

// LogSettings controls the ffmpeg verbosity flags.
type LogSettings struct {
	Level      string
	ShowBanner bool
	ShowStats  bool
	Overwrite  bool
}

// DefaultLogSettings mirrors the configuration defaults.
func DefaultLogSettings() LogSettings {
	return LogSettings{Level: "error", ShowStats: true, Overwrite: true}
}

// LogSettingsFromConfig extracts the ffmpeg flags from cfg.
func LogSettingsFromConfig(cfg *config.Config) LogSettings {
	if cfg == nil {
		return DefaultLogSettings()
	}
	return LogSettings{
		Level:      cfg.FFmpeg.LogLevel,
		ShowBanner: cfg.FFmpeg.ShowBanner,
		ShowStats:  cfg.FFmpeg.ShowStats,
		Overwrite:  cfg.FFmpeg.Overwrite,
	}
}

func (s LogSettings) args() []string {
	var args []string
	if s.Overwrite {
		args = append(args, "-y")
	}
	if !s.ShowBanner {
		args = append(args, "-hide_banner")
	}
	if s.Level != "" {
		args = append(args, "-loglevel", s.Level)
	}
	if s.ShowStats {
		args = append(args, "-stats")
	} else {
		args = append(args, "-nostats")
	}
	return args
}

// Args returns the ffmpeg argument vector (without the binary) that renders
// input through the chain into output. When every filter is muted or the
// chain is empty, the filter graph and -map flags are omitted and ffmpeg
// copies the audio straight to the output encoding.
func (c *Chain) Args(input, output string, settings LogSettings) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New("ffmpeg args: input path is required")
	}
	if strings.TrimSpace(output) == "" {
		return nil, errors.New("ffmpeg args: output path is required")
	}

	args := settings.args()
	args = append(args, "-i", input)
	if result := c.FilterComplex(); !result.Empty() {
		args = append(args, "-filter_complex", result.Expression, "-map", filtercomplex.Sink)
	}
	args = append(args, c.Output().Args()...)
	return append(args, output), nil
}

// CommandLine renders binary plus Args as a single shell-safe string.
func (c *Chain) CommandLine(binary, input, output string, settings LogSettings) (string, error) {
	args, err := c.Args(input, output, settings)
	if err != nil {
		return "", err
	}
	if binary == "" {
		binary = "ffmpeg"
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(binary))
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " "), nil
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>()[]*?!#~{}=") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
