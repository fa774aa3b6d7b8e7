package config

const (
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFmpegLogLevel = "error"
	defaultChainDir       = "~/.config/ffab/chains"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		FFmpeg: FFmpeg{
			Binary:     defaultFFmpegBinary,
			LogLevel:   defaultFFmpegLogLevel,
			ShowBanner: false,
			ShowStats:  true,
			Overwrite:  true,
		},
		Paths: Paths{
			ChainDir: defaultChainDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
