// Package config holds the process-wide runtime configuration. Values are
// loaded once at startup through viper (flags bound by cmd, MEDIA_MCP_*
// environment variables) and injected into the server rather than read from
// ambient globals.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// MEDIA_MCP_DOWNLOADS_DIR.
const EnvPrefix = "MEDIA_MCP"

// Config is the resolved runtime configuration.
type Config struct {
	// DownloadsDir is the default output directory when a tool call omits
	// outputPath.
	DownloadsDir string

	// Binary names or paths for the external tools. Overridable for
	// sandboxed or non-PATH installs.
	FFmpegBin   string
	FFprobeBin  string
	MagickBin   string
	PngquantBin string

	// LogLevel is the minimum slog level written to stderr.
	LogLevel slog.Level
}

// Load resolves the configuration from the given viper instance, applying
// defaults and validating the log level.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("downloads-dir", defaultDownloadsDir())
	v.SetDefault("ffmpeg-bin", "ffmpeg")
	v.SetDefault("ffprobe-bin", "ffprobe")
	v.SetDefault("magick-bin", "magick")
	v.SetDefault("pngquant-bin", "pngquant")
	v.SetDefault("log-level", "info")

	level, err := ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}

	// An empty downloads-dir means "use the default"; a bound flag with an
	// empty default would otherwise shadow it.
	downloads := v.GetString("downloads-dir")
	if downloads == "" {
		downloads = defaultDownloadsDir()
	}

	return &Config{
		DownloadsDir: downloads,
		FFmpegBin:    v.GetString("ffmpeg-bin"),
		FFprobeBin:   v.GetString("ffprobe-bin"),
		MagickBin:    v.GetString("magick-bin"),
		PngquantBin:  v.GetString("pngquant-bin"),
		LogLevel:     level,
	}, nil
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be debug, info, warn, or error", s)
	}
}

func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "Downloads")
	}
	return filepath.Join(home, "Downloads")
}
