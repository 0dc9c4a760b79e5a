// Package main implements the media-mcp command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediakit/media-tools-mcp/internal/config"
	"github.com/mediakit/media-tools-mcp/internal/logging"
	"github.com/mediakit/media-tools-mcp/internal/runner"
	"github.com/mediakit/media-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "media-mcp",
		Short: "MCP server exposing video and image manipulation tools",
		Long: `media-mcp is an MCP (Model Context Protocol) server that exposes media
manipulation operations as remote-callable tools. All transformations are
delegated to external programs: ffmpeg/ffprobe for video, ImageMagick for
image editing, and pngquant for PNG compression.

The server communicates over stdin/stdout; configure it in your MCP client.
Logs go to stderr. Settings can be supplied as flags or MEDIA_MCP_*
environment variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logging.Init(cfg.LogLevel, os.Stderr)

			log := logging.Get()
			log.Debug("starting server",
				"version", Version, "build_time", BuildTime, "commit", GitCommit,
				"downloads_dir", cfg.DownloadsDir)

			srv := server.New(cfg, afero.NewOsFs(), runner.ExecRunner{})
			return srv.Run()
		},
	}

	flags := rootCmd.Flags()
	flags.String("downloads-dir", "", "default output directory (default: ~/Downloads)")
	flags.String("ffmpeg-bin", "ffmpeg", "ffmpeg binary name or path")
	flags.String("ffprobe-bin", "ffprobe", "ffprobe binary name or path")
	flags.String("magick-bin", "magick", "ImageMagick binary name or path")
	flags.String("pngquant-bin", "pngquant", "pngquant binary name or path")
	flags.String("log-level", "info", "minimum log level (debug, info, warn, error)")
	for _, name := range []string{"downloads-dir", "ffmpeg-bin", "ffprobe-bin", "magick-bin", "pngquant-bin", "log-level"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "media-mcp %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", BuildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", GitCommit)
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
