package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mediakit/media-tools-mcp/internal/ffmpeg"
	"github.com/mediakit/media-tools-mcp/internal/paths"
)

// === Video Tool Handlers ===
//
// Video tools shell out to ffmpeg (ffprobe for inspection). The transcoder
// is assumed present; if it is not, the failure surfaces when the process
// cannot be started.

type executeFFmpegArgs struct {
	InputPath  string   `json:"inputPath"`
	Options    []string `json:"options"`
	OutputPath string   `json:"outputPath"`
}

func (s *Server) handleExecuteFFmpeg(ctx context.Context, args json.RawMessage) (string, error) {
	var a executeFFmpegArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	if len(a.Options)%2 != 0 {
		return "", errors.New("options must contain an even number of entries (flag/value pairs)")
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, "output.mp4")
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.FFmpegBin, ffmpeg.RawArgs(in, out, a.Options)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("FFmpeg command completed successfully. Output saved to: %s", out), nil
}

type convertVideoArgs struct {
	InputPath    string `json:"inputPath"`
	OutputFormat string `json:"outputFormat"`
	OutputPath   string `json:"outputPath"`
}

func (s *Server) handleConvertVideo(ctx context.Context, args json.RawMessage) (string, error) {
	var a convertVideoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	format := strings.TrimPrefix(a.OutputFormat, ".")
	if format == "" {
		return "", errors.New("outputFormat is required")
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, fmt.Sprintf("%s_converted.%s", paths.Stem(in), format))
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.FFmpegBin, ffmpeg.ConvertArgs(in, out)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Video converted successfully. Output saved to: %s", out), nil
}

type compressVideoArgs struct {
	InputPath  string `json:"inputPath"`
	Quality    int    `json:"quality"`
	OutputPath string `json:"outputPath"`
}

func (s *Server) handleCompressVideo(ctx context.Context, args json.RawMessage) (string, error) {
	var a compressVideoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	if a.Quality == 0 {
		a.Quality = ffmpeg.DefaultCRF
	}
	if a.Quality < 1 || a.Quality > 51 {
		return "", fmt.Errorf("quality must be between 1 and 51, got %d", a.Quality)
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, paths.Stem(in)+"_compressed.mp4")
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.FFmpegBin, ffmpeg.CompressArgs(in, out, a.Quality)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Video compressed successfully. Output saved to: %s", out), nil
}

type trimVideoArgs struct {
	InputPath  string `json:"inputPath"`
	StartTime  string `json:"startTime"`
	Duration   string `json:"duration"`
	OutputPath string `json:"outputPath"`
}

func (s *Server) handleTrimVideo(ctx context.Context, args json.RawMessage) (string, error) {
	var a trimVideoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	if !ffmpeg.ValidTimestamp(a.StartTime) {
		return "", fmt.Errorf("startTime must be in HH:MM:SS format, got %q", a.StartTime)
	}
	if !ffmpeg.ValidTimestamp(a.Duration) {
		return "", fmt.Errorf("duration must be in HH:MM:SS format, got %q", a.Duration)
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, paths.Stem(in)+"_trimmed.mp4")
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.FFmpegBin, ffmpeg.TrimArgs(in, out, a.StartTime, a.Duration)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Video trimmed successfully. Output saved to: %s", out), nil
}

type mediaInfoArgs struct {
	InputPath string `json:"inputPath"`
}

func (s *Server) handleMediaInfo(ctx context.Context, args json.RawMessage) (string, error) {
	var a mediaInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}

	stdout, _, err := s.run.Run(ctx, s.cfg.FFprobeBin, ffmpeg.ProbeArgs(in)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}
