package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mediakit/media-tools-mcp/internal/magick"
	"github.com/mediakit/media-tools-mcp/internal/paths"
	"github.com/mediakit/media-tools-mcp/internal/runner"
)

// === Image Tool Handlers ===
//
// Image tools depend on optional binaries (ImageMagick, pngquant), so each
// call verifies the binary before any filesystem side effect. Parameter
// validation happens first of all, before any process or filesystem
// activity.

type compressImageArgs struct {
	InputPath  string `json:"inputPath"`
	Quality    int    `json:"quality"`
	OutputPath string `json:"outputPath"`
}

func (s *Server) handleCompressImage(ctx context.Context, args json.RawMessage) (string, error) {
	var a compressImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	if a.Quality == 0 {
		a.Quality = 80
	}
	if a.Quality < 1 || a.Quality > 100 {
		return "", fmt.Errorf("quality must be between 1 and 100, got %d", a.Quality)
	}
	if !strings.HasSuffix(strings.ToLower(a.InputPath), ".png") {
		return "", errors.New("input file must be a PNG image")
	}

	if err := runner.EnsureAvailable(ctx, s.run, s.cfg.PngquantBin, magick.PngquantInstallHint); err != nil {
		return "", err
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, paths.Stem(in)+"_compressed.png")
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.PngquantBin, magick.PngquantArgs(in, out, a.Quality)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Image compressed successfully. Output saved to: %s", out), nil
}

type convertImageArgs struct {
	InputPath    string `json:"inputPath"`
	OutputFormat string `json:"outputFormat"`
	OutputPath   string `json:"outputPath"`
}

func (s *Server) handleConvertImage(ctx context.Context, args json.RawMessage) (string, error) {
	var a convertImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	format := strings.TrimPrefix(a.OutputFormat, ".")
	if format == "" {
		return "", errors.New("outputFormat is required")
	}

	if err := s.ensureMagick(ctx); err != nil {
		return "", err
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, fmt.Sprintf("%s_converted.%s", paths.Stem(in), format))
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.MagickBin, magick.ConvertArgs(in, out)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Image converted successfully. Output saved to: %s", out), nil
}

type resizeImageArgs struct {
	InputPath           string `json:"inputPath"`
	Width               int    `json:"width"`
	Height              int    `json:"height"`
	MaintainAspectRatio *bool  `json:"maintainAspectRatio"`
	OutputPath          string `json:"outputPath"`
}

func (s *Server) handleResizeImage(ctx context.Context, args json.RawMessage) (string, error) {
	var a resizeImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	if a.Width <= 0 && a.Height <= 0 {
		return "", errors.New("either width or height must be provided")
	}
	keepAspect := true
	if a.MaintainAspectRatio != nil {
		keepAspect = *a.MaintainAspectRatio
	}

	if err := s.ensureMagick(ctx); err != nil {
		return "", err
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, fmt.Sprintf("%s_resized.%s", paths.Stem(in), paths.Ext(in)))
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.MagickBin, magick.ResizeArgs(in, out, a.Width, a.Height, keepAspect)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Image resized successfully. Output saved to: %s", out), nil
}

type rotateImageArgs struct {
	InputPath  string  `json:"inputPath"`
	Degrees    float64 `json:"degrees"`
	OutputPath string  `json:"outputPath"`
}

func (s *Server) handleRotateImage(ctx context.Context, args json.RawMessage) (string, error) {
	var a rotateImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}

	if err := s.ensureMagick(ctx); err != nil {
		return "", err
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, fmt.Sprintf("%s_rotated.%s", paths.Stem(in), paths.Ext(in)))
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.MagickBin, magick.RotateArgs(in, out, a.Degrees)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Image rotated successfully. Output saved to: %s", out), nil
}

type addWatermarkArgs struct {
	InputPath     string `json:"inputPath"`
	WatermarkPath string `json:"watermarkPath"`
	Position      string `json:"position"`
	Opacity       int    `json:"opacity"`
	OutputPath    string `json:"outputPath"`
}

func (s *Server) handleAddWatermark(ctx context.Context, args json.RawMessage) (string, error) {
	var a addWatermarkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	if a.WatermarkPath == "" {
		return "", errors.New("watermarkPath is required")
	}
	if a.Position == "" {
		a.Position = "southeast"
	}
	gravity, err := magick.Gravity(a.Position)
	if err != nil {
		return "", err
	}
	if a.Opacity == 0 {
		a.Opacity = 50
	}
	if a.Opacity < 0 || a.Opacity > 100 {
		return "", fmt.Errorf("opacity must be between 0 and 100, got %d", a.Opacity)
	}

	if err := s.ensureMagick(ctx); err != nil {
		return "", err
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	mark, err := s.resolver.ResolveInput(a.WatermarkPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, fmt.Sprintf("%s_watermarked.%s", paths.Stem(in), paths.Ext(in)))
	if err != nil {
		return "", err
	}

	if _, _, err := s.run.Run(ctx, s.cfg.MagickBin, magick.WatermarkArgs(in, mark, out, gravity, a.Opacity)...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Watermark added successfully. Output saved to: %s", out), nil
}

type applyEffectArgs struct {
	InputPath  string `json:"inputPath"`
	Effect     string `json:"effect"`
	Intensity  int    `json:"intensity"`
	OutputPath string `json:"outputPath"`
}

func (s *Server) handleApplyEffect(ctx context.Context, args json.RawMessage) (string, error) {
	var a applyEffectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}
	if a.Intensity == 0 {
		a.Intensity = 50
	}
	if a.Intensity < 0 || a.Intensity > 100 {
		return "", fmt.Errorf("intensity must be between 0 and 100, got %d", a.Intensity)
	}
	op, err := magick.EffectOperator(a.Effect, a.Intensity)
	if err != nil {
		return "", err
	}

	if err := s.ensureMagick(ctx); err != nil {
		return "", err
	}

	in, err := s.resolver.ResolveInput(a.InputPath)
	if err != nil {
		return "", err
	}
	out, err := s.resolver.ResolveOutput(a.OutputPath, fmt.Sprintf("%s_%s.%s", paths.Stem(in), a.Effect, paths.Ext(in)))
	if err != nil {
		return "", err
	}

	cmdArgs := make([]string, 0, len(op)+2)
	cmdArgs = append(cmdArgs, in)
	cmdArgs = append(cmdArgs, op...)
	cmdArgs = append(cmdArgs, out)
	if _, _, err := s.run.Run(ctx, s.cfg.MagickBin, cmdArgs...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Effect '%s' applied successfully. Output saved to: %s", a.Effect, out), nil
}

func (s *Server) ensureMagick(ctx context.Context) error {
	return runner.EnsureAvailable(ctx, s.run, s.cfg.MagickBin, magick.InstallHint)
}
