// Package magick builds argument lists for the ImageMagick binary and the
// pngquant compressor. Builders are pure: they never touch the filesystem.
//
// All argument lists target ImageMagick 7's single "magick" entry point;
// composite operations use its "composite" subcommand.
package magick

import (
	"fmt"
	"strconv"
)

// InstallHint is appended to missing-dependency errors for ImageMagick.
const InstallHint = "install ImageMagick, e.g. 'brew install imagemagick' or 'apt install imagemagick'"

// PngquantInstallHint is appended to missing-dependency errors for pngquant.
const PngquantInstallHint = "install pngquant, e.g. 'brew install pngquant' or 'apt install pngquant'"

// gravities maps the nine anchor names exposed to callers onto ImageMagick
// gravity values.
var gravities = map[string]string{
	"northwest": "NorthWest",
	"north":     "North",
	"northeast": "NorthEast",
	"west":      "West",
	"center":    "Center",
	"east":      "East",
	"southwest": "SouthWest",
	"south":     "South",
	"southeast": "SouthEast",
}

// Gravity translates a compass/center anchor name into an ImageMagick
// gravity value.
func Gravity(position string) (string, error) {
	g, ok := gravities[position]
	if !ok {
		return "", fmt.Errorf("invalid position %q: must be one of northwest, north, northeast, west, center, east, southwest, south, southeast", position)
	}
	return g, nil
}

// ResizeGeometry renders the -resize geometry string. Both dimensions with
// aspect preservation off force exact output dimensions; with it on the image
// is fit inside the bounding box. A single dimension scales proportionally on
// that axis.
func ResizeGeometry(width, height int, keepAspect bool) string {
	switch {
	case width > 0 && height > 0 && !keepAspect:
		return fmt.Sprintf("%dx%d!", width, height)
	case width > 0 && height > 0:
		return fmt.Sprintf("%dx%d", width, height)
	case width > 0:
		return fmt.Sprintf("%dx", width)
	default:
		return fmt.Sprintf("x%d", height)
	}
}

// ResizeArgs resizes input according to ResizeGeometry.
func ResizeArgs(input, output string, width, height int, keepAspect bool) []string {
	return []string{input, "-resize", ResizeGeometry(width, height, keepAspect), output}
}

// RotateArgs rotates input by an arbitrary angle in degrees.
func RotateArgs(input, output string, degrees float64) []string {
	return []string{input, "-rotate", strconv.FormatFloat(degrees, 'f', -1, 64), output}
}

// ConvertArgs re-encodes input into the format implied by the output
// extension.
func ConvertArgs(input, output string) []string {
	return []string{input, output}
}

// WatermarkArgs overlays watermark onto base at the given gravity anchor.
// Opacity is a 0-100 percentage applied through -dissolve.
func WatermarkArgs(base, watermark, output, gravity string, opacity int) []string {
	return []string{
		"composite",
		"-dissolve", fmt.Sprintf("%d%%", opacity),
		"-gravity", gravity,
		watermark, base, output,
	}
}

// EffectOperator builds the operator tokens for a named effect. Intensity is
// a 0-100 value scaled per effect: blur divides by 5, sharpen/edge/emboss
// divide by 10, sepia uses the value as a percentage directly, and grayscale
// and negate ignore it.
func EffectOperator(effect string, intensity int) ([]string, error) {
	switch effect {
	case "blur":
		return []string{"-blur", "0x" + scaled(intensity, 5)}, nil
	case "sharpen":
		return []string{"-sharpen", "0x" + scaled(intensity, 10)}, nil
	case "edge":
		return []string{"-edge", scaled(intensity, 10)}, nil
	case "emboss":
		return []string{"-emboss", scaled(intensity, 10)}, nil
	case "grayscale":
		return []string{"-colorspace", "Gray"}, nil
	case "sepia":
		return []string{"-sepia-tone", fmt.Sprintf("%d%%", intensity)}, nil
	case "negate":
		return []string{"-negate"}, nil
	default:
		return nil, fmt.Errorf("invalid effect %q: must be one of blur, sharpen, edge, emboss, grayscale, sepia, negate", effect)
	}
}

// EffectArgs wraps EffectOperator into a full invocation.
func EffectArgs(input, output, effect string, intensity int) ([]string, error) {
	op, err := EffectOperator(effect, intensity)
	if err != nil {
		return nil, err
	}
	args := make([]string, 0, len(op)+2)
	args = append(args, input)
	args = append(args, op...)
	return append(args, output), nil
}

func scaled(intensity, divisor int) string {
	return strconv.FormatFloat(float64(intensity)/float64(divisor), 'g', -1, 64)
}
