// Package ffmpeg builds argument lists for the ffmpeg and ffprobe binaries.
// All builders are pure functions of the resolved paths and validated
// parameters; nothing here touches the filesystem or spawns a process.
package ffmpeg

import (
	"regexp"
	"strconv"
)

// DefaultCRF is the x264 constant rate factor used when no quality is given.
// Lower values mean better quality and larger files.
const DefaultCRF = 23

var timestampRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// ValidTimestamp reports whether s is an HH:MM:SS timestamp.
func ValidTimestamp(s string) bool {
	return timestampRe.MatchString(s)
}

// ConvertArgs re-encodes input into the container/format implied by the
// output file's extension.
func ConvertArgs(input, output string) []string {
	return []string{"-y", "-i", input, output}
}

// CompressArgs encodes input with libx264 at the given constant rate factor.
func CompressArgs(input, output string, crf int) []string {
	return []string{"-y", "-i", input, "-c:v", "libx264", "-crf", strconv.Itoa(crf), output}
}

// TrimArgs seeks to start and copies duration worth of media. The seek is
// placed before -i so ffmpeg uses fast input seeking.
func TrimArgs(input, output, start, duration string) []string {
	return []string{"-y", "-ss", start, "-i", input, "-t", duration, output}
}

// RawArgs passes caller-supplied flag/value pairs through verbatim, between
// the input and output arguments.
func RawArgs(input, output string, options []string) []string {
	args := make([]string, 0, len(options)+4)
	args = append(args, "-y", "-i", input)
	args = append(args, options...)
	return append(args, output)
}

// ProbeArgs asks ffprobe for a JSON dump of container and stream metadata.
func ProbeArgs(input string) []string {
	return []string{"-v", "error", "-show_format", "-show_streams", "-print_format", "json", input}
}
