package magick

import "fmt"

// QualityRange maps a 1-100 quality value onto pngquant's min-max pair:
// min = max(0, quality-5), max = min(100, quality).
func QualityRange(quality int) (min, max int) {
	min = quality - 5
	if min < 0 {
		min = 0
	}
	max = quality
	if max > 100 {
		max = 100
	}
	return min, max
}

// PngquantArgs compresses a PNG at the given quality, overwriting output if
// it already exists.
func PngquantArgs(input, output string, quality int) []string {
	min, max := QualityRange(quality)
	return []string{
		fmt.Sprintf("--quality=%d-%d", min, max),
		"--force",
		"--output", output,
		input,
	}
}
