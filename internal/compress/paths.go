package compress

import (
	"path/filepath"
	"strings"
)

const outputSuffix = "_discord.mp4"

// OutputPath derives the artifact path for input: same directory, input
// stem plus the "_discord.mp4" suffix.
func OutputPath(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "video"
	}
	return filepath.Join(filepath.Dir(input), stem+outputSuffix)
}
