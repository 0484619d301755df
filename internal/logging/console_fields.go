package logging

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatValueForKey applies human formatting based on the key name.
func formatValueForKey(key string, v slog.Value) string {
	v = v.Resolve()

	if isByteSizeKey(key) {
		switch v.Kind() {
		case slog.KindInt64:
			return formatBytes(v.Int64())
		case slog.KindUint64:
			return humanize.IBytes(v.Uint64())
		}
	}

	if isDurationKey(key) && v.Kind() == slog.KindDuration {
		return formatDuration(v.Duration())
	}

	if isPercentKey(key) && v.Kind() == slog.KindFloat64 {
		return strconv.FormatFloat(v.Float64(), 'f', 1, 64) + "%"
	}

	if v.Kind() == slog.KindBool {
		if v.Bool() {
			return "yes"
		}
		return "no"
	}

	if key == "error" {
		return truncate(attrString(v), 300)
	}
	return formatValue(v)
}

func formatBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(100 * time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}

func isByteSizeKey(key string) bool {
	return strings.HasSuffix(key, "_bytes") || key == "size"
}

func isDurationKey(key string) bool {
	return strings.HasSuffix(key, "_duration") || key == "duration" || key == "elapsed"
}

func isPercentKey(key string) bool {
	return strings.HasSuffix(key, "_percent")
}

func isDebugOnlyKey(key string) bool {
	switch key {
	case FieldRunID, "lock_path", "command":
		return true
	}
	return strings.HasSuffix(key, "_id")
}

func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "…"
}

func displayLabel(key string) string {
	switch key {
	case FieldEventType:
		return "Event"
	case FieldErrorHint:
		return "Hint"
	case "crf":
		return "CRF"
	case "next_crf":
		return "Next CRF"
	case "input_bytes":
		return "Input"
	case "output_bytes":
		return "Output"
	case "budget_bytes":
		return "Budget"
	case "over_bytes":
		return "Over Budget"
	case "input_path":
		return "Input File"
	case "output_path":
		return "Output File"
	case "reduction_percent":
		return "Reduction"
	default:
		return titleizeKey(key)
	}
}

func titleizeKey(key string) string {
	if key == "" {
		return ""
	}
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	// Casers carry state, so each call gets its own.
	return cases.Title(language.Und).String(strings.Join(words, " "))
}
