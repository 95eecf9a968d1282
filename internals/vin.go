package internals

import (
	"regexp"
	"strings"
)

// VINs are 17 characters and never contain I, O or Q.
var vinRegex = regexp.MustCompile(`\b([A-HJ-NPR-Z0-9]{17})\b`)

// ExtractVIN pulls the first VIN out of free text, e.g. OCR output from a
// registration document photo. Returns "" when none is found.
func ExtractVIN(text string) string {
	if text == "" {
		return ""
	}
	match := vinRegex.FindStringSubmatch(strings.ToUpper(text))
	if match == nil {
		return ""
	}
	return match[1]
}
