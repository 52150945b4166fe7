package docx

import (
	"strconv"
	"strings"
)

// parseHalfPoints parses a size in half-points to points.
// Word uses half-points for font sizes (e.g., "24" = 12pt).
func parseHalfPoints(s string) (float64, bool) {
	return parseScaled(s, 2)
}

// parseTwips parses a size in twips to points.
// 1 point = 20 twips.
func parseTwips(s string) (float64, bool) {
	return parseScaled(s, 20)
}

// parseLineUnits parses w:spacing/@w:line, which counts 240ths of a line,
// into a line-height multiplier.
func parseLineUnits(s string) (float64, bool) {
	return parseScaled(s, 240)
}

// parseScaled parses an integral OOXML measure and divides it by div.
// Fractions, exponents, hex and non-finite spellings are rejected.
func parseScaled(s string, div float64) (float64, bool) {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return float64(val) / div, true
}

// parseInt parses a decimal integer attribute such as w:id or w:ilvl.
func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// isToggleOn interprets the w:val of an on/off property whose element is
// present. A missing w:val means on.
func isToggleOn(val string, hasVal bool) bool {
	if !hasVal {
		return true
	}
	switch strings.ToLower(val) {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}

// isUnderlineOn interprets w:u/@w:val, which names an underline pattern.
// "none" turns underlining off; a missing value means single.
func isUnderlineOn(val string, hasVal bool) bool {
	if hasVal && strings.EqualFold(val, "none") {
		return false
	}
	return isToggleOn(val, hasVal)
}
