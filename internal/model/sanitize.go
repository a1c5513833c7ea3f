package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ReservedChars lists the characters that common filesystems refuse in a
// path segment.
const ReservedChars = `<>:"/\|?*`

// reservedReplacer maps every reserved character to a hyphen.
var reservedReplacer = strings.NewReplacer(
	"<", "-",
	">", "-",
	":", "-",
	`"`, "-",
	"/", "-",
	`\`, "-",
	"|", "-",
	"?", "-",
	"*", "-",
)

// SanitizePathSegment converts a tag label into a string usable as a single
// path segment.
//
// Every reserved character (<>:"/\|?*) is replaced with a hyphen, all other
// characters are kept as they are, and leading or trailing periods and
// spaces are stripped. The result may be empty; use SafePathSegment when an
// empty segment is not acceptable.
//
// Example:
//
//	SanitizePathSegment("AC/DC")        // "AC-DC"
//	SanitizePathSegment(" Live: 1999.") // "Live- 1999"
func SanitizePathSegment(label string) string {
	label = reservedReplacer.Replace(label)
	return strings.Trim(label, ". ")
}

// SafePathSegment sanitizes label and substitutes the sanitized fallback
// when nothing is left. A label made only of periods, spaces or reserved
// characters therefore never produces an empty directory name.
func SafePathSegment(label, fallback string) string {
	if seg := SanitizePathSegment(label); seg != "" {
		return seg
	}
	return SanitizePathSegment(fallback)
}

// normalizeLabel returns label in Unicode normalization form C.
func normalizeLabel(label string) string {
	return norm.NFC.String(label)
}
