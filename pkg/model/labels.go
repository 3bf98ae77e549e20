package model

import (
	"strings"
	"unicode"
)

// Labeler converts an attribute name into display text.
type Labeler func(name string) string

// DefaultLabeler humanises an attribute name: underscores, dashes, and
// camelCase boundaries become spaces, a trailing "_id"/"_ids" suffix is
// dropped, and the first word is title-cased.
func DefaultLabeler(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	if trimmed, ok := strings.CutSuffix(name, "_ids"); ok && trimmed != "" {
		name = trimmed
	} else if trimmed, ok := strings.CutSuffix(name, "_id"); ok && trimmed != "" {
		name = trimmed
	}

	var out strings.Builder
	var prev rune
	for i, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			if out.Len() > 0 && prev != ' ' {
				out.WriteRune(' ')
				prev = ' '
			}
			continue
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev):
			out.WriteRune(' ')
		case i > 0 && unicode.IsDigit(r) && unicode.IsLetter(prev):
			out.WriteRune(' ')
		}
		out.WriteRune(unicode.ToLower(r))
		prev = r
	}

	label := strings.TrimSpace(out.String())
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
