package common

import (
	"strings"
	"unicode"
)

func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		if len(word) > 0 {
			result.WriteString(strings.ToUpper(string(word[0])))
			if len(word) > 1 {
				result.WriteString(strings.ToLower(word[1:]))
			}
		}
	}

	return result.String()
}

// ToScreamingSnake upper-cases a table name ("KP_Enter" -> "KP_ENTER").
func ToScreamingSnake(s string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(s))
}

// SanitizeLeadingDigit keeps identifiers legal in every target language:
// "1" becomes "Num1", "NUM_1" for screaming names.
func SanitizeLeadingDigit(ident string) string {
	if ident == "" || ident[0] < '0' || ident[0] > '9' {
		return ident
	}
	if strings.ToUpper(ident) == ident {
		return "NUM_" + ident
	}
	return "Num" + ident
}

// PascalIdent is ToPascalCase followed by SanitizeLeadingDigit.
func PascalIdent(name string) string {
	return SanitizeLeadingDigit(ToPascalCase(name))
}

// ScreamingIdent is ToScreamingSnake followed by SanitizeLeadingDigit.
func ScreamingIdent(name string) string {
	return SanitizeLeadingDigit(ToScreamingSnake(name))
}
