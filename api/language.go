package api

import (
	"fmt"
	"strings"
)

// Language is an ISO-639-2 language code. The zero value means "unset" and
// contributes no filter when passed to a retrieval operation.
type Language string

const (
	English Language = "eng"
	Spanish Language = "spa"
	German  Language = "deu"
	Italian Language = "ita"
	French  Language = "fra"
	Dutch   Language = "nld"
)

// ParseLanguage normalizes a stored or user-supplied code to its canonical
// lowercase form. Comparison is case-insensitive.
func ParseLanguage(code string) (Language, error) {
	switch Language(strings.ToLower(code)) {
	case English, Spanish, German, Italian, French, Dutch:
		return Language(strings.ToLower(code)), nil
	}
	return "", fmt.Errorf("unknown language code %q", code)
}

func (l Language) String() string { return string(l) }
