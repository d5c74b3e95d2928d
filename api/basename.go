package api

// BaseName is a display name for a topic in one scope and language. A topic
// may carry several base names differing by scope/language; the first one in
// lookup order is its default display name.
type BaseName struct {
	Identifier string   `json:"identifier"`
	Name       string   `json:"name"`
	Scope      string   `json:"scope"`
	Language   Language `json:"language"`
}

// NewBaseName builds a base name. An empty scope defaults to the universal
// scope, an empty language to English, and an empty identifier to a UUID.
func NewBaseName(name, scope string, language Language, identifier string) BaseName {
	if scope == "" {
		scope = UniversalScope
	}
	if language == "" {
		language = English
	}
	return BaseName{
		Identifier: defaultIdentifier(identifier),
		Name:       name,
		Scope:      Slugify(scope),
		Language:   language,
	}
}
