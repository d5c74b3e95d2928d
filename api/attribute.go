package api

// Attribute is a typed name/value pair attached to any topic, association, or
// occurrence. Within one map, the (entity, name, scope, language) combination
// is unique: an entity cannot carry two attributes with the same name in the
// same scope and language.
type Attribute struct {
	Identifier       string   `json:"identifier"`
	Name             string   `json:"name"`
	Value            string   `json:"value"`
	EntityIdentifier string   `json:"entity_identifier"`
	DataType         DataType `json:"data_type"`
	Scope            string   `json:"scope"`
	Language         Language `json:"language"`
}

// NewAttribute builds an attribute. Defaults: string data type, universal
// scope, English, UUID identifier.
func NewAttribute(name, value, entityIdentifier, identifier string, dataType DataType, scope string, language Language) Attribute {
	if dataType == "" {
		dataType = String
	}
	if scope == "" {
		scope = UniversalScope
	}
	if language == "" {
		language = English
	}
	return Attribute{
		Identifier:       defaultIdentifier(identifier),
		Name:             name,
		Value:            value,
		EntityIdentifier: Slugify(entityIdentifier),
		DataType:         dataType,
		Scope:            Slugify(scope),
		Language:         language,
	}
}
