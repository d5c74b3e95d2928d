package api

// Topic is the fundamental node of a topic map. Its typing is polymorphic:
// InstanceOf names another topic's identifier rather than a closed class.
type Topic struct {
	Identifier  string       `json:"identifier"`
	InstanceOf  string       `json:"instance_of"`
	BaseNames   []BaseName   `json:"base_names,omitempty"`
	Attributes  []Attribute  `json:"attributes,omitempty"`
	Occurrences []Occurrence `json:"occurrences,omitempty"`
}

// NewTopic builds a topic. Defaults: instance_of "topic", UUID identifier.
func NewTopic(identifier, instanceOf string) *Topic {
	if instanceOf == "" {
		instanceOf = "topic"
	}
	return &Topic{
		Identifier: defaultIdentifier(identifier),
		InstanceOf: Slugify(instanceOf),
	}
}

// FirstBaseName returns the topic's default display name: the first base name
// in lookup order, or an "Undefined" universal-scope English name when the
// topic has none.
func (t *Topic) FirstBaseName() BaseName {
	if len(t.BaseNames) > 0 {
		return t.BaseNames[0]
	}
	return BaseName{Name: "Undefined", Scope: UniversalScope, Language: English}
}

// AddBaseName appends a base name.
func (t *Topic) AddBaseName(name BaseName) {
	t.BaseNames = append(t.BaseNames, name)
}

// AddAttributes appends attributes.
func (t *Topic) AddAttributes(attributes ...Attribute) {
	t.Attributes = append(t.Attributes, attributes...)
}

// AddOccurrences appends occurrences.
func (t *Topic) AddOccurrences(occurrences ...Occurrence) {
	t.Occurrences = append(t.Occurrences, occurrences...)
}
