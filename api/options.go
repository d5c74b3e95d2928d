package api

// Retrieval options. Each operation takes its own options struct; every
// field is independent and opt-in. A zero Scope or Language contributes no
// filter. The zero value of each struct is that operation's default, with
// one deliberate exception: topic retrieval resolves attributes and
// occurrences by default, so use DefaultTopicOptions rather than a zero
// TopicOptions when you want the defaults.

// TopicOptions controls GetTopic.
type TopicOptions struct {
	// Scope filters base names and resolved attributes/occurrences.
	Scope string
	// Language filters base names.
	Language Language
	// ResolveAttributes attaches the topic's attributes.
	ResolveAttributes bool
	// ResolveOccurrences attaches the topic's occurrences (without resource
	// data; that stays lazy).
	ResolveOccurrences bool
}

// DefaultTopicOptions resolves both attributes and occurrences.
func DefaultTopicOptions() TopicOptions {
	return TopicOptions{ResolveAttributes: true, ResolveOccurrences: true}
}

// AssociationOptions controls GetAssociation. Both resolves default to off.
type AssociationOptions struct {
	Scope              string
	Language           Language
	ResolveAttributes  bool
	ResolveOccurrences bool
}

// OccurrenceOptions controls GetOccurrence. Resource data stays lazy unless
// InlineResourceData is set.
type OccurrenceOptions struct {
	InlineResourceData bool
	ResolveAttributes  bool
}

// TopicOccurrencesOptions controls GetTopicOccurrences.
type TopicOccurrencesOptions struct {
	InstanceOf         string
	Scope              string
	Language           Language
	InlineResourceData bool
	ResolveAttributes  bool
}

// TopicAssociationsOptions controls GetTopicAssociations. An empty
// InstanceOfs list means no type filter.
type TopicAssociationsOptions struct {
	InstanceOfs        []string
	Scope              string
	Language           Language
	ResolveAttributes  bool
	ResolveOccurrences bool
}

// AttributesOptions controls GetAttributes.
type AttributesOptions struct {
	Scope    string
	Language Language
}
