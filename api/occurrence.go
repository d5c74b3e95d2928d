package api

// Occurrence links a topic to a resource: an image, video, file, URL, note
// or text fragment. ResourceData may be large and is nil unless the caller
// asked for it to be inlined; ResourceRef always identifies the resource.
type Occurrence struct {
	Identifier      string      `json:"identifier"`
	InstanceOf      string      `json:"instance_of"`
	TopicIdentifier string      `json:"topic_identifier"`
	Scope           string      `json:"scope"`
	ResourceRef     string      `json:"resource_ref"`
	ResourceData    []byte      `json:"resource_data,omitempty"`
	Language        Language    `json:"language"`
	Attributes      []Attribute `json:"attributes,omitempty"`
}

// NewOccurrence builds an occurrence. Defaults: instance_of "occurrence",
// universal scope, English, UUID identifier.
func NewOccurrence(identifier, instanceOf, topicIdentifier, scope, resourceRef string, resourceData []byte, language Language) Occurrence {
	if instanceOf == "" {
		instanceOf = "occurrence"
	}
	if scope == "" {
		scope = UniversalScope
	}
	if language == "" {
		language = English
	}
	return Occurrence{
		Identifier:      defaultIdentifier(identifier),
		InstanceOf:      Slugify(instanceOf),
		TopicIdentifier: Slugify(topicIdentifier),
		Scope:           Slugify(scope),
		ResourceRef:     resourceRef,
		ResourceData:    resourceData,
		Language:        language,
	}
}

// HasData reports whether resource data was inlined for this occurrence.
func (o *Occurrence) HasData() bool {
	return len(o.ResourceData) > 0
}
