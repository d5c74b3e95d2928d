package api

// Map is a topic-map namespace. The user fields (UserIdentifier, Owner,
// CollaborationMode) are populated only by per-user lookups that join the
// ownership table; plain lookups leave them at their zero values.
type Map struct {
	Identifier        int               `json:"identifier"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	ImagePath         string            `json:"image_path,omitempty"`
	Initialised       bool              `json:"initialised"`
	Published         bool              `json:"published"`
	Promoted          bool              `json:"promoted"`
	UserIdentifier    int               `json:"user_identifier,omitempty"`
	Owner             bool              `json:"owner,omitempty"`
	CollaborationMode CollaborationMode `json:"collaboration_mode,omitempty"`
}
