package api

import (
	"fmt"
	"strings"
)

// CollaborationMode is the access level a user holds on a shared topic map.
type CollaborationMode string

const (
	View    CollaborationMode = "view" // read-only
	Comment CollaborationMode = "comment"
	Edit    CollaborationMode = "edit" // read/write
)

// ParseCollaborationMode normalizes a stored mode name, case-insensitively.
func ParseCollaborationMode(name string) (CollaborationMode, error) {
	switch CollaborationMode(strings.ToLower(name)) {
	case View, Comment, Edit:
		return CollaborationMode(strings.ToLower(name)), nil
	}
	return "", fmt.Errorf("unknown collaboration mode %q", name)
}

func (c CollaborationMode) String() string { return string(c) }

// Collaborator is one user's access grant on a topic map.
type Collaborator struct {
	MapIdentifier     int               `json:"map_identifier"`
	UserIdentifier    int               `json:"user_identifier"`
	UserName          string            `json:"user_name"`
	CollaborationMode CollaborationMode `json:"collaboration_mode"`
}
