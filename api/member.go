package api

import "fmt"

// DefaultRoleSpec is the role used for untyped association endpoints.
const DefaultRoleSpec = "related"

// Member is the single role-typed edge an association represents: two topic
// references, each labelled with a role spec. N-ary relationships are modeled
// as repeated role/topic-ref pairs across the two halves.
type Member struct {
	Identifier   string `json:"identifier,omitempty"`
	SrcTopicRef  string `json:"src_topic_ref"`
	SrcRoleSpec  string `json:"src_role_spec"`
	DestTopicRef string `json:"dest_topic_ref"`
	DestRoleSpec string `json:"dest_role_spec"`
}

// NewMember builds a member with all refs and role specs slug-normalized.
// Every ref and role spec must be non-empty; an empty identifier defaults to
// a UUID.
func NewMember(srcTopicRef, srcRoleSpec, destTopicRef, destRoleSpec, identifier string) (Member, error) {
	if srcTopicRef == "" {
		return Member{}, fmt.Errorf("src topic ref: %w", ErrEmptyValue)
	}
	if srcRoleSpec == "" {
		return Member{}, fmt.Errorf("src role spec: %w", ErrEmptyValue)
	}
	if destTopicRef == "" {
		return Member{}, fmt.Errorf("dest topic ref: %w", ErrEmptyValue)
	}
	if destRoleSpec == "" {
		return Member{}, fmt.Errorf("dest role spec: %w", ErrEmptyValue)
	}
	return Member{
		Identifier:   defaultIdentifier(identifier),
		SrcTopicRef:  Slugify(srcTopicRef),
		SrcRoleSpec:  Slugify(srcRoleSpec),
		DestTopicRef: Slugify(destTopicRef),
		DestRoleSpec: Slugify(destRoleSpec),
	}, nil
}
