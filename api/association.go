package api

// Association is a topic that additionally carries its own scope and exactly
// one member. In the backing store there is no separate association table:
// a topic row with a non-NULL scope column is an association.
type Association struct {
	Topic
	Scope  string `json:"scope"`
	Member Member `json:"member"`
}

// NewAssociation builds an association. Defaults: instance_of "association",
// universal scope, "related" role specs on both member halves.
func NewAssociation(identifier, instanceOf, scope, srcTopicRef, srcRoleSpec, destTopicRef, destRoleSpec string) (*Association, error) {
	if instanceOf == "" {
		instanceOf = "association"
	}
	if scope == "" {
		scope = UniversalScope
	}
	if srcRoleSpec == "" {
		srcRoleSpec = DefaultRoleSpec
	}
	if destRoleSpec == "" {
		destRoleSpec = DefaultRoleSpec
	}
	member, err := NewMember(srcTopicRef, srcRoleSpec, destTopicRef, destRoleSpec, "")
	if err != nil {
		return nil, err
	}
	return &Association{
		Topic:  *NewTopic(identifier, instanceOf),
		Scope:  Slugify(scope),
		Member: member,
	}, nil
}

// TopicRefs lists the association's two role-labelled endpoints, both typed
// by the association's instance_of. Used for grouping and tag derivation.
func (a *Association) TopicRefs() []TopicRef {
	return []TopicRef{
		{InstanceOf: a.InstanceOf, RoleSpec: a.Member.SrcRoleSpec, TopicRef: a.Member.SrcTopicRef},
		{InstanceOf: a.InstanceOf, RoleSpec: a.Member.DestRoleSpec, TopicRef: a.Member.DestTopicRef},
	}
}
