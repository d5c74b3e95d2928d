package api

// TopicRef is one association endpoint: a topic reference labelled with the
// association's type and the endpoint's role.
type TopicRef struct {
	InstanceOf string
	RoleSpec   string
	TopicRef   string
}

// GroupKey identifies one group of association endpoints: all refs that share
// an association type and a role.
type GroupKey struct {
	InstanceOf string
	RoleSpec   string
}

// AssociationGroups indexes association endpoints by (instance_of, role_spec).
// Topic refs within a group are deduplicated and kept in insertion order.
// It is rebuilt per query and never persisted.
type AssociationGroups struct {
	keys   []GroupKey
	groups map[GroupKey][]string
}

// NewAssociationGroups returns an empty grouping index.
func NewAssociationGroups() *AssociationGroups {
	return &AssociationGroups{groups: make(map[GroupKey][]string)}
}

// Add records a topic ref under its group, ignoring duplicates within the
// group. Key order and per-group ref order follow first insertion.
func (g *AssociationGroups) Add(ref TopicRef) {
	key := GroupKey{InstanceOf: ref.InstanceOf, RoleSpec: ref.RoleSpec}
	refs, ok := g.groups[key]
	if !ok {
		g.keys = append(g.keys, key)
		g.groups[key] = []string{ref.TopicRef}
		return
	}
	for _, existing := range refs {
		if existing == ref.TopicRef {
			return
		}
	}
	g.groups[key] = append(refs, ref.TopicRef)
}

// Keys returns the group keys in insertion order.
func (g *AssociationGroups) Keys() []GroupKey {
	return g.keys
}

// TopicRefs returns the deduplicated refs recorded under key.
func (g *AssociationGroups) TopicRefs(key GroupKey) []string {
	return g.groups[key]
}

// Len returns the number of distinct groups.
func (g *AssociationGroups) Len() int {
	return len(g.keys)
}
