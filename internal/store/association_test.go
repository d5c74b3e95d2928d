package store

import (
	"context"
	"testing"

	"github.com/agentic-research/topicstore/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAssociation(t *testing.T) {
	s := newTestStore(t)

	association, err := s.GetAssociation(context.Background(), 1, "paris-capital-of-france", api.AssociationOptions{})
	require.NoError(t, err)
	require.NotNil(t, association)

	assert.Equal(t, "relation", association.InstanceOf)
	assert.Equal(t, "*", association.Scope)
	assert.Equal(t, "Paris is the capital of France", association.FirstBaseName().Name)

	assert.Equal(t, "paris", association.Member.SrcTopicRef)
	assert.Equal(t, "capital", association.Member.SrcRoleSpec)
	assert.Equal(t, "france", association.Member.DestTopicRef)
	assert.Equal(t, "country", association.Member.DestRoleSpec)
}

func TestGetAssociationResolved(t *testing.T) {
	s := newTestStore(t)

	association, err := s.GetAssociation(context.Background(), 1, "paris-capital-of-france", api.AssociationOptions{
		ResolveAttributes:  true,
		ResolveOccurrences: true,
	})
	require.NoError(t, err)
	require.NotNil(t, association)

	require.Len(t, association.Attributes, 1)
	assert.Equal(t, "since", association.Attributes[0].Name)
	assert.Equal(t, "987", association.Attributes[0].Value)

	require.Len(t, association.Occurrences, 1)
	assert.Equal(t, "occ-note", association.Occurrences[0].Identifier)
	assert.Equal(t, "note", association.Occurrences[0].InstanceOf)
}

func TestGetAssociationRequiresScopedRow(t *testing.T) {
	s := newTestStore(t)

	// A plain topic never resolves as an association, even with a matching
	// identifier.
	association, err := s.GetAssociation(context.Background(), 1, "paris", api.AssociationOptions{})
	require.NoError(t, err)
	assert.Nil(t, association)
}

func TestGetTopicAssociations(t *testing.T) {
	s := newTestStore(t)

	associations, err := s.GetTopicAssociations(context.Background(), 1, "paris", api.TopicAssociationsOptions{})
	require.NoError(t, err)
	require.Len(t, associations, 2)
}

func TestGetTopicAssociationsInstanceOfFilter(t *testing.T) {
	s := newTestStore(t)

	associations, err := s.GetTopicAssociations(context.Background(), 1, "paris", api.TopicAssociationsOptions{
		InstanceOfs: []string{"relation"},
	})
	require.NoError(t, err)
	require.Len(t, associations, 1)
	assert.Equal(t, "paris-capital-of-france", associations[0].Identifier)
}

func TestGetTopicAssociationsAsDestination(t *testing.T) {
	s := newTestStore(t)

	// Membership counts from either half of the member.
	associations, err := s.GetTopicAssociations(context.Background(), 1, "france", api.TopicAssociationsOptions{})
	require.NoError(t, err)
	require.Len(t, associations, 1)
	assert.Equal(t, "paris-capital-of-france", associations[0].Identifier)
}

func TestGetAssociationGroups(t *testing.T) {
	s := newTestStore(t)

	groups, err := s.GetAssociationGroups(context.Background(), 1, "paris", nil, nil, "")
	require.NoError(t, err)
	require.Equal(t, 2, groups.Len())

	relation := api.GroupKey{InstanceOf: "relation", RoleSpec: "country"}
	assert.Equal(t, []string{"france"}, groups.TopicRefs(relation))

	categorization := api.GroupKey{InstanceOf: "categorization", RoleSpec: "member"}
	assert.Equal(t, []string{"tourism"}, groups.TopicRefs(categorization))
}

func TestGetAssociationGroupsExcludesSelf(t *testing.T) {
	s := newTestStore(t)

	groups, err := s.GetAssociationGroups(context.Background(), 1, "paris", nil, nil, "")
	require.NoError(t, err)

	for _, key := range groups.Keys() {
		assert.NotContains(t, groups.TopicRefs(key), "paris")
	}
}

func TestGetAssociationGroupsMissingArgument(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAssociationGroups(context.Background(), 1, "", nil, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestGetAssociationGroupsEmptyListFallsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A non-nil empty list counts as absent: the identifier's associations
	// are fetched instead.
	groups, err := s.GetAssociationGroups(ctx, 1, "paris", []*api.Association{}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 2, groups.Len())

	// With no identifier either, there is nothing to group.
	_, err = s.GetAssociationGroups(ctx, 1, "", []*api.Association{}, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestGetAssociationGroupsFromPrefetchedList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	associations, err := s.GetTopicAssociations(ctx, 1, "paris", api.TopicAssociationsOptions{})
	require.NoError(t, err)

	groups, err := s.GetAssociationGroups(ctx, 1, "paris", associations, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 2, groups.Len())
}

func TestGetTags(t *testing.T) {
	s := newTestStore(t)

	tags, err := s.GetTags(context.Background(), 1, "paris")
	require.NoError(t, err)
	assert.Equal(t, []string{"tourism"}, tags)
}

func TestGetTagsNoCategorization(t *testing.T) {
	s := newTestStore(t)

	// france participates only in the relation association; no tags.
	tags, err := s.GetTags(context.Background(), 1, "france")
	require.NoError(t, err)
	assert.Empty(t, tags)
}
