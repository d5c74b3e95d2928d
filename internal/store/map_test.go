package store

import (
	"context"
	"testing"

	"github.com/agentic-research/topicstore/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMap(t *testing.T) {
	s := newTestStore(t)

	m, err := s.GetMap(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 1, m.Identifier)
	assert.Equal(t, "Geography", m.Name)
	assert.Equal(t, "Cities and countries", m.Description)
	assert.True(t, m.Initialised)
	assert.True(t, m.Published)
	assert.False(t, m.Promoted)
}

func TestGetMapUnpublished(t *testing.T) {
	s := newTestStore(t)

	// Direct lookup is not restricted to published maps.
	m, err := s.GetMap(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.False(t, m.Published)
}

func TestGetMapNotFound(t *testing.T) {
	s := newTestStore(t)

	m, err := s.GetMap(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestGetMapForUser(t *testing.T) {
	s := newTestStore(t)

	m, err := s.GetMapForUser(context.Background(), 1, 42)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 42, m.UserIdentifier)
	assert.True(t, m.Owner)
	assert.Equal(t, api.Edit, m.CollaborationMode)
}

func TestGetMapForUserNoGrant(t *testing.T) {
	s := newTestStore(t)

	// The map exists but user 7 holds no grant on it.
	m, err := s.GetMapForUser(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestGetMapsPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	maps, err := s.GetMaps(ctx, 42, 0, 10)
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, 1, maps[0].Identifier)
	assert.Equal(t, 3, maps[1].Identifier)

	maps, err = s.GetMaps(ctx, 42, 1, 1)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, 3, maps[0].Identifier)

	maps, err = s.GetMaps(ctx, 42, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, maps)
}

func TestGetPublishedMaps(t *testing.T) {
	s := newTestStore(t)

	maps, err := s.GetPublishedMaps(context.Background())
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, 1, maps[0].Identifier)
	assert.Equal(t, 2, maps[1].Identifier)
}

func TestGetPromotedMaps(t *testing.T) {
	s := newTestStore(t)

	maps, err := s.GetPromotedMaps(context.Background())
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, 2, maps[0].Identifier)
	assert.True(t, maps[0].Promoted)
}

func TestIsMapOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner, err := s.IsMapOwner(ctx, 1, 42)
	require.NoError(t, err)
	assert.True(t, owner)

	owner, err = s.IsMapOwner(ctx, 1, 7)
	require.NoError(t, err)
	assert.False(t, owner, "a view collaborator is not an owner")

	owner, err = s.IsMapOwner(ctx, 2, 42)
	require.NoError(t, err)
	assert.False(t, owner)
}

func TestGetCollaborationMode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mode, ok, err := s.GetCollaborationMode(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, api.View, mode)

	_, ok, err = s.GetCollaborationMode(ctx, 2, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}
