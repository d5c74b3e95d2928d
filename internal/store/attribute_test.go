package store

import (
	"context"
	"testing"

	"github.com/agentic-research/topicstore/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAttribute(t *testing.T) {
	s := newTestStore(t)

	attribute, err := s.GetAttribute(context.Background(), 1, "attr-pop")
	require.NoError(t, err)
	require.NotNil(t, attribute)

	assert.Equal(t, "population", attribute.Name)
	assert.Equal(t, "2161000", attribute.Value)
	assert.Equal(t, "paris", attribute.EntityIdentifier)
	assert.Equal(t, api.Number, attribute.DataType)
	assert.Equal(t, "*", attribute.Scope)
	assert.Equal(t, api.English, attribute.Language)
}

func TestGetAttributeNotFound(t *testing.T) {
	s := newTestStore(t)

	attribute, err := s.GetAttribute(context.Background(), 1, "attr-missing")
	require.NoError(t, err)
	assert.Nil(t, attribute)
}

func TestGetAttributes(t *testing.T) {
	s := newTestStore(t)

	attributes, err := s.GetAttributes(context.Background(), 1, "paris", api.AttributesOptions{})
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "population", attributes[0].Name)
}

func TestGetAttributesScopeFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	attributes, err := s.GetAttributes(ctx, 1, "paris", api.AttributesOptions{Scope: "*"})
	require.NoError(t, err)
	assert.Len(t, attributes, 1)

	attributes, err = s.GetAttributes(ctx, 1, "paris", api.AttributesOptions{Scope: "tourism"})
	require.NoError(t, err)
	assert.Empty(t, attributes)
}

func TestGetAttributesForOccurrence(t *testing.T) {
	s := newTestStore(t)

	// Attributes attach to any entity kind through the same table.
	attributes, err := s.GetAttributes(context.Background(), 1, "occ-file", api.AttributesOptions{})
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "file-size", attributes[0].Name)
}
