package store

import (
	"context"
	"testing"

	"github.com/agentic-research/topicstore/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parisText = "Paris is the capital city of France"

func TestGetOccurrenceLazyData(t *testing.T) {
	s := newTestStore(t)

	occurrence, err := s.GetOccurrence(context.Background(), 1, "occ-file", api.OccurrenceOptions{})
	require.NoError(t, err)
	require.NotNil(t, occurrence)

	assert.Equal(t, "file", occurrence.InstanceOf)
	assert.Equal(t, "about-paris.txt", occurrence.ResourceRef)
	assert.Equal(t, "paris", occurrence.TopicIdentifier)
	assert.Nil(t, occurrence.ResourceData)
	assert.False(t, occurrence.HasData())
}

func TestGetOccurrenceInlineData(t *testing.T) {
	s := newTestStore(t)

	occurrence, err := s.GetOccurrence(context.Background(), 1, "occ-file", api.OccurrenceOptions{InlineResourceData: true})
	require.NoError(t, err)
	require.NotNil(t, occurrence)
	assert.Equal(t, parisText, string(occurrence.ResourceData))
}

func TestGetOccurrenceResolveAttributes(t *testing.T) {
	s := newTestStore(t)

	occurrence, err := s.GetOccurrence(context.Background(), 1, "occ-file", api.OccurrenceOptions{ResolveAttributes: true})
	require.NoError(t, err)
	require.NotNil(t, occurrence)
	require.Len(t, occurrence.Attributes, 1)
	assert.Equal(t, "file-size", occurrence.Attributes[0].Name)
}

func TestGetOccurrenceNotFound(t *testing.T) {
	s := newTestStore(t)

	occurrence, err := s.GetOccurrence(context.Background(), 1, "occ-missing", api.OccurrenceOptions{})
	require.NoError(t, err)
	assert.Nil(t, occurrence)
}

func TestGetOccurrenceData(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	data, err := s.GetOccurrenceData(ctx, 1, "occ-file")
	require.NoError(t, err)
	assert.Equal(t, parisText, string(data))

	// NULL payload and missing occurrence both collapse to nil.
	data, err = s.GetOccurrenceData(ctx, 1, "occ-image")
	require.NoError(t, err)
	assert.Nil(t, data)

	data, err = s.GetOccurrenceData(ctx, 1, "occ-missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGetTopicOccurrencesOrdering(t *testing.T) {
	s := newTestStore(t)

	occurrences, err := s.GetTopicOccurrences(context.Background(), 1, "paris", api.TopicOccurrencesOptions{})
	require.NoError(t, err)
	require.Len(t, occurrences, 2)

	// Ordered by instance_of ascending: file before image.
	assert.Equal(t, "occ-file", occurrences[0].Identifier)
	assert.Equal(t, "occ-image", occurrences[1].Identifier)
	assert.Nil(t, occurrences[0].ResourceData)
}

func TestGetTopicOccurrencesInstanceOfFilter(t *testing.T) {
	s := newTestStore(t)

	occurrences, err := s.GetTopicOccurrences(context.Background(), 1, "paris", api.TopicOccurrencesOptions{
		InstanceOf: "image",
	})
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.Equal(t, "occ-image", occurrences[0].Identifier)
}

func TestGetTopicOccurrencesInline(t *testing.T) {
	s := newTestStore(t)

	occurrences, err := s.GetTopicOccurrences(context.Background(), 1, "paris", api.TopicOccurrencesOptions{
		InstanceOf:         "file",
		InlineResourceData: true,
	})
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.Equal(t, parisText, string(occurrences[0].ResourceData))
}

func TestGetTopicOccurrencesResolveAttributes(t *testing.T) {
	s := newTestStore(t)

	occurrences, err := s.GetTopicOccurrences(context.Background(), 1, "paris", api.TopicOccurrencesOptions{
		ResolveAttributes: true,
	})
	require.NoError(t, err)
	require.Len(t, occurrences, 2)

	// file sorts before image; only the file occurrence carries an attribute.
	require.Len(t, occurrences[0].Attributes, 1)
	assert.Equal(t, "file-size", occurrences[0].Attributes[0].Name)
	assert.Empty(t, occurrences[1].Attributes)
}

func TestGetTopicOccurrencesStatistics(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.GetTopicOccurrencesStatistics(context.Background(), 1, "paris", "")
	require.NoError(t, err)

	assert.Equal(t, 1, stats["file"])
	assert.Equal(t, 1, stats["image"])

	// Every built-in kind is present, zero-valued when absent.
	assert.Contains(t, stats, "video")
	assert.Equal(t, 0, stats["video"])
	assert.Contains(t, stats, "url")
}

func TestForEachOccurrenceText(t *testing.T) {
	s := newTestStore(t)

	var seen []string
	err := s.ForEachOccurrenceText(context.Background(), 1, func(identifier string, data []byte) error {
		seen = append(seen, identifier)
		assert.NotEmpty(t, data)
		return nil
	})
	require.NoError(t, err)

	// Only occurrences with a non-NULL payload stream through.
	assert.Equal(t, []string{"occ-file"}, seen)
}
