package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/agentic-research/topicstore/api"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// GetTopic fetches one topic. Returns (nil, nil) when no topic with the
// identifier exists in the map. Base names are filtered by scope/language
// when set; attribute and occurrence resolution follows opts and passes the
// scope filter through.
func (s *Store) GetTopic(ctx context.Context, mapIdentifier int, identifier string, opts api.TopicOptions) (*api.Topic, error) {
	tx, err := s.beginRead(ctx)
	if err != nil {
		return nil, storeErr("get topic", err)
	}
	defer func() { _ = tx.Rollback() }() // safe to ignore

	row := tx.QueryRowContext(ctx,
		"SELECT identifier, instance_of FROM topic WHERE map_identifier = ? AND identifier = ?",
		mapIdentifier, identifier)

	var topic api.Topic
	if err := row.Scan(&topic.Identifier, &topic.InstanceOf); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storeErr("get topic", err)
	}

	names, err := s.baseNames(ctx, tx, mapIdentifier, identifier, opts.Scope, opts.Language)
	if err != nil {
		return nil, storeErr("get topic", err)
	}
	topic.BaseNames = names

	// The snapshot transaction only covers the topic row and its base names;
	// child resolution reuses the public operations, each with its own
	// scoped connection, matching their standalone behavior.
	if opts.ResolveAttributes {
		attributes, err := s.GetAttributes(ctx, mapIdentifier, identifier, api.AttributesOptions{Scope: opts.Scope})
		if err != nil {
			return nil, err
		}
		topic.AddAttributes(attributes...)
	}
	if opts.ResolveOccurrences {
		occurrences, err := s.GetTopicOccurrences(ctx, mapIdentifier, identifier, api.TopicOccurrencesOptions{Scope: opts.Scope})
		if err != nil {
			return nil, err
		}
		topic.AddOccurrences(occurrences...)
	}
	return &topic, nil
}

// baseNames fetches a topic's base names, optionally narrowed by scope and
// language, in insertion order.
func (s *Store) baseNames(ctx context.Context, q querier, mapIdentifier int, topicIdentifier, scope string, language api.Language) ([]api.BaseName, error) {
	f := newFilter()
	if scope != "" {
		f.Eq("scope", scope)
	}
	if language != "" {
		f.Eq("language", string(language))
	}

	query := "SELECT name, scope, language, identifier FROM basename WHERE map_identifier = ? AND topic_identifier = ?" + f.Clause()
	args := append([]any{mapIdentifier, topicIdentifier}, f.Args()...)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query base names: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var result []api.BaseName
	for rows.Next() {
		var name api.BaseName
		var lang string
		if err := rows.Scan(&name.Name, &name.Scope, &lang, &name.Identifier); err != nil {
			return nil, fmt.Errorf("scan base name: %w", err)
		}
		if name.Language, err = api.ParseLanguage(lang); err != nil {
			return nil, fmt.Errorf("base name %s: %w", name.Identifier, err)
		}
		result = append(result, name)
	}
	return result, rows.Err()
}

// GetRelatedTopics resolves every topic reachable from the given topic
// through its associations, excluding the topic itself, as full topics.
// Optional instance-of and scope filters narrow which associations are
// traversed.
func (s *Store) GetRelatedTopics(ctx context.Context, mapIdentifier int, identifier string, instanceOfs []string, scope string) ([]*api.Topic, error) {
	associations, err := s.GetTopicAssociations(ctx, mapIdentifier, identifier, api.TopicAssociationsOptions{
		InstanceOfs: instanceOfs,
		Scope:       scope,
	})
	if err != nil {
		return nil, err
	}
	if len(associations) == 0 {
		return nil, nil
	}

	groups, err := s.GetAssociationGroups(ctx, mapIdentifier, identifier, associations, nil, "")
	if err != nil {
		return nil, err
	}

	var result []*api.Topic
	for _, key := range groups.Keys() {
		for _, topicRef := range groups.TopicRefs(key) {
			topic, err := s.GetTopic(ctx, mapIdentifier, topicRef, api.DefaultTopicOptions())
			if err != nil {
				return nil, err
			}
			if topic == nil {
				s.log.Warn("skipping dangling topic ref",
					"map", mapIdentifier, "topic", identifier, "ref", topicRef)
				continue
			}
			result = append(result, topic)
		}
	}
	return result, nil
}
