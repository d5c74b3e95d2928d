package store

import (
	"context"
	"database/sql"

	"github.com/agentic-research/topicstore/api"
)

// categorizationType is the built-in association type whose members act as
// tags on the topics they touch.
const categorizationType = "categorization"

// GetAssociation fetches one association: a topic row whose scope column is
// non-NULL. Returns (nil, nil) when no such row exists — a plain topic with
// the same identifier does not qualify. Associations are binary: exactly one
// member row is expected per association; if more exist, the last row read
// wins.
func (s *Store) GetAssociation(ctx context.Context, mapIdentifier int, identifier string, opts api.AssociationOptions) (*api.Association, error) {
	tx, err := s.beginRead(ctx)
	if err != nil {
		return nil, storeErr("get association", err)
	}
	defer func() { _ = tx.Rollback() }() // safe to ignore

	row := tx.QueryRowContext(ctx,
		"SELECT identifier, instance_of, scope FROM topic WHERE map_identifier = ? AND identifier = ? AND scope IS NOT NULL",
		mapIdentifier, identifier)

	var association api.Association
	if err := row.Scan(&association.Identifier, &association.InstanceOf, &association.Scope); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storeErr("get association", err)
	}

	names, err := s.baseNames(ctx, tx, mapIdentifier, identifier, opts.Scope, opts.Language)
	if err != nil {
		return nil, storeErr("get association", err)
	}
	association.BaseNames = names

	rows, err := tx.QueryContext(ctx,
		"SELECT identifier, src_topic_ref, src_role_spec, dest_topic_ref, dest_role_spec FROM member WHERE map_identifier = ? AND association_identifier = ?",
		mapIdentifier, identifier)
	if err != nil {
		return nil, storeErr("get association", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	for rows.Next() {
		var member api.Member
		if err := rows.Scan(&member.Identifier, &member.SrcTopicRef, &member.SrcRoleSpec, &member.DestTopicRef, &member.DestRoleSpec); err != nil {
			return nil, storeErr("get association", err)
		}
		association.Member = member
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get association", err)
	}

	if opts.ResolveAttributes {
		attributes, err := s.GetAttributes(ctx, mapIdentifier, identifier, api.AttributesOptions{})
		if err != nil {
			return nil, err
		}
		association.AddAttributes(attributes...)
	}
	if opts.ResolveOccurrences {
		occurrences, err := s.GetTopicOccurrences(ctx, mapIdentifier, identifier, api.TopicOccurrencesOptions{})
		if err != nil {
			return nil, err
		}
		association.AddOccurrences(occurrences...)
	}
	return &association, nil
}

// GetTopicAssociations finds every association the given topic participates
// in, as source or destination of a member, narrowed by the optional
// instance-of list and scope, and resolves each through GetAssociation.
// Result order follows backing-store iteration order.
func (s *Store) GetTopicAssociations(ctx context.Context, mapIdentifier int, identifier string, opts api.TopicAssociationsOptions) ([]*api.Association, error) {
	f := newFilter()
	f.In("instance_of", opts.InstanceOfs)
	if opts.Scope != "" {
		f.Eq("scope", opts.Scope)
	}

	query := `SELECT identifier FROM topic WHERE map_identifier = ?` + f.Clause() + ` AND
		identifier IN
			(SELECT association_identifier FROM member
			 WHERE map_identifier = ? AND (src_topic_ref = ? OR dest_topic_ref = ?))`
	args := append([]any{mapIdentifier}, f.Args()...)
	args = append(args, mapIdentifier, identifier, identifier)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("get topic associations", err)
	}

	// Collect identifiers before resolving: GetAssociation draws its own
	// connection from the bounded pool, so the listing cursor must be
	// released first.
	var identifiers []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close() // best-effort cleanup
			return nil, storeErr("get topic associations", err)
		}
		identifiers = append(identifiers, id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close() // best-effort cleanup
		return nil, storeErr("get topic associations", err)
	}
	if err := rows.Close(); err != nil {
		return nil, storeErr("get topic associations", err)
	}

	var result []*api.Association
	for _, id := range identifiers {
		association, err := s.GetAssociation(ctx, mapIdentifier, id, api.AssociationOptions{
			Language:           opts.Language,
			ResolveAttributes:  opts.ResolveAttributes,
			ResolveOccurrences: opts.ResolveOccurrences,
		})
		if err != nil {
			return nil, err
		}
		if association != nil {
			result = append(result, association)
		}
	}
	return result, nil
}

// GetAssociationGroups groups association endpoints by (instance_of,
// role_spec), excluding the queried topic itself from every group. Callers
// supply either the topic identifier (associations are fetched with the
// optional instance-of/scope filters) or a pre-fetched association list;
// with neither, ErrMissingArgument is returned. An empty list counts as
// absent: the topic's associations are fetched, same as a nil list.
func (s *Store) GetAssociationGroups(ctx context.Context, mapIdentifier int, identifier string, associations []*api.Association, instanceOfs []string, scope string) (*api.AssociationGroups, error) {
	if identifier == "" && len(associations) == 0 {
		return nil, ErrMissingArgument
	}

	if len(associations) == 0 {
		var err error
		associations, err = s.GetTopicAssociations(ctx, mapIdentifier, identifier, api.TopicAssociationsOptions{
			InstanceOfs: instanceOfs,
			Scope:       scope,
		})
		if err != nil {
			return nil, err
		}
	}

	groups := api.NewAssociationGroups()
	for _, association := range associations {
		for _, ref := range association.TopicRefs() {
			if ref.TopicRef == identifier {
				continue
			}
			groups.Add(ref)
		}
	}
	return groups, nil
}

// GetTags collects the topic's tags: every topic reference grouped under a
// categorization association, excluding the topic itself.
func (s *Store) GetTags(ctx context.Context, mapIdentifier int, identifier string) ([]string, error) {
	associations, err := s.GetTopicAssociations(ctx, mapIdentifier, identifier, api.TopicAssociationsOptions{})
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

	var result []string
	for _, key := range groups.Keys() {
		if key.InstanceOf != categorizationType {
			continue
		}
		result = append(result, groups.TopicRefs(key)...)
	}
	return result, nil
}
