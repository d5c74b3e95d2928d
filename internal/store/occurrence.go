package store

import (
	"context"
	"database/sql"

	"github.com/agentic-research/topicstore/api"
)

// occurrenceKinds seeds the statistics result so every built-in resource
// kind reports a count, present or not.
var occurrenceKinds = []string{"image", "3d-scene", "video", "audio", "note", "file", "url", "text"}

// GetOccurrence fetches one occurrence. Returns (nil, nil) when absent.
// Resource data stays nil unless opts.InlineResourceData is set; callers that
// defer large payloads use GetOccurrenceData instead.
func (s *Store) GetOccurrence(ctx context.Context, mapIdentifier int, identifier string, opts api.OccurrenceOptions) (*api.Occurrence, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT identifier, instance_of, scope, resource_ref, topic_identifier, language FROM occurrence WHERE map_identifier = ? AND identifier = ?",
		mapIdentifier, identifier)

	scanned, err := scanOccurrence(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storeErr("get occurrence", err)
	}
	occurrence := &scanned

	if opts.InlineResourceData {
		data, err := s.GetOccurrenceData(ctx, mapIdentifier, identifier)
		if err != nil {
			return nil, err
		}
		occurrence.ResourceData = data
	}
	if opts.ResolveAttributes {
		attributes, err := s.GetAttributes(ctx, mapIdentifier, identifier, api.AttributesOptions{})
		if err != nil {
			return nil, err
		}
		occurrence.Attributes = append(occurrence.Attributes, attributes...)
	}
	return occurrence, nil
}

// GetOccurrenceData fetches an occurrence's raw resource payload. Returns
// nil both when the occurrence does not exist and when its payload is NULL;
// existence checks belong to GetOccurrence.
func (s *Store) GetOccurrenceData(ctx context.Context, mapIdentifier int, identifier string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT resource_data FROM occurrence WHERE map_identifier = ? AND identifier = ?",
		mapIdentifier, identifier).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get occurrence data", err)
	}
	return data, nil
}

// GetTopicOccurrences lists a topic's occurrences, narrowed by the optional
// instance-of, scope and language filters, ordered by (instance_of, scope,
// language) ascending. The ordering is part of the contract.
func (s *Store) GetTopicOccurrences(ctx context.Context, mapIdentifier int, identifier string, opts api.TopicOccurrencesOptions) ([]api.Occurrence, error) {
	f := newFilter()
	if opts.InstanceOf != "" {
		f.Eq("instance_of", opts.InstanceOf)
	}
	if opts.Scope != "" {
		f.Eq("scope", opts.Scope)
	}
	if opts.Language != "" {
		f.Eq("language", string(opts.Language))
	}

	query := `SELECT identifier, instance_of, scope, resource_ref, topic_identifier, language
		FROM occurrence
		WHERE map_identifier = ? AND topic_identifier = ?` + f.Clause() + `
		ORDER BY instance_of, scope, language`
	args := append([]any{mapIdentifier, identifier}, f.Args()...)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("get topic occurrences", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var result []api.Occurrence
	for rows.Next() {
		occurrence, err := scanOccurrence(rows.Scan)
		if err != nil {
			return nil, storeErr("get topic occurrences", err)
		}
		result = append(result, occurrence)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get topic occurrences", err)
	}

	// Child fetches run after the listing cursor is drained so the bounded
	// pool always has a free connection for them.
	for i := range result {
		if opts.InlineResourceData {
			data, err := s.GetOccurrenceData(ctx, mapIdentifier, result[i].Identifier)
			if err != nil {
				return nil, err
			}
			result[i].ResourceData = data
		}
		if opts.ResolveAttributes {
			attributes, err := s.GetAttributes(ctx, mapIdentifier, result[i].Identifier, api.AttributesOptions{})
			if err != nil {
				return nil, err
			}
			result[i].Attributes = append(result[i].Attributes, attributes...)
		}
	}
	return result, nil
}

// GetTopicOccurrencesStatistics counts a topic's occurrences per resource
// kind, optionally narrowed to one scope. Every built-in kind appears in the
// result, zero-valued when absent.
func (s *Store) GetTopicOccurrencesStatistics(ctx context.Context, mapIdentifier int, identifier, scope string) (map[string]int, error) {
	result := make(map[string]int, len(occurrenceKinds))
	for _, kind := range occurrenceKinds {
		result[kind] = 0
	}

	f := newFilter()
	if scope != "" {
		f.Eq("scope", scope)
	}
	query := "SELECT instance_of, COUNT(identifier) FROM occurrence WHERE map_identifier = ? AND topic_identifier = ?" +
		f.Clause() + " GROUP BY instance_of"
	args := append([]any{mapIdentifier, identifier}, f.Args()...)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("get topic occurrences statistics", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	for rows.Next() {
		var instanceOf string
		var count int
		if err := rows.Scan(&instanceOf, &count); err != nil {
			return nil, storeErr("get topic occurrences statistics", err)
		}
		result[instanceOf] = count
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get topic occurrences statistics", err)
	}
	return result, nil
}

// ForEachOccurrenceText streams the identifier and resource payload of every
// occurrence in the map that carries a non-NULL payload. Used by the search
// indexer.
func (s *Store) ForEachOccurrenceText(ctx context.Context, mapIdentifier int, fn func(identifier string, data []byte) error) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT identifier, resource_data FROM occurrence WHERE map_identifier = ? AND resource_data IS NOT NULL",
		mapIdentifier)
	if err != nil {
		return storeErr("scan occurrence text", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	for rows.Next() {
		var identifier string
		var data []byte
		if err := rows.Scan(&identifier, &data); err != nil {
			return storeErr("scan occurrence text", err)
		}
		if err := fn(identifier, data); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return storeErr("scan occurrence text", err)
	}
	return nil
}

// scanOccurrence hydrates one occurrence row from the standard column list.
func scanOccurrence(scan func(dest ...any) error) (api.Occurrence, error) {
	var occurrence api.Occurrence
	var lang string
	if err := scan(&occurrence.Identifier, &occurrence.InstanceOf, &occurrence.Scope,
		&occurrence.ResourceRef, &occurrence.TopicIdentifier, &lang); err != nil {
		return api.Occurrence{}, err
	}
	var err error
	if occurrence.Language, err = api.ParseLanguage(lang); err != nil {
		return api.Occurrence{}, err
	}
	return occurrence, nil
}
