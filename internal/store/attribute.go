package store

import (
	"context"
	"database/sql"

	"github.com/agentic-research/topicstore/api"
)

// GetAttribute fetches one attribute by identifier. Returns (nil, nil) when
// absent.
func (s *Store) GetAttribute(ctx context.Context, mapIdentifier int, identifier string) (*api.Attribute, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT identifier, entity_identifier, name, value, data_type, scope, language FROM attribute WHERE map_identifier = ? AND identifier = ?",
		mapIdentifier, identifier)

	attribute, err := scanAttribute(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storeErr("get attribute", err)
	}
	return &attribute, nil
}

// GetAttributes lists an entity's attributes, narrowed by the optional scope
// and language filters. The entity may be a topic, association or occurrence.
func (s *Store) GetAttributes(ctx context.Context, mapIdentifier int, entityIdentifier string, opts api.AttributesOptions) ([]api.Attribute, error) {
	f := newFilter()
	if opts.Scope != "" {
		f.Eq("scope", opts.Scope)
	}
	if opts.Language != "" {
		f.Eq("language", string(opts.Language))
	}

	query := "SELECT identifier, entity_identifier, name, value, data_type, scope, language FROM attribute WHERE map_identifier = ? AND entity_identifier = ?" + f.Clause()
	args := append([]any{mapIdentifier, entityIdentifier}, f.Args()...)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("get attributes", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var result []api.Attribute
	for rows.Next() {
		attribute, err := scanAttribute(rows.Scan)
		if err != nil {
			return nil, storeErr("get attributes", err)
		}
		result = append(result, attribute)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get attributes", err)
	}
	return result, nil
}

// scanAttribute hydrates one attribute row from the standard column list.
func scanAttribute(scan func(dest ...any) error) (api.Attribute, error) {
	var attribute api.Attribute
	var dataType, lang string
	if err := scan(&attribute.Identifier, &attribute.EntityIdentifier, &attribute.Name,
		&attribute.Value, &dataType, &attribute.Scope, &lang); err != nil {
		return api.Attribute{}, err
	}
	var err error
	if attribute.DataType, err = api.ParseDataType(dataType); err != nil {
		return api.Attribute{}, err
	}
	if attribute.Language, err = api.ParseLanguage(lang); err != nil {
		return api.Attribute{}, err
	}
	return attribute, nil
}
