package store

import (
	"context"
	"database/sql"

	"github.com/agentic-research/topicstore/api"
)

// userMapColumns is the map/user_map join projection shared by the per-user
// lookups.
const userMapColumns = `SELECT
	map.identifier,
	map.name,
	map.description,
	map.image_path,
	map.initialised,
	map.published,
	map.promoted,
	user_map.user_identifier,
	user_map.owner,
	user_map.collaboration_mode
	FROM map
	INNER JOIN user_map ON map.identifier = user_map.map_identifier`

// GetMap fetches one topic map by identifier. Returns (nil, nil) when
// absent. Publication state does not restrict this lookup; published-only
// listings are GetPublishedMaps and GetPromotedMaps.
func (s *Store) GetMap(ctx context.Context, mapIdentifier int) (*api.Map, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT identifier, name, description, image_path, initialised, published, promoted FROM map WHERE identifier = ?",
		mapIdentifier)

	m, err := scanMap(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storeErr("get map", err)
	}
	return m, nil
}

// GetMapForUser fetches one topic map through the user's ownership/
// collaboration grant. Returns (nil, nil) when the user has no grant on the
// map, even if the map exists. Collaborators see unpublished maps:
// collaboration implies visibility.
func (s *Store) GetMapForUser(ctx context.Context, mapIdentifier, userIdentifier int) (*api.Map, error) {
	row := s.db.QueryRowContext(ctx,
		userMapColumns+" WHERE user_map.user_identifier = ? AND map.identifier = ?",
		userIdentifier, mapIdentifier)

	m, err := scanUserMap(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storeErr("get map for user", err)
	}
	return m, nil
}

// GetMaps lists the maps owned by or shared with a user, ordered by map
// identifier ascending, paginated by offset/limit.
func (s *Store) GetMaps(ctx context.Context, userIdentifier, offset, limit int) ([]*api.Map, error) {
	rows, err := s.db.QueryContext(ctx,
		userMapColumns+" WHERE user_map.user_identifier = ? ORDER BY map.identifier LIMIT ? OFFSET ?",
		userIdentifier, limit, offset)
	if err != nil {
		return nil, storeErr("get maps", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var result []*api.Map
	for rows.Next() {
		m, err := scanUserMap(rows.Scan)
		if err != nil {
			return nil, storeErr("get maps", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get maps", err)
	}
	return result, nil
}

// GetPublishedMaps lists all published maps, ordered by identifier.
func (s *Store) GetPublishedMaps(ctx context.Context) ([]*api.Map, error) {
	return s.listMaps(ctx, "get published maps", "published = 1")
}

// GetPromotedMaps lists all promoted maps. Promotion implies publication, so
// the predicate requires both flags.
func (s *Store) GetPromotedMaps(ctx context.Context) ([]*api.Map, error) {
	return s.listMaps(ctx, "get promoted maps", "promoted = 1 AND published = 1")
}

func (s *Store) listMaps(ctx context.Context, op, predicate string) ([]*api.Map, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT identifier, name, description, image_path, initialised, published, promoted FROM map WHERE "+predicate+" ORDER BY identifier")
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var result []*api.Map
	for rows.Next() {
		m, err := scanMap(rows.Scan)
		if err != nil {
			return nil, storeErr(op, err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return result, nil
}

// IsMapOwner reports whether the user owns the map.
func (s *Store) IsMapOwner(ctx context.Context, mapIdentifier, userIdentifier int) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM user_map WHERE user_identifier = ? AND map_identifier = ? AND owner = 1",
		userIdentifier, mapIdentifier).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, storeErr("is map owner", err)
	}
	return true, nil
}

// GetCollaborationMode returns the user's access level on the map. The
// boolean reports whether the user has any grant at all.
func (s *Store) GetCollaborationMode(ctx context.Context, mapIdentifier, userIdentifier int) (api.CollaborationMode, bool, error) {
	var mode string
	err := s.db.QueryRowContext(ctx,
		"SELECT collaboration_mode FROM user_map WHERE user_identifier = ? AND map_identifier = ?",
		userIdentifier, mapIdentifier).Scan(&mode)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeErr("get collaboration mode", err)
	}
	parsed, err := api.ParseCollaborationMode(mode)
	if err != nil {
		return "", false, storeErr("get collaboration mode", err)
	}
	return parsed, true, nil
}

func scanMap(scan func(dest ...any) error) (*api.Map, error) {
	var m api.Map
	var description, imagePath sql.NullString
	if err := scan(&m.Identifier, &m.Name, &description, &imagePath,
		&m.Initialised, &m.Published, &m.Promoted); err != nil {
		return nil, err
	}
	m.Description = description.String
	m.ImagePath = imagePath.String
	return &m, nil
}

func scanUserMap(scan func(dest ...any) error) (*api.Map, error) {
	var m api.Map
	var description, imagePath sql.NullString
	var mode string
	if err := scan(&m.Identifier, &m.Name, &description, &imagePath,
		&m.Initialised, &m.Published, &m.Promoted,
		&m.UserIdentifier, &m.Owner, &mode); err != nil {
		return nil, err
	}
	m.Description = description.String
	m.ImagePath = imagePath.String
	var err error
	if m.CollaborationMode, err = api.ParseCollaborationMode(mode); err != nil {
		return nil, err
	}
	return &m, nil
}
