package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ddl is the complete topic-map schema. Entity tables are keyed by
// (map_identifier, identifier); a topic row with a non-NULL scope is an
// association. The occurrence_index/occurrence_ids pair holds the full-text
// token index maintained by the search package.
const ddl = `
CREATE TABLE IF NOT EXISTS topic (
	map_identifier INTEGER NOT NULL,
	identifier TEXT NOT NULL,
	instance_of TEXT NOT NULL,
	scope TEXT,
	PRIMARY KEY (map_identifier, identifier)
);
CREATE INDEX IF NOT EXISTS idx_topic_instance_of ON topic (map_identifier, instance_of);

CREATE TABLE IF NOT EXISTS basename (
	map_identifier INTEGER NOT NULL,
	identifier TEXT NOT NULL,
	name TEXT NOT NULL,
	topic_identifier TEXT NOT NULL,
	scope TEXT NOT NULL,
	language TEXT NOT NULL,
	PRIMARY KEY (map_identifier, identifier)
);
CREATE INDEX IF NOT EXISTS idx_basename_topic ON basename (map_identifier, topic_identifier);

CREATE TABLE IF NOT EXISTS member (
	map_identifier INTEGER NOT NULL,
	identifier TEXT NOT NULL,
	association_identifier TEXT NOT NULL,
	src_topic_ref TEXT NOT NULL,
	src_role_spec TEXT NOT NULL,
	dest_topic_ref TEXT NOT NULL,
	dest_role_spec TEXT NOT NULL,
	PRIMARY KEY (map_identifier, identifier),
	UNIQUE (map_identifier, association_identifier, src_role_spec, src_topic_ref, dest_role_spec, dest_topic_ref)
);
CREATE INDEX IF NOT EXISTS idx_member_association ON member (map_identifier, association_identifier);
CREATE INDEX IF NOT EXISTS idx_member_src ON member (map_identifier, src_topic_ref);
CREATE INDEX IF NOT EXISTS idx_member_dest ON member (map_identifier, dest_topic_ref);

CREATE TABLE IF NOT EXISTS occurrence (
	map_identifier INTEGER NOT NULL,
	identifier TEXT NOT NULL,
	instance_of TEXT NOT NULL,
	scope TEXT NOT NULL,
	resource_ref TEXT NOT NULL,
	resource_data BLOB,
	topic_identifier TEXT NOT NULL,
	language TEXT NOT NULL,
	PRIMARY KEY (map_identifier, identifier)
);
CREATE INDEX IF NOT EXISTS idx_occurrence_topic ON occurrence (map_identifier, topic_identifier);

CREATE TABLE IF NOT EXISTS attribute (
	map_identifier INTEGER NOT NULL,
	identifier TEXT NOT NULL,
	entity_identifier TEXT NOT NULL,
	name TEXT NOT NULL,
	value TEXT NOT NULL,
	data_type TEXT NOT NULL,
	scope TEXT NOT NULL,
	language TEXT NOT NULL,
	PRIMARY KEY (map_identifier, identifier),
	UNIQUE (map_identifier, entity_identifier, name, scope, language)
);
CREATE INDEX IF NOT EXISTS idx_attribute_entity ON attribute (map_identifier, entity_identifier);

CREATE TABLE IF NOT EXISTS map (
	identifier INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	image_path TEXT,
	initialised INTEGER NOT NULL DEFAULT 0,
	published INTEGER NOT NULL DEFAULT 0,
	promoted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS user_map (
	user_identifier INTEGER NOT NULL,
	map_identifier INTEGER NOT NULL,
	owner INTEGER NOT NULL DEFAULT 0,
	collaboration_mode TEXT NOT NULL,
	PRIMARY KEY (user_identifier, map_identifier)
);

CREATE TABLE IF NOT EXISTS occurrence_index (
	token TEXT PRIMARY KEY,
	bitmap BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS occurrence_ids (
	id INTEGER PRIMARY KEY,
	identifier TEXT UNIQUE NOT NULL
);
`

// InitSchema creates all topic-map tables and indexes on db. It is
// idempotent and safe to run against a database that already has the schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create topic map schema: %w", err)
	}
	return nil
}
