// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// dbType selects the DDL dialect: "postgres" or "sqlite".
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case "postgres":
		ddl = schemaPostgres
	case "sqlite":
		ddl = schemaSQLite
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// All cross-table references are by name, so the store keeps the cascade
// logic explicit instead of leaning on ON DELETE CASCADE triggers.
const schemaPostgres = `
-- Types
CREATE TABLE IF NOT EXISTS types (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Properties
CREATE TABLE IF NOT EXISTS properties (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Possible values: catalog of values a property may ever take
CREATE TABLE IF NOT EXISTS possible_values (
    id SERIAL PRIMARY KEY,
    property_name TEXT NOT NULL,
    value TEXT NOT NULL,
    UNIQUE (property_name, value)
);

CREATE INDEX IF NOT EXISTS idx_possible_values_property ON possible_values(property_name);

-- Type properties: a property required for classifying a type
CREATE TABLE IF NOT EXISTS type_properties (
    id SERIAL PRIMARY KEY,
    type_name TEXT NOT NULL,
    property_name TEXT NOT NULL,
    UNIQUE (type_name, property_name)
);

CREATE INDEX IF NOT EXISTS idx_type_properties_type ON type_properties(type_name);

-- Property values: per (type, property) allowed value set, JSON-encoded
CREATE TABLE IF NOT EXISTS property_values (
    id SERIAL PRIMARY KEY,
    type_name TEXT NOT NULL,
    property_name TEXT NOT NULL,
    vals TEXT NOT NULL,
    UNIQUE (type_name, property_name)
);

CREATE INDEX IF NOT EXISTS idx_property_values_type ON property_values(type_name);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS types (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS properties (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS possible_values (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_name TEXT NOT NULL,
    value TEXT NOT NULL,
    UNIQUE (property_name, value)
);

CREATE INDEX IF NOT EXISTS idx_possible_values_property ON possible_values(property_name);

CREATE TABLE IF NOT EXISTS type_properties (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type_name TEXT NOT NULL,
    property_name TEXT NOT NULL,
    UNIQUE (type_name, property_name)
);

CREATE INDEX IF NOT EXISTS idx_type_properties_type ON type_properties(type_name);

CREATE TABLE IF NOT EXISTS property_values (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type_name TEXT NOT NULL,
    property_name TEXT NOT NULL,
    vals TEXT NOT NULL,
    UNIQUE (type_name, property_name)
);

CREATE INDEX IF NOT EXISTS idx_property_values_type ON property_values(type_name);
`
