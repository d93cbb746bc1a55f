// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the selected dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Supported dialects are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite).

# Tables

  - types: classification labels an item may be assigned
  - properties: named attributes usable across types
  - possible_values: catalog of values a property may ever take
  - type_properties: properties required for classifying a type
  - property_values: per (type, property) allowed value set

# Relationships

	types 1──* type_properties
	types 1──* property_values
	properties 1──* possible_values
	properties 1──* type_properties
	properties 1──* property_values

References are by name, not surrogate id, and there are no foreign key
constraints: the store applies cascade deletes explicitly inside a
transaction so partial cascades are never observable.

# Uniqueness

  - types.name, properties.name
  - possible_values (property_name, value)
  - type_properties (type_name, property_name)
  - property_values (type_name, property_name)
*/
package db
