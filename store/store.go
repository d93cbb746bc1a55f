// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
)

// Store is the authoritative owner of the schema entities. All schema
// mutation goes through it; classification only reads.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for schema creation and tests.
func (s *Store) DB() *sql.DB {
	return s.db
}
