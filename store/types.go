// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/typematch/typematch/models"
)

// ListTypes returns every declared type in insertion order.
func (s *Store) ListTypes() ([]models.Type, error) {
	rows, err := s.db.Query(`SELECT id, name FROM types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query types: %w", err)
	}
	defer rows.Close()

	types := []models.Type{}
	for rows.Next() {
		var t models.Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// CreateType inserts a new type. Names are globally unique.
func (s *Store) CreateType(name string) (models.Type, error) {
	var t models.Type
	t.Name = name

	err := s.db.QueryRow(`
		INSERT INTO types (name)
		VALUES ($1)
		RETURNING id
	`, name).Scan(&t.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Type{}, fmt.Errorf("%w: type '%s' already exists", ErrConflict, name)
		}
		return models.Type{}, fmt.Errorf("failed to insert type: %w", err)
	}
	return t, nil
}

func (s *Store) GetTypeByID(id int64) (models.Type, error) {
	var t models.Type
	err := s.db.QueryRow(`SELECT id, name FROM types WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return models.Type{}, fmt.Errorf("%w: type with id %d", ErrNotFound, id)
	}
	if err != nil {
		return models.Type{}, fmt.Errorf("failed to query type: %w", err)
	}
	return t, nil
}

func (s *Store) GetTypeByName(name string) (models.Type, error) {
	var t models.Type
	err := s.db.QueryRow(`SELECT id, name FROM types WHERE name = $1`, name).Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return models.Type{}, fmt.Errorf("%w: type '%s'", ErrNotFound, name)
	}
	if err != nil {
		return models.Type{}, fmt.Errorf("failed to query type: %w", err)
	}
	return t, nil
}

// DeleteType removes a type together with every type_properties and
// property_values row referencing it, as one transaction. No partial
// cascade is ever committed.
func (s *Store) DeleteType(id int64) error {
	t, err := s.GetTypeByID(id)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM type_properties WHERE type_name = $1`, t.Name); err != nil {
		return fmt.Errorf("failed to delete type properties: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM property_values WHERE type_name = $1`, t.Name); err != nil {
		return fmt.Errorf("failed to delete property values: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM types WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete type: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit type delete: %w", err)
	}
	return nil
}
