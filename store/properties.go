// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/typematch/typematch/models"
)

// ListProperties returns every declared property in insertion order.
func (s *Store) ListProperties() ([]models.Property, error) {
	rows, err := s.db.Query(`SELECT id, name FROM properties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	props := []models.Property{}
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

// CreateProperty inserts a new property. Names are globally unique.
func (s *Store) CreateProperty(name string) (models.Property, error) {
	var p models.Property
	p.Name = name

	err := s.db.QueryRow(`
		INSERT INTO properties (name)
		VALUES ($1)
		RETURNING id
	`, name).Scan(&p.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Property{}, fmt.Errorf("%w: property '%s' already exists", ErrConflict, name)
		}
		return models.Property{}, fmt.Errorf("failed to insert property: %w", err)
	}
	return p, nil
}

func (s *Store) GetPropertyByID(id int64) (models.Property, error) {
	var p models.Property
	err := s.db.QueryRow(`SELECT id, name FROM properties WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return models.Property{}, fmt.Errorf("%w: property with id %d", ErrNotFound, id)
	}
	if err != nil {
		return models.Property{}, fmt.Errorf("failed to query property: %w", err)
	}
	return p, nil
}

func (s *Store) GetPropertyByName(name string) (models.Property, error) {
	var p models.Property
	err := s.db.QueryRow(`SELECT id, name FROM properties WHERE name = $1`, name).Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return models.Property{}, fmt.Errorf("%w: property '%s'", ErrNotFound, name)
	}
	if err != nil {
		return models.Property{}, fmt.Errorf("failed to query property: %w", err)
	}
	return p, nil
}

// DeleteProperty removes a property together with every possible_values,
// type_properties and property_values row referencing it, as one
// transaction.
func (s *Store) DeleteProperty(id int64) error {
	p, err := s.GetPropertyByID(id)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM possible_values WHERE property_name = $1`, p.Name); err != nil {
		return fmt.Errorf("failed to delete possible values: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM type_properties WHERE property_name = $1`, p.Name); err != nil {
		return fmt.Errorf("failed to delete type properties: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM property_values WHERE property_name = $1`, p.Name); err != nil {
		return fmt.Errorf("failed to delete property values: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM properties WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit property delete: %w", err)
	}
	return nil
}
