// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/typematch/typematch/models"
)

// ListTypeProperties returns the names of the properties required for
// classifying a type, in insertion order.
func (s *Store) ListTypeProperties(typeName string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT property_name
		FROM type_properties
		WHERE type_name = $1
		ORDER BY id
	`, typeName)
	if err != nil {
		return nil, fmt.Errorf("failed to query type properties: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan type property: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// AddTypeProperty declares propertyName as required for typeName. Both
// sides must exist; the (type, property) pair is unique.
func (s *Store) AddTypeProperty(typeName, propertyName string) (models.TypeProperty, error) {
	if _, err := s.GetPropertyByName(propertyName); err != nil {
		return models.TypeProperty{}, err
	}

	tp := models.TypeProperty{TypeName: typeName, PropertyName: propertyName}
	err := s.db.QueryRow(`
		INSERT INTO type_properties (type_name, property_name)
		VALUES ($1, $2)
		RETURNING id
	`, typeName, propertyName).Scan(&tp.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return models.TypeProperty{}, fmt.Errorf(
				"%w: type '%s' already requires property '%s'",
				ErrConflict, typeName, propertyName)
		}
		return models.TypeProperty{}, fmt.Errorf("failed to insert type property: %w", err)
	}
	return tp, nil
}

// DeleteTypeProperty removes a single requirement link. No cascade.
func (s *Store) DeleteTypeProperty(typeName, propertyName string) error {
	var id int64
	err := s.db.QueryRow(`
		SELECT id FROM type_properties
		WHERE type_name = $1 AND property_name = $2
	`, typeName, propertyName).Scan(&id)

	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: type '%s' does not require property '%s'", ErrNotFound, typeName, propertyName)
	}
	if err != nil {
		return fmt.Errorf("failed to query type property: %w", err)
	}

	if _, err := s.db.Exec(`DELETE FROM type_properties WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete type property: %w", err)
	}
	return nil
}
