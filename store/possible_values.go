// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/typematch/typematch/models"
)

// ListPossibleValues returns the value catalog for a property, in
// insertion order. An unknown property simply yields an empty catalog.
func (s *Store) ListPossibleValues(propertyName string) ([]models.PossibleValue, error) {
	rows, err := s.db.Query(`
		SELECT id, property_name, value
		FROM possible_values
		WHERE property_name = $1
		ORDER BY id
	`, propertyName)
	if err != nil {
		return nil, fmt.Errorf("failed to query possible values: %w", err)
	}
	defer rows.Close()

	values := []models.PossibleValue{}
	for rows.Next() {
		var v models.PossibleValue
		if err := rows.Scan(&v.ID, &v.PropertyName, &v.Value); err != nil {
			return nil, fmt.Errorf("failed to scan possible value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// AddPossibleValue adds a value to a property's catalog. The property must
// exist; the (property, value) pair is unique.
func (s *Store) AddPossibleValue(propertyName, value string) (models.PossibleValue, error) {
	if _, err := s.GetPropertyByName(propertyName); err != nil {
		return models.PossibleValue{}, err
	}

	v := models.PossibleValue{PropertyName: propertyName, Value: value}
	err := s.db.QueryRow(`
		INSERT INTO possible_values (property_name, value)
		VALUES ($1, $2)
		RETURNING id
	`, propertyName, value).Scan(&v.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return models.PossibleValue{}, fmt.Errorf(
				"%w: possible value '%s' for property '%s' already exists",
				ErrConflict, value, propertyName)
		}
		return models.PossibleValue{}, fmt.Errorf("failed to insert possible value: %w", err)
	}
	return v, nil
}

// DeletePossibleValue removes a single catalog entry. No cascade: only
// this one record is affected.
func (s *Store) DeletePossibleValue(propertyName, value string) error {
	var id int64
	err := s.db.QueryRow(`
		SELECT id FROM possible_values
		WHERE property_name = $1 AND value = $2
	`, propertyName, value).Scan(&id)

	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: possible value '%s' for property '%s'", ErrNotFound, value, propertyName)
	}
	if err != nil {
		return fmt.Errorf("failed to query possible value: %w", err)
	}

	if _, err := s.db.Exec(`DELETE FROM possible_values WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete possible value: %w", err)
	}
	return nil
}
