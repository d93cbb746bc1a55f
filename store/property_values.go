// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/typematch/typematch/models"
)

// RemoveOutcome describes what RemovePropertyValue did. A missing record
// or a missing value is a structured outcome, not an error.
type RemoveOutcome int

const (
	ValueRemoved RemoveOutcome = iota
	RecordMissing
	ValueMissing
)

// GetPropertyValues fetches the allowed-value record for a (type, property)
// pair. Returns ErrNotFound when no record exists.
func (s *Store) GetPropertyValues(typeName, propertyName string) (models.PropertyValue, error) {
	var pv models.PropertyValue
	var encoded string
	err := s.db.QueryRow(`
		SELECT id, type_name, property_name, vals
		FROM property_values
		WHERE type_name = $1 AND property_name = $2
	`, typeName, propertyName).Scan(&pv.ID, &pv.TypeName, &pv.PropertyName, &encoded)

	if err == sql.ErrNoRows {
		return models.PropertyValue{}, fmt.Errorf(
			"%w: property values for type '%s' and property '%s'",
			ErrNotFound, typeName, propertyName)
	}
	if err != nil {
		return models.PropertyValue{}, fmt.Errorf("failed to query property values: %w", err)
	}

	if err := json.Unmarshal([]byte(encoded), &pv.Values); err != nil {
		return models.PropertyValue{}, fmt.Errorf("failed to decode property values: %w", err)
	}
	return pv, nil
}

// AppendPropertyValues is the PropertyValue upsert. If a record exists for
// the (type, property) pair, every requested value is checked against the
// stored set; if any is already present the whole call fails with
// ErrConflict and nothing is appended. Otherwise all new values are
// appended in the order given. If no record exists, one is created holding
// exactly newValues. The read-check-write runs in one transaction so a
// concurrent append cannot slip past the duplicate check.
func (s *Store) AppendPropertyValues(typeName, propertyName string, newValues []string) (models.PropertyValue, error) {
	seen := map[string]bool{}
	for _, v := range newValues {
		if seen[v] {
			return models.PropertyValue{}, fmt.Errorf(
				"%w: value '%s' requested more than once", ErrConflict, v)
		}
		seen[v] = true
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.PropertyValue{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pv := models.PropertyValue{TypeName: typeName, PropertyName: propertyName}

	var encoded string
	err = tx.QueryRow(`
		SELECT id, vals FROM property_values
		WHERE type_name = $1 AND property_name = $2
	`, typeName, propertyName).Scan(&pv.ID, &encoded)

	switch {
	case err == sql.ErrNoRows:
		pv.Values = newValues
		payload, err := json.Marshal(pv.Values)
		if err != nil {
			return models.PropertyValue{}, fmt.Errorf("failed to encode property values: %w", err)
		}
		err = tx.QueryRow(`
			INSERT INTO property_values (type_name, property_name, vals)
			VALUES ($1, $2, $3)
			RETURNING id
		`, typeName, propertyName, string(payload)).Scan(&pv.ID)
		if err != nil {
			return models.PropertyValue{}, fmt.Errorf("failed to insert property values: %w", err)
		}

	case err != nil:
		return models.PropertyValue{}, fmt.Errorf("failed to query property values: %w", err)

	default:
		if err := json.Unmarshal([]byte(encoded), &pv.Values); err != nil {
			return models.PropertyValue{}, fmt.Errorf("failed to decode property values: %w", err)
		}
		for _, v := range newValues {
			if slices.Contains(pv.Values, v) {
				return models.PropertyValue{}, fmt.Errorf(
					"%w: value '%s' already exists for property '%s' and type '%s'",
					ErrConflict, v, propertyName, typeName)
			}
		}
		pv.Values = append(pv.Values, newValues...)
		payload, err := json.Marshal(pv.Values)
		if err != nil {
			return models.PropertyValue{}, fmt.Errorf("failed to encode property values: %w", err)
		}
		if _, err := tx.Exec(`UPDATE property_values SET vals = $1 WHERE id = $2`, string(payload), pv.ID); err != nil {
			return models.PropertyValue{}, fmt.Errorf("failed to update property values: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.PropertyValue{}, fmt.Errorf("failed to commit property values: %w", err)
	}
	return pv, nil
}

// RemovePropertyValue removes one value from the (type, property) record.
// The record persists even when the resulting set becomes empty.
func (s *Store) RemovePropertyValue(typeName, propertyName, value string) (RemoveOutcome, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return ValueMissing, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	var encoded string
	err = tx.QueryRow(`
		SELECT id, vals FROM property_values
		WHERE type_name = $1 AND property_name = $2
	`, typeName, propertyName).Scan(&id, &encoded)

	if err == sql.ErrNoRows {
		return RecordMissing, nil
	}
	if err != nil {
		return ValueMissing, fmt.Errorf("failed to query property values: %w", err)
	}

	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return ValueMissing, fmt.Errorf("failed to decode property values: %w", err)
	}

	idx := slices.Index(values, value)
	if idx < 0 {
		return ValueMissing, nil
	}

	values = slices.Delete(values, idx, idx+1)
	payload, err := json.Marshal(values)
	if err != nil {
		return ValueMissing, fmt.Errorf("failed to encode property values: %w", err)
	}
	if _, err := tx.Exec(`UPDATE property_values SET vals = $1 WHERE id = $2`, string(payload), id); err != nil {
		return ValueMissing, fmt.Errorf("failed to update property values: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ValueMissing, fmt.Errorf("failed to commit property value removal: %w", err)
	}
	return ValueRemoved, nil
}
