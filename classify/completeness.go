// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"errors"
	"fmt"

	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/store"
)

// Completeness-check reason strings.
const (
	ReasonNoTypes          = "no types defined"
	ReasonNoProperties     = "no properties"
	ReasonNoPropertyValues = "no property values"

	// SentinelNoTypes and SentinelNoProperties are synthetic entries for a
	// schema that is empty on one side.
	SentinelNoTypes      = "no types"
	SentinelNoProperties = "no properties"
)

// CheckCompleteness audits the schema for gaps: types with no required
// properties, types whose required properties lack a value set, and
// properties with an empty value catalog. It is a read-only pre-flight
// check before relying on the schema for classification.
func CheckCompleteness(s *store.Store) (models.CompletenessReport, error) {
	report := models.CompletenessReport{
		IncompleteTypes:         []models.IncompleteType{},
		PropertiesWithoutValues: []string{},
	}

	allTypes, err := s.ListTypes()
	if err != nil {
		return models.CompletenessReport{}, err
	}
	allProperties, err := s.ListProperties()
	if err != nil {
		return models.CompletenessReport{}, err
	}

	if len(allTypes) == 0 {
		report.IncompleteTypes = append(report.IncompleteTypes, models.IncompleteType{
			Type:   SentinelNoTypes,
			Reason: ReasonNoTypes,
		})
	}
	if len(allProperties) == 0 {
		report.PropertiesWithoutValues = append(report.PropertiesWithoutValues, SentinelNoProperties)
	}

	for _, t := range allTypes {
		required, err := s.ListTypeProperties(t.Name)
		if err != nil {
			return models.CompletenessReport{}, err
		}
		if len(required) == 0 {
			report.IncompleteTypes = append(report.IncompleteTypes, models.IncompleteType{
				Type:   t.Name,
				Reason: ReasonNoProperties,
			})
			continue
		}

		for _, propName := range required {
			// A link pointing at a property that no longer exists is a
			// broken invariant, surfaced as a defect rather than swallowed.
			if _, err := s.GetPropertyByName(propName); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return models.CompletenessReport{}, fmt.Errorf(
						"type '%s' requires property '%s' which does not exist: %w",
						t.Name, propName, err)
				}
				return models.CompletenessReport{}, err
			}

			_, err := s.GetPropertyValues(t.Name, propName)
			if errors.Is(err, store.ErrNotFound) {
				report.IncompleteTypes = append(report.IncompleteTypes, models.IncompleteType{
					Type:   t.Name,
					Reason: ReasonNoPropertyValues,
				})
				break
			}
			if err != nil {
				return models.CompletenessReport{}, err
			}
		}
	}

	for _, p := range allProperties {
		catalog, err := s.ListPossibleValues(p.Name)
		if err != nil {
			return models.CompletenessReport{}, err
		}
		if len(catalog) == 0 {
			report.PropertiesWithoutValues = append(report.PropertiesWithoutValues, p.Name)
		}
	}

	return report, nil
}
