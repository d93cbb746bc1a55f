// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/store"
)

// ErrNoTypes is returned when classification is attempted against a schema
// with no declared types.
var ErrNoTypes = errors.New("no types defined")

// ClassifyItem decides which declared types the submitted item satisfies.
//
// The item is a property-name -> chosen-value map. Property names compare
// case-insensitively; values compare exactly. Only properties the caller
// actually supplied are checked: a required property the item does not
// mention is not validated as missing. A property the item supplies that a
// type does not require disqualifies that type.
//
// One pass per request, purely functional over the schema read at call
// time. Every disqualification is recorded so the caller gets a full
// justification trail.
func ClassifyItem(s *store.Store, item map[string]string) (models.ClassifyResponse, error) {
	allTypes, err := s.ListTypes()
	if err != nil {
		return models.ClassifyResponse{}, err
	}
	if len(allTypes) == 0 {
		return models.ClassifyResponse{}, ErrNoTypes
	}

	submitted := normalizeItem(item)

	// Sorted property names keep explanations deterministic regardless of
	// map iteration order.
	propNames := make([]string, 0, len(submitted))
	for name := range submitted {
		propNames = append(propNames, name)
	}
	sort.Strings(propNames)

	suitable := []string{}
	explanations := []string{}

	for _, t := range allTypes {
		required, err := s.ListTypeProperties(t.Name)
		if err != nil {
			return models.ClassifyResponse{}, err
		}

		if len(required) == 0 {
			explanations = append(explanations, fmt.Sprintf(
				"type '%s' disqualified: no properties defined for it", t.Name))
			continue
		}

		requiredLower := map[string]string{}
		for _, name := range required {
			requiredLower[strings.ToLower(name)] = name
		}

		ok := true
		for _, propName := range propNames {
			value := submitted[propName]

			declared, isRequired := requiredLower[propName]
			if !isRequired {
				ok = false
				explanations = append(explanations, fmt.Sprintf(
					"type '%s' disqualified: property '%s' is not defined for this type",
					t.Name, propName))
				continue
			}

			allowed, err := allowedValues(s, t.Name, declared)
			if err != nil {
				return models.ClassifyResponse{}, err
			}
			found := false
			for _, v := range allowed {
				if v == value {
					found = true
					break
				}
			}
			if !found {
				ok = false
				explanations = append(explanations, fmt.Sprintf(
					"type '%s' disqualified: value '%s' of property '%s' does not match the type description",
					t.Name, value, declared))
			}
		}

		if ok {
			suitable = append(suitable, t.Name)
		}
	}

	if len(suitable) > 0 {
		resp := models.ClassifyResponse{
			Type: strings.Join(suitable, ", "),
			Explanation: append(
				[]string{fmt.Sprintf("suitable types: %s", strings.Join(suitable, ", "))},
				explanations...),
		}
		return resp, nil
	}

	return models.ClassifyResponse{
		Type: models.TypeUndetermined,
		Explanation: append(
			[]string{"all type hypotheses were disqualified"},
			explanations...),
	}, nil
}

// normalizeItem lower-cases property names and discards entries whose
// value is empty or all-whitespace.
func normalizeItem(item map[string]string) map[string]string {
	normalized := map[string]string{}
	for name, value := range item {
		if strings.TrimSpace(value) == "" {
			continue
		}
		normalized[strings.ToLower(name)] = value
	}
	return normalized
}

// allowedValues resolves the value set a (type, property) pair accepts. A
// pair with no record accepts nothing.
func allowedValues(s *store.Store, typeName, propertyName string) ([]string, error) {
	pv, err := s.GetPropertyValues(typeName, propertyName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return pv.Values, nil
}
