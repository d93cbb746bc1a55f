// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateTypeRequest / CreatePropertyRequest: name
  - AddPossibleValueRequest: value
  - AddTypePropertyRequest: property_name
  - AddPropertyValuesRequest: values ([]string)
  - ClassifyRequest: properties (map[string]string)

# Response Types

  - ClassifyResponse: type, explanation
  - ClassifyAIResponse: type, explanation, probabilities
  - CompletenessReport: incomplete_types, properties_without_values
  - MessageResponse: message (delete outcomes)
  - ErrorResponse: error, message

# Domain Types

  - Type, Property: named schema entities with generated ids
  - PossibleValue: one catalog entry of a property
  - TypeProperty: a property required for classifying a type
  - PropertyValue: the value subset satisfying a (type, property) pair

All cross-entity references are by name; ids are surrogate keys used in
the HTTP routes.
*/
package models
