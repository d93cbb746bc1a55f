// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the typematch API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - TypeHandler: type list/create/delete (delete cascades)
  - PropertyHandler: property list/create/delete and the per-property
    possible-value catalog
  - TypePropertyHandler: required-property links, keyed by type id
  - PropertyValueHandler: per (type, property) allowed value sets,
    keyed by type and property ids
  - ClassifyHandler: rule-based classification, AI classification and
    the completeness check

Handlers are created from a *store.Store (and, for ClassifyHandler, an
optional *predictor.Predictor):

	typeHandler := handlers.NewTypeHandler(st)

# Schema Editing

	GET|POST /types                DELETE /types/{id}
	GET|POST /properties           DELETE /properties/{id}
	GET|POST /possible-values/{property}
	DELETE   /possible-values/{property}/{value}
	GET|POST /type-properties/{id}
	DELETE   /type-properties/{id}/{property}
	GET|POST /property-values/{typeID}/{propertyID}
	DELETE   /property-values/{typeID}/{propertyID}/{value}

Uniqueness violations answer 409, missing entities 404; deletes return a
{"message": ...} body. Removing a single property value answers 200 for
all three outcomes (removed, record missing, value missing) with a
message describing which one happened.

# Classification

	POST /classify           rule engine over the schema
	POST /classify-ai        statistical model (if loaded)
	GET  /completeness-check schema gap audit

The classify response is {type, explanation}; classify-ai adds a
probabilities map. When the model artifact is unavailable, classify-ai
answers 500 "AI model unavailable" while /classify keeps working.
*/
package handlers
