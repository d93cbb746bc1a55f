// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the repository layer for the classification schema.

# Entities

Five collections, one file each:

  - types: classification labels (unique name)
  - properties: named attributes (unique name)
  - possible_values: per-property value catalog (unique (property, value))
  - type_properties: required-property links (unique (type, property))
  - property_values: per (type, property) allowed value set (one record per pair)

# Error Taxonomy

Two sentinels, matched with errors.Is at handler boundaries:

  - ErrNotFound: a referenced entity does not exist
  - ErrConflict: a uniqueness constraint would be violated

Everything else is an internal failure. Every error names the offending
key or value.

# Cascades

DeleteType and DeleteProperty apply their cascades explicitly inside a
single transaction: either the whole cascade commits or none of it does.
Removing a single possible value or a single value from a property-value
record never cascades.

# The PropertyValue Upsert

AppendPropertyValues conflates create and update into one call: a missing
record is created, an existing record is extended. Any requested value
already present fails the whole call with ErrConflict before anything is
written. RemovePropertyValue distinguishes "record missing" and "value
missing" as structured RemoveOutcome results rather than errors.
*/
package store
