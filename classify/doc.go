// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classify holds the rule-based classification engine and the schema
completeness audit.

# Classification

ClassifyItem evaluates one submitted item against every declared type:

	resp, err := classify.ClassifyItem(st, map[string]string{"цвет": "красный"})

An item is a flat property-name -> value map. Property names are matched
case-insensitively; values exactly. Only the properties the caller
supplied are validated - a required property the item omits is not treated
as a failure. Every disqualification is collected into the explanation
trail; suitable types are returned comma-joined, or the "type
undetermined" sentinel when nothing matches. A schema with zero types is
an internal error (ErrNoTypes).

# Completeness

CheckCompleteness reports schema gaps without mutating anything:

	report, err := classify.CheckCompleteness(st)

It flags types with no required properties, types whose required
properties have no value set, and properties with an empty value catalog.
A requirement link pointing at a property that no longer exists is a
broken invariant and fails the audit.
*/
package classify
