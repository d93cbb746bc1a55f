// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the typematch API server.

Typematch manages a user-defined classification schema - item types,
their properties and the allowed value sets per type - and classifies
submitted items against it with a human-readable justification trail.

# Starting the Server

The server requires a database URL via environment variable or CLI flag:

	DATABASE_URL=typematch.db go run main.go

Or with flags:

	go run main.go -p 8000 -d typematch.db -t sqlite

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MODEL_PATH (-m): AI model artifact; omit to run without classify-ai

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (types, properties, links, values, classify)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - store: Repository over the schema tables, cascades, error taxonomy
  - classify: Rule-based classification engine and completeness audit
  - predictor: Optional statistical classifier behind classify-ai
  - db: Schema creation per dialect
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
