// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: request/completion logging with a per-request id
  - CORS: permissive cross-origin headers for the schema editor frontend
  - JSONResponse / ErrorResponse: response encoding helpers
  - ParseJSONBody: request decoding helper
*/
package middleware
