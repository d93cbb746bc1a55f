// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers.

NewRouter builds a *http.ServeMux using Go 1.22+ method patterns. All
routes except /health and / are wrapped with request logging. See package
handlers for the route inventory.
*/
package router
