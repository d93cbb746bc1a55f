// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves server configuration.

Resolution order: CLI flags, then environment variables (a .env file in
the working directory is loaded first if present), then defaults. The
database URL is the only required setting.
*/
package cliparse
