// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/typematch/typematch/db"
	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database, so no cleanup between tests is
// needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive and shared
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates a store over a fresh test database.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// CreateTestType creates a type and returns it.
func CreateTestType(t *testing.T, st *store.Store, name string) models.Type {
	t.Helper()
	typ, err := st.CreateType(name)
	if err != nil {
		t.Fatalf("Failed to create test type %q: %v", name, err)
	}
	return typ
}

// CreateTestProperty creates a property and returns it.
func CreateTestProperty(t *testing.T, st *store.Store, name string) models.Property {
	t.Helper()
	prop, err := st.CreateProperty(name)
	if err != nil {
		t.Fatalf("Failed to create test property %q: %v", name, err)
	}
	return prop
}

// AddTestPossibleValue adds a catalog value for a property.
func AddTestPossibleValue(t *testing.T, st *store.Store, propertyName, value string) {
	t.Helper()
	if _, err := st.AddPossibleValue(propertyName, value); err != nil {
		t.Fatalf("Failed to add possible value %q for %q: %v", value, propertyName, err)
	}
}

// LinkTestProperty declares a property as required for a type.
func LinkTestProperty(t *testing.T, st *store.Store, typeName, propertyName string) {
	t.Helper()
	if _, err := st.AddTypeProperty(typeName, propertyName); err != nil {
		t.Fatalf("Failed to link property %q to type %q: %v", propertyName, typeName, err)
	}
}

// SetTestPropertyValues sets the allowed values for a (type, property) pair.
func SetTestPropertyValues(t *testing.T, st *store.Store, typeName, propertyName string, values []string) {
	t.Helper()
	if _, err := st.AppendPropertyValues(typeName, propertyName, values); err != nil {
		t.Fatalf("Failed to set property values for (%q, %q): %v", typeName, propertyName, err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
