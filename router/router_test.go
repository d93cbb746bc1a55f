// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/router"
	"github.com/typematch/typematch/testutil"
)

func TestHealthCheck(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := router.NewRouter(st, nil)

	req := testutil.MakeRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestRootEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := router.NewRouter(st, nil)

	req := testutil.MakeRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

// TestSchemaLifecycle drives the whole schema editing and classification
// flow through the router, the way the frontend does.
func TestSchemaLifecycle(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := router.NewRouter(st, nil)

	do := func(method, path string, body interface{}, wantStatus int) *httptest.ResponseRecorder {
		t.Helper()
		req := testutil.MakeRequest(method, path, body)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, wantStatus)
		return w
	}

	// Build the schema
	var typ models.Type
	w := do("POST", "/types", models.CreateTypeRequest{Name: "Шайба"}, http.StatusCreated)
	testutil.AssertJSON(t, w, &typ)

	var prop models.Property
	w = do("POST", "/properties", models.CreatePropertyRequest{Name: "цвет"}, http.StatusCreated)
	testutil.AssertJSON(t, w, &prop)

	do("POST", "/possible-values/цвет", models.AddPossibleValueRequest{Value: "красный"}, http.StatusCreated)
	do("POST", "/possible-values/цвет", models.AddPossibleValueRequest{Value: "синий"}, http.StatusCreated)

	typePath := "/type-properties/" + itoa(typ.ID)
	do("POST", typePath, models.AddTypePropertyRequest{PropertyName: "цвет"}, http.StatusCreated)

	valuesPath := "/property-values/" + itoa(typ.ID) + "/" + itoa(prop.ID)
	do("POST", valuesPath, models.AddPropertyValuesRequest{Values: []string{"красный", "синий"}}, http.StatusCreated)

	// The schema is complete
	var report models.CompletenessReport
	w = do("GET", "/completeness-check", nil, http.StatusOK)
	testutil.AssertJSON(t, w, &report)
	if len(report.IncompleteTypes) != 0 || len(report.PropertiesWithoutValues) != 0 {
		t.Fatalf("Expected a complete schema, got %+v", report)
	}

	// Classify an item against it
	var resp models.ClassifyResponse
	w = do("POST", "/classify", models.ClassifyRequest{Properties: map[string]string{"цвет": "красный"}}, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.Type != "Шайба" {
		t.Errorf("Expected Шайба, got %q", resp.Type)
	}

	// Tear the type down; classification now has nothing to work with
	do("DELETE", "/types/"+itoa(typ.ID), nil, http.StatusOK)
	do("POST", "/classify", models.ClassifyRequest{Properties: map[string]string{"цвет": "красный"}}, http.StatusInternalServerError)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
