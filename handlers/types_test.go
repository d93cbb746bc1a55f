// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/typematch/typematch/handlers"
	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/testutil"
)

func TestCreateType(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewTypeHandler(st)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid type",
			body:       models.CreateTypeRequest{Name: "Шайба"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate name",
			body:       models.CreateTypeRequest{Name: "Шайба"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing name",
			body:       models.CreateTypeRequest{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/types", tt.body)
			w := httptest.NewRecorder()
			h.Create(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestListTypes(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewTypeHandler(st)

	testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestType(t, st, "Клюшка")

	req := testutil.MakeRequest("GET", "/types", nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var types []models.Type
	testutil.AssertJSON(t, w, &types)
	if len(types) != 2 {
		t.Fatalf("Expected 2 types, got %d", len(types))
	}
	if types[0].Name != "Шайба" || types[1].Name != "Клюшка" {
		t.Errorf("Unexpected listing order: %v", types)
	}
}

func TestDeleteType(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewTypeHandler(st)

	typ := testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.LinkTestProperty(t, st, "Шайба", "цвет")

	req := testutil.MakeRequest("DELETE", fmt.Sprintf("/types/%d", typ.ID), nil)
	req.SetPathValue("id", fmt.Sprintf("%d", typ.ID))
	w := httptest.NewRecorder()
	h.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Requirement links went with the type
	if props, _ := st.ListTypeProperties("Шайба"); len(props) != 0 {
		t.Errorf("Cascade did not remove requirement links: %v", props)
	}

	// Second delete is a 404
	req = testutil.MakeRequest("DELETE", fmt.Sprintf("/types/%d", typ.ID), nil)
	req.SetPathValue("id", fmt.Sprintf("%d", typ.ID))
	w = httptest.NewRecorder()
	h.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeleteTypeInvalidID(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewTypeHandler(st)

	req := testutil.MakeRequest("DELETE", "/types/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
