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

func TestAddTypeProperty(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewTypePropertyHandler(st)

	typ := testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")

	tests := []struct {
		name       string
		typeID     string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid link",
			typeID:     fmt.Sprintf("%d", typ.ID),
			body:       models.AddTypePropertyRequest{PropertyName: "цвет"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate link",
			typeID:     fmt.Sprintf("%d", typ.ID),
			body:       models.AddTypePropertyRequest{PropertyName: "цвет"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown property",
			typeID:     fmt.Sprintf("%d", typ.ID),
			body:       models.AddTypePropertyRequest{PropertyName: "вес"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown type",
			typeID:     "999",
			body:       models.AddTypePropertyRequest{PropertyName: "цвет"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing property name",
			typeID:     fmt.Sprintf("%d", typ.ID),
			body:       models.AddTypePropertyRequest{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/type-properties/"+tt.typeID, tt.body)
			req.SetPathValue("id", tt.typeID)
			w := httptest.NewRecorder()
			h.Add(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestListTypeProperties(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewTypePropertyHandler(st)

	typ := testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.CreateTestProperty(t, st, "размер")
	testutil.LinkTestProperty(t, st, "Шайба", "цвет")
	testutil.LinkTestProperty(t, st, "Шайба", "размер")

	req := testutil.MakeRequest("GET", fmt.Sprintf("/type-properties/%d", typ.ID), nil)
	req.SetPathValue("id", fmt.Sprintf("%d", typ.ID))
	w := httptest.NewRecorder()
	h.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var names []string
	testutil.AssertJSON(t, w, &names)
	if len(names) != 2 || names[0] != "цвет" || names[1] != "размер" {
		t.Errorf("Unexpected required properties: %v", names)
	}
}

func TestDeleteTypeProperty(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewTypePropertyHandler(st)

	typ := testutil.CreateTestType(t, st, "Шайба")
	testutil.CreateTestProperty(t, st, "цвет")
	testutil.LinkTestProperty(t, st, "Шайба", "цвет")

	id := fmt.Sprintf("%d", typ.ID)

	req := testutil.MakeRequest("DELETE", "/type-properties/"+id+"/цвет", nil)
	req.SetPathValue("id", id)
	req.SetPathValue("property", "цвет")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// The link is gone, the property itself is not
	req = testutil.MakeRequest("DELETE", "/type-properties/"+id+"/цвет", nil)
	req.SetPathValue("id", id)
	req.SetPathValue("property", "цвет")
	w = httptest.NewRecorder()
	h.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	if _, err := st.GetPropertyByName("цвет"); err != nil {
		t.Errorf("Deleting a link removed the property: %v", err)
	}
}
