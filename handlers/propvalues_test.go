// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/typematch/typematch/handlers"
	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/testutil"
)

func TestAddPropertyValues(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewPropertyValueHandler(st)

	typ := testutil.CreateTestType(t, st, "Шайба")
	prop := testutil.CreateTestProperty(t, st, "цвет")

	typeID := fmt.Sprintf("%d", typ.ID)
	propID := fmt.Sprintf("%d", prop.ID)

	send := func(typeID, propID string, body interface{}) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/property-values/"+typeID+"/"+propID, body)
		req.SetPathValue("typeID", typeID)
		req.SetPathValue("propertyID", propID)
		w := httptest.NewRecorder()
		h.Add(w, req)
		return w
	}

	// First call creates the record
	w := send(typeID, propID, models.AddPropertyValuesRequest{Values: []string{"красный", "синий"}})
	testutil.AssertStatus(t, w, http.StatusCreated)

	var pv models.PropertyValue
	testutil.AssertJSON(t, w, &pv)
	if len(pv.Values) != 2 {
		t.Errorf("Unexpected record: %+v", pv)
	}

	// Second call appends into the same record
	w = send(typeID, propID, models.AddPropertyValuesRequest{Values: []string{"белый"}})
	testutil.AssertStatus(t, w, http.StatusCreated)
	testutil.AssertJSON(t, w, &pv)
	if len(pv.Values) != 3 {
		t.Errorf("Append did not extend the record: %+v", pv)
	}

	// Any already-present value fails the whole call
	w = send(typeID, propID, models.AddPropertyValuesRequest{Values: []string{"чёрный", "синий"}})
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Unknown parents are 404
	w = send("999", propID, models.AddPropertyValuesRequest{Values: []string{"красный"}})
	testutil.AssertStatus(t, w, http.StatusNotFound)
	w = send(typeID, "999", models.AddPropertyValuesRequest{Values: []string{"красный"}})
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Empty values list is a bad request
	w = send(typeID, propID, models.AddPropertyValuesRequest{})
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListPropertyValues(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewPropertyValueHandler(st)

	typ := testutil.CreateTestType(t, st, "Шайба")
	prop := testutil.CreateTestProperty(t, st, "цвет")

	typeID := fmt.Sprintf("%d", typ.ID)
	propID := fmt.Sprintf("%d", prop.ID)

	list := func() []models.PropertyValue {
		req := testutil.MakeRequest("GET", "/property-values/"+typeID+"/"+propID, nil)
		req.SetPathValue("typeID", typeID)
		req.SetPathValue("propertyID", propID)
		w := httptest.NewRecorder()
		h.List(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var records []models.PropertyValue
		testutil.AssertJSON(t, w, &records)
		return records
	}

	if records := list(); len(records) != 0 {
		t.Errorf("Expected no records, got %v", records)
	}

	testutil.SetTestPropertyValues(t, st, "Шайба", "цвет", []string{"красный"})

	records := list()
	if len(records) != 1 || len(records[0].Values) != 1 {
		t.Errorf("Expected one record with one value, got %v", records)
	}
}

func TestDeletePropertyValueOutcomes(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := handlers.NewPropertyValueHandler(st)

	typ := testutil.CreateTestType(t, st, "Шайба")
	prop := testutil.CreateTestProperty(t, st, "цвет")

	typeID := fmt.Sprintf("%d", typ.ID)
	propID := fmt.Sprintf("%d", prop.ID)

	remove := func(value string) models.MessageResponse {
		req := testutil.MakeRequest("DELETE", "/property-values/"+typeID+"/"+propID+"/"+value, nil)
		req.SetPathValue("typeID", typeID)
		req.SetPathValue("propertyID", propID)
		req.SetPathValue("value", value)
		w := httptest.NewRecorder()
		h.Delete(w, req)
		// All three outcomes answer 200
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.MessageResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	if resp := remove("красный"); !strings.Contains(resp.Message, "no property values found") {
		t.Errorf("Expected record-missing message, got %q", resp.Message)
	}

	testutil.SetTestPropertyValues(t, st, "Шайба", "цвет", []string{"красный"})

	if resp := remove("синий"); !strings.Contains(resp.Message, "not found") {
		t.Errorf("Expected value-missing message, got %q", resp.Message)
	}
	if resp := remove("красный"); !strings.Contains(resp.Message, "removed") {
		t.Errorf("Expected removed message, got %q", resp.Message)
	}
}
