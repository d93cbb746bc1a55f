// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/typematch/typematch/middleware"
	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/store"
)

// PropertyValueHandler manages the per (type, property) allowed value
// sets. Routes are keyed by the parent type and property ids.
type PropertyValueHandler struct {
	st *store.Store
}

func NewPropertyValueHandler(st *store.Store) *PropertyValueHandler {
	return &PropertyValueHandler{st: st}
}

// List handles GET /property-values/{typeID}/{propertyID}
// Returns zero or one records; at most one exists per pair.
func (h *PropertyValueHandler) List(w http.ResponseWriter, r *http.Request) {
	t, p, ok := h.resolvePair(w, r)
	if !ok {
		return
	}

	records := []models.PropertyValue{}
	pv, err := h.st.GetPropertyValues(t.Name, p.Name)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to query property values", "type", t.Name, "property", p.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err == nil {
		records = append(records, pv)
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// Add handles POST /property-values/{typeID}/{propertyID}
// Upsert: appends into the existing record for the pair, or creates one.
func (h *PropertyValueHandler) Add(w http.ResponseWriter, r *http.Request) {
	t, p, ok := h.resolvePair(w, r)
	if !ok {
		return
	}

	var req models.AddPropertyValuesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Values) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "values is required")
		return
	}

	pv, err := h.st.AppendPropertyValues(t.Name, p.Name, req.Values)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to append property values", "type", t.Name, "property", p.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add property values")
		return
	}

	slog.Info("property values added", "type", t.Name, "property", p.Name, "count", len(req.Values))
	middleware.JSONResponse(w, http.StatusCreated, pv)
}

// Delete handles DELETE /property-values/{typeID}/{propertyID}/{value}
// A missing record or value is a structured outcome, not an error.
func (h *PropertyValueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, p, ok := h.resolvePair(w, r)
	if !ok {
		return
	}
	value := r.PathValue("value")

	outcome, err := h.st.RemovePropertyValue(t.Name, p.Name, value)
	if err != nil {
		slog.Error("failed to remove property value", "type", t.Name, "property", p.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove property value")
		return
	}

	var msg string
	switch outcome {
	case store.ValueRemoved:
		slog.Info("property value removed", "type", t.Name, "property", p.Name, "value", value)
		msg = fmt.Sprintf("value '%s' removed from property values", value)
	case store.RecordMissing:
		msg = fmt.Sprintf("no property values found for type '%s' and property '%s'", t.Name, p.Name)
	case store.ValueMissing:
		msg = fmt.Sprintf("value '%s' not found in property values", value)
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: msg})
}

// resolvePair translates the {typeID} and {propertyID} path values,
// writing the error response itself on failure.
func (h *PropertyValueHandler) resolvePair(w http.ResponseWriter, r *http.Request) (models.Type, models.Property, bool) {
	typeID, err := strconv.ParseInt(r.PathValue("typeID"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid type id")
		return models.Type{}, models.Property{}, false
	}
	propertyID, err := strconv.ParseInt(r.PathValue("propertyID"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid property id")
		return models.Type{}, models.Property{}, false
	}

	t, err := h.st.GetTypeByID(typeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("type with id %d not found", typeID))
			return models.Type{}, models.Property{}, false
		}
		slog.Error("failed to query type", "type_id", typeID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Type{}, models.Property{}, false
	}

	p, err := h.st.GetPropertyByID(propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("property with id %d not found", propertyID))
			return models.Type{}, models.Property{}, false
		}
		slog.Error("failed to query property", "property_id", propertyID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Type{}, models.Property{}, false
	}

	return t, p, true
}
