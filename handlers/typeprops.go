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

// TypePropertyHandler manages the required-property links of a type. The
// routes are keyed by the parent type id.
type TypePropertyHandler struct {
	st *store.Store
}

func NewTypePropertyHandler(st *store.Store) *TypePropertyHandler {
	return &TypePropertyHandler{st: st}
}

// List handles GET /type-properties/{id}
// Returns the property names required for classifying the type.
func (h *TypePropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveType(w, r)
	if !ok {
		return
	}

	names, err := h.st.ListTypeProperties(t.Name)
	if err != nil {
		slog.Error("failed to list type properties", "type", t.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, names)
}

// Add handles POST /type-properties/{id}
func (h *TypePropertyHandler) Add(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveType(w, r)
	if !ok {
		return
	}

	var req models.AddTypePropertyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.PropertyName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "property_name is required")
		return
	}

	tp, err := h.st.AddTypeProperty(t.Name, req.PropertyName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, store.ErrConflict) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to add type property", "type", t.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add type property")
		return
	}

	slog.Info("type property added", "type", t.Name, "property", tp.PropertyName)
	middleware.JSONResponse(w, http.StatusCreated, tp)
}

// Delete handles DELETE /type-properties/{id}/{property}
func (h *TypePropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveType(w, r)
	if !ok {
		return
	}
	propertyName := r.PathValue("property")

	if err := h.st.DeleteTypeProperty(t.Name, propertyName); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("failed to delete type property", "type", t.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete type property")
		return
	}

	slog.Info("type property deleted", "type", t.Name, "property", propertyName)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "type property deleted"})
}

// resolveType translates the {id} path value into a type, writing the
// error response itself when the id is bad or unknown.
func (h *TypePropertyHandler) resolveType(w http.ResponseWriter, r *http.Request) (models.Type, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid type id")
		return models.Type{}, false
	}

	t, err := h.st.GetTypeByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("type with id %d not found", id))
			return models.Type{}, false
		}
		slog.Error("failed to query type", "type_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Type{}, false
	}
	return t, true
}
