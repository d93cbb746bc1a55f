// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/typematch/typematch/middleware"
	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/store"
)

type TypeHandler struct {
	st *store.Store
}

func NewTypeHandler(st *store.Store) *TypeHandler {
	return &TypeHandler{st: st}
}

// List handles GET /types
func (h *TypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.st.ListTypes()
	if err != nil {
		slog.Error("failed to list types", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, types)
}

// Create handles POST /types
func (h *TypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTypeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	t, err := h.st.CreateType(req.Name)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to create type", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create type")
		return
	}

	slog.Info("type created", "type_id", t.ID, "name", t.Name)
	middleware.JSONResponse(w, http.StatusCreated, t)
}

// Delete handles DELETE /types/{id}
// Removes the type together with its requirement links and value sets.
func (h *TypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid type id")
		return
	}

	if err := h.st.DeleteType(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("failed to delete type", "type_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete type")
		return
	}

	slog.Info("type deleted", "type_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "type deleted"})
}
