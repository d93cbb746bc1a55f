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

type PropertyHandler struct {
	st *store.Store
}

func NewPropertyHandler(st *store.Store) *PropertyHandler {
	return &PropertyHandler{st: st}
}

// List handles GET /properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.st.ListProperties()
	if err != nil {
		slog.Error("failed to list properties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, props)
}

// Create handles POST /properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	p, err := h.st.CreateProperty(req.Name)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to create property", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	slog.Info("property created", "property_id", p.ID, "name", p.Name)
	middleware.JSONResponse(w, http.StatusCreated, p)
}

// Delete handles DELETE /properties/{id}
// Removes the property together with its value catalog, requirement links
// and value sets.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := h.st.DeleteProperty(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("failed to delete property", "property_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}

	slog.Info("property deleted", "property_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "property deleted"})
}

// ListPossibleValues handles GET /possible-values/{property}
func (h *PropertyHandler) ListPossibleValues(w http.ResponseWriter, r *http.Request) {
	propertyName := r.PathValue("property")

	values, err := h.st.ListPossibleValues(propertyName)
	if err != nil {
		slog.Error("failed to list possible values", "property", propertyName, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, values)
}

// AddPossibleValue handles POST /possible-values/{property}
func (h *PropertyHandler) AddPossibleValue(w http.ResponseWriter, r *http.Request) {
	propertyName := r.PathValue("property")

	var req models.AddPossibleValueRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Value == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "value is required")
		return
	}

	v, err := h.st.AddPossibleValue(propertyName, req.Value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, store.ErrConflict) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to add possible value", "property", propertyName, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add possible value")
		return
	}

	slog.Info("possible value added", "property", propertyName, "value", v.Value)
	middleware.JSONResponse(w, http.StatusCreated, v)
}

// DeletePossibleValue handles DELETE /possible-values/{property}/{value}
func (h *PropertyHandler) DeletePossibleValue(w http.ResponseWriter, r *http.Request) {
	propertyName := r.PathValue("property")
	value := r.PathValue("value")

	if err := h.st.DeletePossibleValue(propertyName, value); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("failed to delete possible value", "property", propertyName, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete possible value")
		return
	}

	slog.Info("possible value deleted", "property", propertyName, "value", value)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "possible value deleted"})
}
