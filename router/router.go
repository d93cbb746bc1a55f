// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/typematch/typematch/handlers"
	"github.com/typematch/typematch/middleware"
	"github.com/typematch/typematch/predictor"
	"github.com/typematch/typematch/store"
)

func NewRouter(st *store.Store, pred *predictor.Predictor) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	typeHandler := handlers.NewTypeHandler(st)
	propertyHandler := handlers.NewPropertyHandler(st)
	typePropertyHandler := handlers.NewTypePropertyHandler(st)
	propertyValueHandler := handlers.NewPropertyValueHandler(st)
	classifyHandler := handlers.NewClassifyHandler(st, pred)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Classification
	mux.HandleFunc("POST /classify", middleware.WithLogging(classifyHandler.Classify))
	mux.HandleFunc("POST /classify-ai", middleware.WithLogging(classifyHandler.ClassifyAI))
	mux.HandleFunc("GET /completeness-check", middleware.WithLogging(classifyHandler.CompletenessCheck))

	// Types
	mux.HandleFunc("GET /types", middleware.WithLogging(typeHandler.List))
	mux.HandleFunc("POST /types", middleware.WithLogging(typeHandler.Create))
	mux.HandleFunc("DELETE /types/{id}", middleware.WithLogging(typeHandler.Delete))

	// Properties
	mux.HandleFunc("GET /properties", middleware.WithLogging(propertyHandler.List))
	mux.HandleFunc("POST /properties", middleware.WithLogging(propertyHandler.Create))
	mux.HandleFunc("DELETE /properties/{id}", middleware.WithLogging(propertyHandler.Delete))

	// Possible values (catalog per property)
	mux.HandleFunc("GET /possible-values/{property}", middleware.WithLogging(propertyHandler.ListPossibleValues))
	mux.HandleFunc("POST /possible-values/{property}", middleware.WithLogging(propertyHandler.AddPossibleValue))
	mux.HandleFunc("DELETE /possible-values/{property}/{value}", middleware.WithLogging(propertyHandler.DeletePossibleValue))

	// Type properties (requirement links per type)
	mux.HandleFunc("GET /type-properties/{id}", middleware.WithLogging(typePropertyHandler.List))
	mux.HandleFunc("POST /type-properties/{id}", middleware.WithLogging(typePropertyHandler.Add))
	mux.HandleFunc("DELETE /type-properties/{id}/{property}", middleware.WithLogging(typePropertyHandler.Delete))

	// Property values (allowed value sets per type/property pair)
	mux.HandleFunc("GET /property-values/{typeID}/{propertyID}", middleware.WithLogging(propertyValueHandler.List))
	mux.HandleFunc("POST /property-values/{typeID}/{propertyID}", middleware.WithLogging(propertyValueHandler.Add))
	mux.HandleFunc("DELETE /property-values/{typeID}/{propertyID}/{value}", middleware.WithLogging(propertyValueHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("typematch API v1"))
	})

	return mux
}
