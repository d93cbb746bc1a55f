// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/typematch/typematch/classify"
	"github.com/typematch/typematch/middleware"
	"github.com/typematch/typematch/models"
	"github.com/typematch/typematch/predictor"
	"github.com/typematch/typematch/store"
)

// ClassifyHandler serves the rule-based classifier, the AI classifier and
// the completeness check. pred may be nil when the model artifact failed
// to load; the rule-based path does not depend on it.
type ClassifyHandler struct {
	st   *store.Store
	pred *predictor.Predictor
}

func NewClassifyHandler(st *store.Store, pred *predictor.Predictor) *ClassifyHandler {
	return &ClassifyHandler{st: st, pred: pred}
}

// Classify handles POST /classify
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := classify.ClassifyItem(h.st, req.Properties)
	if err != nil {
		if errors.Is(err, classify.ErrNoTypes) {
			middleware.ErrorResponse(w, http.StatusInternalServerError, "no types defined")
			return
		}
		slog.Error("classification failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Classification failed")
		return
	}

	slog.Info("item classified", "type", resp.Type)
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ClassifyAI handles POST /classify-ai
func (h *ClassifyHandler) ClassifyAI(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pred, err := h.pred.Predict(req.Properties)
	if err != nil {
		if errors.Is(err, predictor.ErrUnavailable) {
			middleware.ErrorResponse(w, http.StatusInternalServerError, "AI model unavailable")
			return
		}
		if errors.Is(err, predictor.ErrEmptyInput) {
			middleware.JSONResponse(w, http.StatusOK, models.ClassifyAIResponse{
				Type:          models.TypeUndetermined,
				Explanation:   []string{"no feature values provided; the model was not invoked"},
				Probabilities: map[string]float64{},
			})
			return
		}
		slog.Error("AI prediction failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "AI prediction failed")
		return
	}

	slog.Info("item classified by model", "type", pred.Label)
	middleware.JSONResponse(w, http.StatusOK, models.ClassifyAIResponse{
		Type: pred.Label,
		Explanation: []string{
			fmt.Sprintf("the model predicted type '%s' from the submitted feature values", pred.Label),
			"per-type probabilities are listed below",
		},
		Probabilities: pred.Probabilities,
	})
}

// CompletenessCheck handles GET /completeness-check
func (h *ClassifyHandler) CompletenessCheck(w http.ResponseWriter, r *http.Request) {
	report, err := classify.CheckCompleteness(h.st)
	if err != nil {
		slog.Error("completeness check failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, report)
}
