// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

// ErrUnavailable is returned when the model artifact failed to load at
// process start.
var ErrUnavailable = errors.New("AI model unavailable")

// ErrEmptyInput marks an item with every categorical feature empty; the
// model is not invoked for such input.
var ErrEmptyInput = errors.New("no feature values provided")

// Predictor wraps a statistical model exported as a JSON artifact. The
// rule engine has no dependency on it; it serves the classify-ai endpoint
// only.
type Predictor struct {
	// Features is the fixed, ordered set of categorical feature names the
	// model was trained on. Unset features default to "".
	Features []string `json:"features"`
	// Labels are the type names the model can predict.
	Labels []string `json:"labels"`
	// Weights maps "feature=value" one-hot terms to per-label scores.
	Weights map[string][]float64 `json:"weights"`
	// Bias is the per-label intercept.
	Bias []float64 `json:"bias"`
}

// Prediction is the predictor's output shape: a label plus a probability
// distribution over all labels.
type Prediction struct {
	Label         string
	Probabilities map[string]float64
}

// Load reads a model artifact from disk. Call once at process start; a
// failed load leaves the predictor unavailable for the process lifetime.
func Load(path string) (*Predictor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var p Predictor
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}

	if len(p.Features) == 0 || len(p.Labels) == 0 {
		return nil, errors.New("model artifact missing features or labels")
	}
	if len(p.Bias) != len(p.Labels) {
		return nil, fmt.Errorf("model artifact bias length %d does not match %d labels", len(p.Bias), len(p.Labels))
	}
	for term, scores := range p.Weights {
		if len(scores) != len(p.Labels) {
			return nil, fmt.Errorf("model artifact term %q has %d scores for %d labels", term, len(scores), len(p.Labels))
		}
	}

	return &p, nil
}

// Predict scores the item against every label and returns the best label
// with a softmax probability distribution. Item keys outside the trained
// feature set are ignored; missing features count as "".
func (p *Predictor) Predict(item map[string]string) (Prediction, error) {
	if p == nil {
		return Prediction{}, ErrUnavailable
	}

	empty := true
	for _, feature := range p.Features {
		if strings.TrimSpace(item[feature]) != "" {
			empty = false
			break
		}
	}
	if empty {
		return Prediction{}, ErrEmptyInput
	}

	scores := make([]float64, len(p.Labels))
	copy(scores, p.Bias)
	for _, feature := range p.Features {
		term := feature + "=" + item[feature]
		weights, ok := p.Weights[term]
		if !ok {
			// unknown value: one-hot encoding with handle_unknown=ignore
			continue
		}
		for i, w := range weights {
			scores[i] += w
		}
	}

	probs := softmax(scores)

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}

	dist := make(map[string]float64, len(p.Labels))
	for i, label := range p.Labels {
		dist[label] = probs[i]
	}

	return Prediction{Label: p.Labels[best], Probabilities: dist}, nil
}

func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
