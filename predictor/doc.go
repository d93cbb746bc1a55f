// Copyright (c) 2025 the typematch authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package predictor serves the classify-ai endpoint from a separately
trained statistical model.

The model is trained elsewhere and exported as a JSON artifact holding the
ordered categorical feature list, the label set, per "feature=value"
one-hot weights and a per-label bias. Load reads the artifact once at
process start:

	pred, err := predictor.Load(cfg.ModelPath)

A nil *Predictor is a valid "unavailable" state: Predict returns
ErrUnavailable, which the handler maps to an internal error. An item with
every feature empty returns ErrEmptyInput without invoking the model; the
handler answers with the undetermined sentinel.

The rule-based classification path has no dependency on this package.
*/
package predictor
