package calculator

import (
	"energylab/internal/form"
	"energylab/internal/runner"
)

// CatalogueResponse is the JSON response for GET /labs.
type CatalogueResponse struct {
	Calculators []runner.Calculator `json:"calculators"`
}

// BatchStep names one calculator and the raw form values to feed it.
type BatchStep struct {
	Calculator string      `json:"calculator"`
	Values     form.Values `json:"values"`
}

// BatchRequest is the JSON body for POST /labs/batch.
type BatchRequest struct {
	Steps []BatchStep `json:"steps"`
}

// BatchResult records one executed step. A rejected step keeps its rejection
// text in Text and names the reason in Kind.
type BatchResult struct {
	runner.Outcome
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// BatchResponse is the JSON response for POST /labs/batch.
type BatchResponse struct {
	Steps    []BatchResult `json:"steps"`
	Rejected int           `json:"rejected"`
}
