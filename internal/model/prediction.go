package model

// Confidence bounds for a suggested code.
const (
	// MaxConfidence caps every score, even for a perfect match.
	MaxConfidence = 0.95
	// FallbackConfidence is the bar a reference entry must beat to be reported.
	FallbackConfidence = 0.3
)

// MatchResult is the suggested code for a piece of diagnosis text.
type MatchResult struct {
	Code       string
	Label      string
	Confidence float64
}

// Fallback is reported when no reference entry scores above FallbackConfidence.
var Fallback = MatchResult{
	Code:       "Z00.00",
	Confidence: FallbackConfidence,
	Label:      "General medical examination",
}

// IsFallback reports whether the result is the default suggestion.
func (r MatchResult) IsFallback() bool {
	return r == Fallback
}

// PredictRequest is the request body of the prediction service contract
// (POST /predict-icd). No such service ships with this tool.
type PredictRequest struct {
	Diagnosis string `json:"diagnosis"`
}

// PredictResponse is the response body of the prediction service contract.
type PredictResponse struct {
	Code       string  `json:"code"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// NewPredictResponse converts a match into the service response shape.
func NewPredictResponse(r MatchResult) PredictResponse {
	return PredictResponse{
		Code:       r.Code,
		Label:      r.Label,
		Confidence: r.Confidence,
	}
}
