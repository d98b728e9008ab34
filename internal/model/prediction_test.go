package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultReferences(t *testing.T) {
	refs := DefaultReferences()
	require.Len(t, refs, 6)

	seen := make(map[string]bool)
	for _, ref := range refs {
		assert.NotEmpty(t, ref.Label)
		assert.NotEmpty(t, ref.Code)
		assert.False(t, seen[ref.Code], "duplicate code %s", ref.Code)
		seen[ref.Code] = true
	}
}

func TestDefaultReferences_ReturnsCopy(t *testing.T) {
	refs := DefaultReferences()
	refs[0].Code = "XXX"

	assert.Equal(t, "E11.9", DefaultReferences()[0].Code)
}

func TestMatchResult_IsFallback(t *testing.T) {
	assert.True(t, Fallback.IsFallback())
	assert.False(t, MatchResult{Code: "I10", Label: "Essential hypertension", Confidence: 0.95}.IsFallback())
	// Same code with a different score is not the fallback.
	assert.False(t, MatchResult{Code: "Z00.00", Label: "General medical examination", Confidence: 0.5}.IsFallback())
}

func TestPredictResponse_JSON(t *testing.T) {
	resp := NewPredictResponse(MatchResult{Code: "E11.9", Label: "Type 2 diabetes mellitus", Confidence: 0.95})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"E11.9","label":"Type 2 diabetes mellitus","confidence":0.95}`, string(data))

	var req PredictRequest
	require.NoError(t, json.Unmarshal([]byte(`{"diagnosis":"asthma"}`), &req))
	assert.Equal(t, "asthma", req.Diagnosis)
}
