package diagnosis

import (
	"testing"

	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
)

const validAnalysisJSON = `{
	"triageLevel": "urgent",
	"probableConditions": [
		{"condition": "Anaphylaxis", "confidence": 82.5, "severity": "high"}
	],
	"immediateActions": ["Administer epinephrine", "Call emergency services"],
	"medicationRecommendations": [
		{"medication": "Epinephrine", "reason": "Suspected anaphylaxis", "warning": "Monitor heart rate"}
	],
	"explanation": "Rapid onset after known allergen exposure."
}`

func TestValidateAnalysisResponse(t *testing.T) {
	t.Run("Valid Response", func(t *testing.T) {
		result, err := ValidateAnalysisResponse(validAnalysisJSON)

		assert.NoError(t, err)
		assert.Equal(t, models.TriageLevelUrgent, result.TriageLevel)
		assert.Len(t, result.ProbableConditions, 1)
		assert.Equal(t, "Anaphylaxis", result.ProbableConditions[0].Condition)
		assert.Equal(t, 82.5, result.ProbableConditions[0].Confidence)
		assert.Len(t, result.ImmediateActions, 2)
	})

	t.Run("Fenced Response", func(t *testing.T) {
		result, err := ValidateAnalysisResponse("```json\n" + validAnalysisJSON + "\n```")

		assert.NoError(t, err, "a markdown fence around the JSON should be tolerated")
		assert.Equal(t, models.TriageLevelUrgent, result.TriageLevel)
	})

	t.Run("Empty Response", func(t *testing.T) {
		_, err := ValidateAnalysisResponse("")

		assertParseFailure(t, err)
	})

	t.Run("Non JSON Response", func(t *testing.T) {
		_, err := ValidateAnalysisResponse("The patient likely has anaphylaxis.")

		assertParseFailure(t, err)
	})

	t.Run("Unknown Triage Level", func(t *testing.T) {
		_, err := ValidateAnalysisResponse(`{
			"triageLevel": "severe",
			"probableConditions": [],
			"immediateActions": []
		}`)

		assertParseFailure(t, err)
	})

	t.Run("Missing Probable Conditions", func(t *testing.T) {
		_, err := ValidateAnalysisResponse(`{
			"triageLevel": "stable",
			"immediateActions": []
		}`)

		assertParseFailure(t, err)
	})

	t.Run("Missing Immediate Actions", func(t *testing.T) {
		_, err := ValidateAnalysisResponse(`{
			"triageLevel": "stable",
			"probableConditions": []
		}`)

		assertParseFailure(t, err)
	})

	t.Run("Empty Collections Accepted", func(t *testing.T) {
		result, err := ValidateAnalysisResponse(`{
			"triageLevel": "stable",
			"probableConditions": [],
			"immediateActions": []
		}`)

		assert.NoError(t, err, "present-but-empty collections satisfy the shape")
		assert.Empty(t, result.ProbableConditions)
		assert.Empty(t, result.ImmediateActions)
	})

	t.Run("Confidence Out Of Range", func(t *testing.T) {
		_, err := ValidateAnalysisResponse(`{
			"triageLevel": "critical",
			"probableConditions": [{"condition": "Sepsis", "confidence": 140, "severity": "high"}],
			"immediateActions": ["Call emergency services"]
		}`)

		assertParseFailure(t, err)
	})

	t.Run("Non Numeric Confidence", func(t *testing.T) {
		_, err := ValidateAnalysisResponse(`{
			"triageLevel": "critical",
			"probableConditions": [{"condition": "Sepsis", "confidence": "high", "severity": "high"}],
			"immediateActions": []
		}`)

		assertParseFailure(t, err)
	})
}

func assertParseFailure(t *testing.T, err error) {
	t.Helper()

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode, "malformed model output maps to a server-side failure")
	assert.Equal(t, constvars.ErrClientFailedToParseAIAnalysis, customErr.ClientMessage)
}
