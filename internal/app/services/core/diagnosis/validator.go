package diagnosis

import (
	"strings"

	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/goccy/go-json"
)

// rawDiagnosisResult mirrors models.DiagnosisResult with pointer collections
// so a missing field is distinguishable from an empty one.
type rawDiagnosisResult struct {
	TriageLevel               string                            `json:"triageLevel"`
	ProbableConditions        *[]models.ProbableCondition       `json:"probableConditions"`
	ImmediateActions          *[]string                         `json:"immediateActions"`
	MedicationRecommendations []models.MedicationRecommendation `json:"medicationRecommendations"`
	Explanation               string                            `json:"explanation"`
}

// ValidateAnalysisResponse parses the raw model text and enforces the
// DiagnosisResult shape. Shape only: no clinical plausibility checks. Malformed
// output is rejected, never coerced into a default diagnosis.
func ValidateAnalysisResponse(rawResponse string) (*models.DiagnosisResult, error) {
	trimmed := stripMarkdownFence(strings.TrimSpace(rawResponse))
	if trimmed == "" {
		return nil, exceptions.ErrAIAnalysisNotParseable(nil)
	}

	raw := new(rawDiagnosisResult)
	if err := json.Unmarshal([]byte(trimmed), raw); err != nil {
		return nil, exceptions.ErrAIAnalysisNotParseable(err)
	}

	triageLevel := models.TriageLevel(raw.TriageLevel)
	if !triageLevel.Valid() {
		return nil, exceptions.ErrAIAnalysisBadShape("triageLevel must be one of critical, urgent, stable")
	}
	if raw.ProbableConditions == nil {
		return nil, exceptions.ErrAIAnalysisBadShape("probableConditions is missing")
	}
	if raw.ImmediateActions == nil {
		return nil, exceptions.ErrAIAnalysisBadShape("immediateActions is missing")
	}
	for _, condition := range *raw.ProbableConditions {
		if condition.Confidence < 0 || condition.Confidence > 100 {
			return nil, exceptions.ErrAIAnalysisBadShape("confidence must be within [0,100]")
		}
	}

	return &models.DiagnosisResult{
		TriageLevel:               triageLevel,
		ProbableConditions:        *raw.ProbableConditions,
		ImmediateActions:          *raw.ImmediateActions,
		MedicationRecommendations: raw.MedicationRecommendations,
		Explanation:               raw.Explanation,
	}, nil
}

// stripMarkdownFence removes one surrounding ```json fence when the model
// wraps its output despite the JSON response-format hint.
func stripMarkdownFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
