package diagnosis

import (
	"fmt"
	"strings"

	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/requests"
)

// analysisSystemPrompt is the fixed instruction template for every analysis
// request. The field names in the schema must match models.DiagnosisResult
// exactly; the response validator enforces them after the call.
const analysisSystemPrompt = `You are an emergency medicine triage assistant. Return ONLY a single valid JSON object with this exact schema:
{
  "triageLevel": "critical" | "urgent" | "stable",
  "probableConditions": [{"condition": string, "confidence": number (0-100), "severity": string}],
  "immediateActions": string[],
  "medicationRecommendations": [{"medication": string, "reason": string, "warning": string}],
  "explanation": string
}
Weigh the patient's medical history and existing conditions, their active medications (check for interaction risk before suggesting anything), their known allergies (treat any allergy as critical when recommending a medication), their age, and their blood type. Do not add fields, markdown, or prose outside the JSON object.`

func buildAnalysisUserPrompt(data *requests.PatientData) string {
	return fmt.Sprintf(
		"Patient name: %s\nAge: %d\nBlood type: %s\nAllergies: %s\nActive medications: %s\nKnown conditions: %s\n",
		data.Name,
		*data.Age,
		data.BloodType,
		joinOrNone(data.Allergies),
		joinOrNone(data.Medications),
		joinOrNone(data.Conditions),
	)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none recorded"
	}
	return strings.Join(items, ", ")
}
