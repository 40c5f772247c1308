package models

// TriageLevel is the three-way severity classification attached to a
// diagnosis result.
type TriageLevel string

const (
	TriageLevelCritical TriageLevel = "critical"
	TriageLevelUrgent   TriageLevel = "urgent"
	TriageLevelStable   TriageLevel = "stable"
)

func (t TriageLevel) Valid() bool {
	switch t {
	case TriageLevelCritical, TriageLevelUrgent, TriageLevelStable:
		return true
	}
	return false
}

type ProbableCondition struct {
	Condition  string  `json:"condition"`
	Confidence float64 `json:"confidence"`
	Severity   string  `json:"severity"`
}

type MedicationRecommendation struct {
	Medication string `json:"medication"`
	Reason     string `json:"reason"`
	Warning    string `json:"warning"`
}

// DiagnosisResult is the structured shape the model must produce. Field names
// are part of the endpoint contract; the validator enforces them before the
// result enters internal use.
type DiagnosisResult struct {
	TriageLevel               TriageLevel                `json:"triageLevel"`
	ProbableConditions        []ProbableCondition        `json:"probableConditions"`
	ImmediateActions          []string                   `json:"immediateActions"`
	MedicationRecommendations []MedicationRecommendation `json:"medicationRecommendations,omitempty"`
	Explanation               string                     `json:"explanation"`
}
