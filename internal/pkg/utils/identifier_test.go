package utils

import (
	"testing"

	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
)

func TestExtractPatientIdentifier(t *testing.T) {
	t.Run("Bare UUID", func(t *testing.T) {
		patientID, err := ExtractPatientIdentifier("3f2504e0-4f89-41d3-9a0c-0305e82c3301")

		assert.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", patientID, "canonical UUID should pass through unchanged")
	})

	t.Run("Uppercase UUID Is Lowercased", func(t *testing.T) {
		patientID, err := ExtractPatientIdentifier("3F2504E0-4F89-41D3-9A0C-0305E82C3301")

		assert.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", patientID, "UUID should be canonicalized to lowercase")
	})

	t.Run("UUID With Surrounding Whitespace", func(t *testing.T) {
		patientID, err := ExtractPatientIdentifier("  3f2504e0-4f89-41d3-9a0c-0305e82c3301\n")

		assert.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", patientID)
	})

	t.Run("Patient URL", func(t *testing.T) {
		patientID, err := ExtractPatientIdentifier("https://records.example.com/patient/3f2504e0-4f89-41d3-9a0c-0305e82c3301")

		assert.NoError(t, err)
		assert.Equal(t, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", patientID, "UUID should be extracted from the patient URL path")
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := ExtractPatientIdentifier("")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidPatientIdentifier, customErr.ClientMessage)
	})

	t.Run("Not A UUID", func(t *testing.T) {
		_, err := ExtractPatientIdentifier("not-a-uuid")

		assert.Error(t, err)
	})

	t.Run("Undashed UUID Rejected", func(t *testing.T) {
		_, err := ExtractPatientIdentifier("3f2504e04f8941d39a0c0305e82c3301")

		assert.Error(t, err, "UUID without dashes is not the canonical form")
	})

	t.Run("Braced UUID Rejected", func(t *testing.T) {
		_, err := ExtractPatientIdentifier("{3f2504e0-4f89-41d3-9a0c-0305e82c3301}")

		assert.Error(t, err)
	})

	t.Run("URL With Wrong Path Rejected", func(t *testing.T) {
		_, err := ExtractPatientIdentifier("https://records.example.com/practitioner/3f2504e0-4f89-41d3-9a0c-0305e82c3301")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("URL With Trailing Segment Rejected", func(t *testing.T) {
		_, err := ExtractPatientIdentifier("https://records.example.com/patient/3f2504e0-4f89-41d3-9a0c-0305e82c3301/visits")

		assert.Error(t, err)
	})

	t.Run("Relative URL Rejected", func(t *testing.T) {
		_, err := ExtractPatientIdentifier("/patient/3f2504e0-4f89-41d3-9a0c-0305e82c3301")

		assert.Error(t, err, "identifier URLs must be absolute")
	})
}
