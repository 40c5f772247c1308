package utils

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/google/uuid"
)

var (
	uuidPattern           = regexp.MustCompile(constvars.RegexUUID)
	patientURLPathPattern = regexp.MustCompile(constvars.RegexPatientURLPath)
)

// ExtractPatientIdentifier turns heterogeneous scan/paste input (bare UUID,
// patient URL, NFC payload text) into one canonical lowercase patient UUID.
// It either resolves fully or rejects; there is no best-effort partial result,
// and every rejection surfaces the same error.
func ExtractPatientIdentifier(rawInput string) (string, error) {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return "", exceptions.ErrInvalidPatientIdentifier(nil)
	}

	if id, ok := parseCanonicalUUID(trimmed); ok {
		return id, nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", exceptions.ErrInvalidPatientIdentifier(err)
	}

	match := patientURLPathPattern.FindStringSubmatch(parsed.Path)
	if match == nil {
		return "", exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidPatientIdentifier, constvars.ErrDevIdentifierBadURLShape)
	}

	if id, ok := parseCanonicalUUID(match[1]); ok {
		return id, nil
	}
	return "", exceptions.ErrInvalidPatientIdentifier(nil)
}

func parseCanonicalUUID(candidate string) (string, bool) {
	if !uuidPattern.MatchString(candidate) {
		return "", false
	}
	parsed, err := uuid.Parse(candidate)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
