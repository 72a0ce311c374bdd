package n8n

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// volatileFingerprintFields are server-owned fields that change on every
// save without reflecting a meaningful edit to the workflow itself. They
// are excluded before hashing so that round-tripping a workflow through
// the API does not register as a drift.
var volatileFingerprintFields = []string{"updatedAt", "createdAt", "versionId", "shared"}

// Fingerprint computes a stable content hash for a workflow. Two workflows
// that differ only in the fields listed in volatileFingerprintFields hash
// to the same value.
//
// Workflow is marshaled to JSON and back into a map rather than hashed
// directly so the volatile fields can be stripped regardless of whether
// they were present, and so key ordering is normalized: encoding/json
// sorts map keys on marshal, which gives canonical output for free.
func Fingerprint(workflow Workflow) (string, error) {
	raw, err := json.Marshal(workflow)
	if err != nil {
		return "", fmt.Errorf("failed to marshal workflow for fingerprinting: %w", err)
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return "", fmt.Errorf("failed to normalize workflow for fingerprinting: %w", err)
	}

	for _, field := range volatileFingerprintFields {
		delete(asMap, field)
	}

	canonical, err := json.Marshal(asMap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal canonical workflow: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
