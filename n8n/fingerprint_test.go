package n8n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWorkflow() Workflow {
	typeVersion := float32(1)
	return Workflow{
		Name: "Invoice Processing",
		Nodes: []Node{
			{
				Name:        strPtr("Webhook"),
				Type:        strPtr("n8n-nodes-base.webhook"),
				TypeVersion: &typeVersion,
				Parameters:  map[string]interface{}{"path": "invoice"},
			},
		},
		Connections: map[string]interface{}{},
	}
}

func strPtr(s string) *string { return &s }

func TestFingerprintStableAcrossVolatileFields(t *testing.T) {
	a := sampleWorkflow()
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a.CreatedAt = &t1
	a.UpdatedAt = &t1
	a.VersionId = strPtr("v1")

	b := sampleWorkflow()
	t2 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	b.CreatedAt = &t2
	b.UpdatedAt = &t2
	b.VersionId = strPtr("v2")

	hashA, err := Fingerprint(a)
	require.NoError(t, err)
	hashB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB, "fingerprint must ignore updatedAt/createdAt/versionId")
}

func TestFingerprintChangesWithContent(t *testing.T) {
	a := sampleWorkflow()
	b := sampleWorkflow()
	b.Nodes[0].Parameters["path"] = "different-path"

	hashA, err := Fingerprint(a)
	require.NoError(t, err)
	hashB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.NotEqual(t, hashA, hashB)
}

func TestFingerprintIsDeterministic(t *testing.T) {
	wf := sampleWorkflow()

	first, err := Fingerprint(wf)
	require.NoError(t, err)
	second, err := Fingerprint(wf)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "sha256 hex digest should be 64 characters")
}
