package n8n

import "time"

// Workflow represents an n8n workflow and its full definition.
//
// This mirrors the shape the n8n REST API returns: a stable opaque Id once
// the workflow is persisted, a mutable Name, the node graph (Nodes,
// Connections), Settings, optional StaticData, optional Tags, and a clutch
// of server-owned metadata fields (CreatedAt, UpdatedAt, VersionId, Shared,
// Meta, TriggerCount, IsArchived) that the sync engine treats as volatile.
type Workflow struct {
	Id          *string                `json:"id,omitempty"`
	Name        string                 `json:"name"`
	Active      *bool                  `json:"active,omitempty"`
	Nodes       []Node                 `json:"nodes"`
	Connections map[string]interface{} `json:"connections"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	StaticData  map[string]interface{} `json:"staticData,omitempty"`
	PinData     map[string]interface{} `json:"pinData,omitempty"`
	Tags        *WorkflowTags          `json:"tags,omitempty"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
	CreatedAt   *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time             `json:"updatedAt,omitempty"`
	VersionId   *string                `json:"versionId,omitempty"`
	Shared      []interface{}          `json:"shared,omitempty"`
	TriggerCount *float32              `json:"triggerCount,omitempty"`
	IsArchived  *bool                  `json:"isArchived,omitempty"`
}

// Node represents a single node in a workflow's graph.
type Node struct {
	Id          *string                       `json:"id,omitempty"`
	Name        *string                       `json:"name,omitempty"`
	Type        *string                       `json:"type,omitempty"`
	TypeVersion *float32                      `json:"typeVersion,omitempty"`
	Position    []float32                     `json:"position,omitempty"`
	Parameters  map[string]interface{}        `json:"parameters,omitempty"`
	Credentials map[string]NodeCredential      `json:"credentials,omitempty"`
	WebhookId   *string                       `json:"webhookId,omitempty"`
	CreatedAt   *time.Time                    `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time                    `json:"updatedAt,omitempty"`
}

// NodeCredential is a single credential reference attached to a node,
// keyed by credential type in Node.Credentials.
type NodeCredential struct {
	Id   *string `json:"id,omitempty"`
	Name string  `json:"name"`
}

// Tag is a label that can be attached to a workflow.
type Tag struct {
	Id        *string    `json:"id,omitempty"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// WorkflowTags is the collection of tags attached to a workflow.
type WorkflowTags []Tag

// TagIds is the payload shape for PUT /workflows/{id}/tags.
type TagIds []struct {
	Id string `json:"id"`
}

// TagList is the response shape for GET /tags.
type TagList struct {
	Data       *[]Tag  `json:"data,omitempty"`
	NextCursor *string `json:"nextCursor,omitempty"`
}

// WorkflowList is the response shape for GET /workflows.
type WorkflowList struct {
	Data       *[]Workflow `json:"data,omitempty"`
	NextCursor *string     `json:"nextCursor,omitempty"`
}

// Credential is the request payload for creating a credential.
type Credential struct {
	Id   *string                 `json:"id,omitempty"`
	Name string                  `json:"name"`
	Type string                  `json:"type"`
	Data *map[string]interface{} `json:"data,omitempty"`
}

// CreateCredentialResponse is what the API returns after creating a credential.
type CreateCredentialResponse struct {
	Id        *string    `json:"id,omitempty"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// PutCredentialsIdTransferJSONBody is the payload for transferring a
// credential to another project.
type PutCredentialsIdTransferJSONBody struct {
	DestinationProjectId string `json:"destinationProjectId"`
}

// ExecutionMode describes how an execution was triggered.
type ExecutionMode string

const (
	ExecutionModeCli        ExecutionMode = "cli"
	ExecutionModeError      ExecutionMode = "error"
	ExecutionModeInternal   ExecutionMode = "internal"
	ExecutionModeManual     ExecutionMode = "manual"
	ExecutionModeRetry      ExecutionMode = "retry"
	ExecutionModeTrigger    ExecutionMode = "trigger"
	ExecutionModeWebhook    ExecutionMode = "webhook"
	ExecutionModeIntegrated ExecutionMode = "integrated"
)

// Execution is a single run of a workflow.
type Execution struct {
	Id             *float32                 `json:"id,omitempty"`
	WorkflowId     *float32                 `json:"workflowId,omitempty"`
	Mode           *ExecutionMode           `json:"mode,omitempty"`
	Finished       *bool                    `json:"finished,omitempty"`
	RetryOf        *float32                 `json:"retryOf,omitempty"`
	RetrySuccessId *float32                 `json:"retrySuccessId,omitempty"`
	StartedAt      *time.Time               `json:"startedAt,omitempty"`
	StoppedAt      *time.Time               `json:"stoppedAt,omitempty"`
	WaitTill       *time.Time               `json:"waitTill,omitempty"`
	CustomData     *map[string]interface{}  `json:"customData,omitempty"`
	Data           *map[string]interface{}  `json:"data,omitempty"`
}

// ExecutionList is the response shape for GET /executions.
type ExecutionList struct {
	Data       *[]Execution `json:"data,omitempty"`
	NextCursor *string      `json:"nextCursor,omitempty"`
}
