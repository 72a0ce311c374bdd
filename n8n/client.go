package n8n

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// defaultRequestTimeout bounds every outgoing call. A timed-out call is
// reported to the caller as a transport error and never alters state.
const defaultRequestTimeout = 10 * time.Second

// ErrNotFound is returned by UpdateWorkflow and DeleteWorkflow when the
// server responds 404: the workflow does not exist. GetWorkflow treats the
// same response as a legitimate "absent" value instead (nil, nil), since a
// missing fetch target isn't an error to the sync engine.
var ErrNotFound = errors.New("workflow not found")

// Client is a simple client for interacting with n8n API
type Client struct {
	baseURL       string
	apiToken      string
	basicAuthUser string
	basicAuthPass string
	client        *http.Client
	logger        *zap.SugaredLogger
}

func newLogger() *zap.SugaredLogger {
	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		zapLogger, err := cfg.Build()
		if err != nil {
			zapLogger, _ = zap.NewProduction()
		}

		return zapLogger.Sugar().Named("n8n-api")
	}

	zapLogger, _ := zap.NewProduction()
	return zapLogger.Sugar().Named("n8n-api")
}

// NewClient creates a new n8n client authenticating with an API key.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  baseURL + "/api/v1",
		apiToken: apiToken,
		client:   &http.Client{Timeout: defaultRequestTimeout},
		logger:   newLogger(),
	}
}

// NewClientWithBasicAuth creates a new n8n client authenticating with HTTP
// Basic Auth instead of an API key. Exactly one authentication scheme is
// used per client; a client built this way never sets X-N8N-API-KEY.
func NewClientWithBasicAuth(baseURL, user, password string) *Client {
	return &Client{
		baseURL:       baseURL + "/api/v1",
		basicAuthUser: user,
		basicAuthPass: password,
		client:        &http.Client{Timeout: defaultRequestTimeout},
		logger:        newLogger(),
	}
}

// setAuthHeader applies whichever authentication scheme this client was
// constructed with. API key takes precedence if a client were ever
// misconfigured with both.
func (c *Client) setAuthHeader(req *http.Request) {
	if c.apiToken != "" {
		req.Header.Set("X-N8N-API-KEY", c.apiToken)
		return
	}

	if c.basicAuthUser != "" || c.basicAuthPass != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(c.basicAuthUser + ":" + c.basicAuthPass))
		req.Header.Set("Authorization", "Basic "+credentials)
	}
}

// logDebug logs a debug message
func (c *Client) logDebug(format string, args ...interface{}) {
	c.logger.Debugf(format, args...)
}

// GetWorkflows fetches workflows from the n8n API
func (c *Client) GetWorkflows() (*WorkflowList, error) {
	baseURL := fmt.Sprintf("%s/workflows", c.baseURL)
	const pageLimit = 100

	var all []Workflow
	seenCursors := make(map[string]struct{})
	cursor := ""

	for {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(pageLimit))
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		requestURL := baseURL
		if len(params) > 0 {
			requestURL = fmt.Sprintf("%s?%s", baseURL, params.Encode())
		}

		req, err := http.NewRequest(http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}

		c.setAuthHeader(req)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		func() {
			defer func() {
				if err := resp.Body.Close(); err != nil {
					c.logger.Warnf("Error closing response body: %v", err)
				}
			}()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				err = fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
				return
			}

			var result WorkflowList
			if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
				err = decodeErr
				return
			}

			if result.Data != nil && len(*result.Data) > 0 {
				all = append(all, *result.Data...)
			}

			if result.NextCursor == nil || *result.NextCursor == "" {
				cursor = ""
				return
			}

			next := *result.NextCursor
			if _, exists := seenCursors[next]; exists {
				err = fmt.Errorf("pagination cursor repeated: %s", next)
				return
			}
			seenCursors[next] = struct{}{}
			cursor = next
		}()

		if err != nil {
			return nil, err
		}

		if cursor == "" {
			break
		}
	}

	return &WorkflowList{Data: &all}, nil
}

// ActivateWorkflow activates a workflow by ID
func (c *Client) ActivateWorkflow(id string) (*Workflow, error) {
	url := fmt.Sprintf("%s/workflows/%s/activate", c.baseURL, id)

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var result Workflow
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeactivateWorkflow deactivates a workflow by ID
func (c *Client) DeactivateWorkflow(id string) (*Workflow, error) {
	url := fmt.Sprintf("%s/workflows/%s/deactivate", c.baseURL, id)

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var result Workflow
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateWorkflow creates a new workflow
func (c *Client) CreateWorkflow(workflow *Workflow) (*Workflow, error) {
	url := fmt.Sprintf("%s/workflows", c.baseURL)

	workflowCopy := *workflow
	workflowCopy.Id = nil
	workflowCopy.Active = nil
	workflowCopy.CreatedAt = nil
	workflowCopy.UpdatedAt = nil
	workflowCopy.Tags = nil

	body, err := json.Marshal(workflowCopy)
	if err != nil {
		return nil, fmt.Errorf("error marshaling workflow: %w", err)
	}

	c.logDebug("CREATE WORKFLOW REQUEST: %s", string(body))

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, body, "", "  "); err == nil {
		c.logDebug("CREATE WORKFLOW FORMATTED JSON:\n%s", prettyJSON.String())
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	resp.Body = io.NopCloser(bytes.NewBuffer(respBody))

	c.logDebug("CREATE/UPDATE WORKFLOW RESPONSE (Status: %d): %s", resp.StatusCode, string(respBody))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, respBody)
	}

	var w Workflow
	if err := json.NewDecoder(bytes.NewBuffer(respBody)).Decode(&w); err != nil {
		return nil, err
	}

	return &w, nil
}

// UpdateWorkflow updates an existing workflow by its ID
func (c *Client) UpdateWorkflow(id string, workflow *Workflow) (*Workflow, error) {
	url := fmt.Sprintf("%s/workflows/%s", c.baseURL, id)

	workflowCopy := *workflow
	workflowCopy.Id = nil
	workflowCopy.Active = nil
	workflowCopy.CreatedAt = nil
	workflowCopy.UpdatedAt = nil
	workflowCopy.Tags = nil

	body, err := json.Marshal(workflowCopy)
	if err != nil {
		return nil, fmt.Errorf("error marshaling workflow: %w", err)
	}

	c.logDebug("UPDATE WORKFLOW REQUEST (ID: %s): %s", id, string(body))

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, body, "", "  "); err == nil {
		c.logDebug("UPDATE WORKFLOW FORMATTED JSON (ID: %s):\n%s", id, prettyJSON.String())
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var w Workflow
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, err
	}

	return &w, nil
}

// GetWorkflow fetches a single workflow by its ID. A 404 is not treated as
// an error: it means the workflow is absent, which the sync engine needs
// to distinguish from a transport failure, so it is reported as (nil, nil).
func (c *Client) GetWorkflow(id string) (*Workflow, error) {
	url := fmt.Sprintf("%s/workflows/%s", c.baseURL, id)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var workflow Workflow
	if err := json.NewDecoder(resp.Body).Decode(&workflow); err != nil {
		return nil, err
	}

	return &workflow, nil
}

// DeleteWorkflow deletes a workflow by ID
func (c *Client) DeleteWorkflow(id string) error {
	url := fmt.Sprintf("%s/workflows/%s", c.baseURL, id)

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	c.setAuthHeader(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	return nil
}

// CreateCredential creates a new credential
func (c *Client) CreateCredential(credential *Credential) (*CreateCredentialResponse, error) {
	url := fmt.Sprintf("%s/credentials", c.baseURL)

	payload := Credential{
		Name: credential.Name,
		Type: credential.Type,
		Data: credential.Data,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling credential: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var created CreateCredentialResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteCredential deletes a credential by ID
func (c *Client) DeleteCredential(id string) (*Credential, error) {
	url := fmt.Sprintf("%s/credentials/%s", c.baseURL, id)

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var credential Credential
	if err := json.NewDecoder(resp.Body).Decode(&credential); err != nil {
		return nil, err
	}

	return &credential, nil
}

// GetCredentialSchema fetches the schema for a credential type
func (c *Client) GetCredentialSchema(credentialTypeName string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/credentials/schema/%s", c.baseURL, credentialTypeName)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var schema map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&schema); err != nil {
		return nil, err
	}

	return schema, nil
}

// TransferCredential transfers a credential to another project
func (c *Client) TransferCredential(id string, destinationProjectId string) error {
	url := fmt.Sprintf("%s/credentials/%s/transfer", c.baseURL, id)

	body, err := json.Marshal(PutCredentialsIdTransferJSONBody{
		DestinationProjectId: destinationProjectId,
	})
	if err != nil {
		return fmt.Errorf("error marshaling transfer request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	return nil
}

// GetExecutions fetches workflow executions from the n8n API
// workflowID is optional - if provided, only executions for that workflow will be returned
// includeData is optional - if provided as true, execution data will be included in the response
// status is optional - if provided, only executions with that status will be returned (error, success, waiting)
// limit is optional - if provided, limits the number of executions returned
// cursor is optional - if provided, retrieves the next page of results
func (c *Client) GetExecutions(workflowID string, includeData bool, status string, limit int, cursor string) (*ExecutionList, error) {
	baseURL := fmt.Sprintf("%s/executions", c.baseURL)

	params := url.Values{}
	if workflowID != "" {
		params.Add("workflowId", workflowID)
	}
	if includeData {
		params.Add("includeData", "true")
	}
	if status != "" {
		params.Add("status", status)
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		params.Add("cursor", cursor)
	}

	requestURL := baseURL
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", baseURL, params.Encode())
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var flexibleResult ExecutionListWithFlexibleIDs
	if err := json.NewDecoder(resp.Body).Decode(&flexibleResult); err != nil {
		return nil, fmt.Errorf("failed to decode execution list: %v", err)
	}

	result := flexibleResult.ToExecutionList()
	return result, nil
}

// GetExecutionById fetches a specific execution by its ID
// includeData is optional - if provided as true, execution data will be included in the response
func (c *Client) GetExecutionById(executionID string, includeData bool) (*Execution, error) {
	baseURL := fmt.Sprintf("%s/executions/%s", c.baseURL, executionID)

	params := url.Values{}
	if includeData {
		params.Add("includeData", "true")
	}

	requestURL := baseURL
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", baseURL, params.Encode())
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var flexibleResult ExecutionWithFlexibleIDs
	if err := json.NewDecoder(resp.Body).Decode(&flexibleResult); err != nil {
		return nil, fmt.Errorf("failed to decode execution: %v", err)
	}

	result := toExecution(flexibleResult)
	return &result, nil
}

// GetWorkflowTags fetches the tags of a workflow by its ID
func (c *Client) GetWorkflowTags(id string) (WorkflowTags, error) {
	url := fmt.Sprintf("%s/workflows/%s/tags", c.baseURL, id)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var tags WorkflowTags
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// UpdateWorkflowTags updates the tags of a workflow by its ID
func (c *Client) UpdateWorkflowTags(id string, tagIds TagIds) (WorkflowTags, error) {
	url := fmt.Sprintf("%s/workflows/%s/tags", c.baseURL, id)

	jsonBody, err := json.Marshal(tagIds)
	if err != nil {
		return nil, err
	}

	c.logDebug("UPDATE WORKFLOW TAGS REQUEST (ID: %s): %s", id, string(jsonBody))

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, jsonBody, "", "  "); err == nil {
		c.logDebug("UPDATE WORKFLOW TAGS FORMATTED JSON (ID: %s):\n%s", id, prettyJSON.String())
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var tags WorkflowTags
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// CreateTag creates a new tag in n8n
func (c *Client) CreateTag(tagName string) (*Tag, error) {
	url := fmt.Sprintf("%s/tags", c.baseURL)

	tagRequest := map[string]string{"name": tagName}
	jsonBody, err := json.Marshal(tagRequest)
	if err != nil {
		return nil, err
	}

	c.logDebug("CREATE TAG REQUEST: %s", string(jsonBody))

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var tag Tag
	if err := json.NewDecoder(resp.Body).Decode(&tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

// GetTags fetches all tags from n8n
func (c *Client) GetTags() (*TagList, error) {
	url := fmt.Sprintf("%s/tags", c.baseURL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, body)
	}

	var result TagList
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
