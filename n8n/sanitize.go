package n8n

// Sanitize returns a copy of workflow with server-owned and
// non-portable fields stripped, suitable for uploading to a remote
// instance as a new or updated workflow. The input is not modified: Nodes
// and node Credentials are rebuilt, while other maps and slices
// (Connections, node Parameters and the like) are shared with the input.
// Unlike CleanWorkflow, which
// trims metadata for on-disk storage while keeping enough to round-trip,
// Sanitize also strips node-level identifiers that are only meaningful
// within the n8n instance that minted them (node ids, webhook ids, and
// node credential ids), so the same workflow file can be pushed to a
// different instance without carrying over stale references.
func Sanitize(workflow Workflow) Workflow {
	sanitized := workflow

	sanitized.Id = nil
	sanitized.CreatedAt = nil
	sanitized.UpdatedAt = nil
	sanitized.VersionId = nil
	sanitized.Shared = nil
	sanitized.Meta = nil
	sanitized.Active = nil
	sanitized.Tags = nil
	sanitized.PinData = nil
	sanitized.TriggerCount = nil
	sanitized.IsArchived = nil

	if len(workflow.Nodes) > 0 {
		nodes := make([]Node, len(workflow.Nodes))
		for i, node := range workflow.Nodes {
			nodes[i] = sanitizeNode(node)
		}
		sanitized.Nodes = nodes
	}

	return sanitized
}

func sanitizeNode(node Node) Node {
	sanitized := node
	sanitized.Id = nil
	sanitized.WebhookId = nil
	sanitized.CreatedAt = nil
	sanitized.UpdatedAt = nil

	if len(node.Credentials) > 0 {
		creds := make(map[string]NodeCredential, len(node.Credentials))
		for credType, cred := range node.Credentials {
			creds[credType] = NodeCredential{
				Name: cred.Name,
			}
		}
		sanitized.Credentials = creds
	}

	return sanitized
}
