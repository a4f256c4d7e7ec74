package businesscomms

import (
	"context"
	"fmt"
)

// AgentsAPI manages agent resources under a brand.
type AgentsAPI struct {
	cfg        Config
	httpClient *httpClient
}

func newAgentsAPI(cfg Config, httpClient *httpClient) *AgentsAPI {
	return &AgentsAPI{cfg: cfg, httpClient: httpClient}
}

// Create registers a new agent under the parent brand. The service assigns
// the resource name; any name set on the payload is stripped before
// submission.
func (a *AgentsAPI) Create(parent string, agent *Agent) (Agent, error) {
	return a.CreateWithContext(context.Background(), parent, agent)
}

// CreateWithContext registers a new agent with a caller-supplied context.
func (a *AgentsAPI) CreateWithContext(ctx context.Context, parent string, agent *Agent) (Agent, error) {
	if !IsBrandName(parent) {
		return Agent{}, fmt.Errorf("invalid parent brand name %q, want brands/<id>", parent)
	}
	if agent == nil {
		return Agent{}, fmt.Errorf("agent cannot be nil")
	}
	payload := *agent
	payload.Name = ""

	var resp Agent
	if err := a.httpClient.postJSONWithContext(ctx, "/v1/"+parent+"/agents", payload, nil, &resp); err != nil {
		return Agent{}, err
	}
	return resp, nil
}

// Get fetches an agent by its brands/<id>/agents/<id> name.
func (a *AgentsAPI) Get(name string) (Agent, error) {
	return a.GetWithContext(context.Background(), name)
}

// GetWithContext fetches an agent with a caller-supplied context.
func (a *AgentsAPI) GetWithContext(ctx context.Context, name string) (Agent, error) {
	if !IsAgentName(name) {
		return Agent{}, fmt.Errorf("invalid agent name %q, want brands/<id>/agents/<id>", name)
	}
	var resp Agent
	if err := a.httpClient.getWithContext(ctx, "/v1/"+name, nil, &resp); err != nil {
		return Agent{}, fmt.Errorf("get agent %s: %w", name, err)
	}
	return resp, nil
}

// Patch persists the masked fields of an already-retrieved agent. The
// caller must have mutated exactly the fields the mask names before
// calling; the dispatcher does not compute or verify the mask.
func (a *AgentsAPI) Patch(agent *Agent, mask FieldMask) (Agent, error) {
	return a.PatchWithContext(context.Background(), agent, mask)
}

// PatchWithContext persists the masked fields with a caller-supplied context.
func (a *AgentsAPI) PatchWithContext(ctx context.Context, agent *Agent, mask FieldMask) (Agent, error) {
	if agent == nil {
		return Agent{}, fmt.Errorf("agent cannot be nil")
	}
	if !IsAgentName(agent.Name) {
		return Agent{}, fmt.Errorf("invalid agent name %q, want brands/<id>/agents/<id>", agent.Name)
	}
	if len(mask) == 0 {
		return Agent{}, fmt.Errorf("field mask cannot be empty")
	}
	var resp Agent
	if err := a.httpClient.patchJSONWithContext(ctx, "/v1/"+agent.Name, agent, mask, &resp); err != nil {
		return Agent{}, err
	}
	return resp, nil
}

// List returns the agents under a brand. One page only.
func (a *AgentsAPI) List(parent string) (ListAgentsResponse, error) {
	return a.ListWithContext(context.Background(), parent)
}

// ListWithContext lists agents with a caller-supplied context.
func (a *AgentsAPI) ListWithContext(ctx context.Context, parent string) (ListAgentsResponse, error) {
	if !IsBrandName(parent) {
		return ListAgentsResponse{}, fmt.Errorf("invalid parent brand name %q, want brands/<id>", parent)
	}
	var resp ListAgentsResponse
	if err := a.httpClient.getWithContext(ctx, "/v1/"+parent+"/agents", nil, &resp); err != nil {
		return ListAgentsResponse{}, err
	}
	return resp, nil
}

// Delete removes an agent unconditionally. Verified agents cannot be
// deleted; the service's error is surfaced as-is.
func (a *AgentsAPI) Delete(name string) error {
	return a.DeleteWithContext(context.Background(), name)
}

// DeleteWithContext removes an agent with a caller-supplied context.
func (a *AgentsAPI) DeleteWithContext(ctx context.Context, name string) error {
	if !IsAgentName(name) {
		return fmt.Errorf("invalid agent name %q, want brands/<id>/agents/<id>", name)
	}
	if err := a.httpClient.deleteWithContext(ctx, "/v1/"+name, nil); err != nil {
		return fmt.Errorf("delete agent %s: %w", name, err)
	}
	return nil
}
