package businesscomms

import (
	"context"
	"fmt"
)

// LocationsAPI manages location resources under a brand.
type LocationsAPI struct {
	cfg        Config
	httpClient *httpClient
}

func newLocationsAPI(cfg Config, httpClient *httpClient) *LocationsAPI {
	return &LocationsAPI{cfg: cfg, httpClient: httpClient}
}

// Create registers a new location under the parent brand. The service
// assigns the resource name; any name set on the payload is stripped.
func (l *LocationsAPI) Create(parent string, location *Location) (Location, error) {
	return l.CreateWithContext(context.Background(), parent, location)
}

// CreateWithContext registers a new location with a caller-supplied context.
func (l *LocationsAPI) CreateWithContext(ctx context.Context, parent string, location *Location) (Location, error) {
	if !IsBrandName(parent) {
		return Location{}, fmt.Errorf("invalid parent brand name %q, want brands/<id>", parent)
	}
	if location == nil {
		return Location{}, fmt.Errorf("location cannot be nil")
	}
	payload := *location
	payload.Name = ""

	var resp Location
	if err := l.httpClient.postJSONWithContext(ctx, "/v1/"+parent+"/locations", payload, nil, &resp); err != nil {
		return Location{}, err
	}
	return resp, nil
}

// Get fetches a location by its brands/<id>/locations/<id> name.
func (l *LocationsAPI) Get(name string) (Location, error) {
	return l.GetWithContext(context.Background(), name)
}

// GetWithContext fetches a location with a caller-supplied context.
func (l *LocationsAPI) GetWithContext(ctx context.Context, name string) (Location, error) {
	if !IsLocationName(name) {
		return Location{}, fmt.Errorf("invalid location name %q, want brands/<id>/locations/<id>", name)
	}
	var resp Location
	if err := l.httpClient.getWithContext(ctx, "/v1/"+name, nil, &resp); err != nil {
		return Location{}, fmt.Errorf("get location %s: %w", name, err)
	}
	return resp, nil
}

// Patch persists the masked fields of an already-retrieved location.
func (l *LocationsAPI) Patch(location *Location, mask FieldMask) (Location, error) {
	return l.PatchWithContext(context.Background(), location, mask)
}

// PatchWithContext persists the masked fields with a caller-supplied context.
func (l *LocationsAPI) PatchWithContext(ctx context.Context, location *Location, mask FieldMask) (Location, error) {
	if location == nil {
		return Location{}, fmt.Errorf("location cannot be nil")
	}
	if !IsLocationName(location.Name) {
		return Location{}, fmt.Errorf("invalid location name %q, want brands/<id>/locations/<id>", location.Name)
	}
	if len(mask) == 0 {
		return Location{}, fmt.Errorf("field mask cannot be empty")
	}
	var resp Location
	if err := l.httpClient.patchJSONWithContext(ctx, "/v1/"+location.Name, location, mask, &resp); err != nil {
		return Location{}, err
	}
	return resp, nil
}

// List returns the locations under a brand. One page only.
func (l *LocationsAPI) List(parent string) (ListLocationsResponse, error) {
	return l.ListWithContext(context.Background(), parent)
}

// ListWithContext lists locations with a caller-supplied context.
func (l *LocationsAPI) ListWithContext(ctx context.Context, parent string) (ListLocationsResponse, error) {
	if !IsBrandName(parent) {
		return ListLocationsResponse{}, fmt.Errorf("invalid parent brand name %q, want brands/<id>", parent)
	}
	var resp ListLocationsResponse
	if err := l.httpClient.getWithContext(ctx, "/v1/"+parent+"/locations", nil, &resp); err != nil {
		return ListLocationsResponse{}, err
	}
	return resp, nil
}

// Delete removes a location unconditionally. Verified locations cannot be
// deleted; the service's error is surfaced as-is.
func (l *LocationsAPI) Delete(name string) error {
	return l.DeleteWithContext(context.Background(), name)
}

// DeleteWithContext removes a location with a caller-supplied context.
func (l *LocationsAPI) DeleteWithContext(ctx context.Context, name string) error {
	if !IsLocationName(name) {
		return fmt.Errorf("invalid location name %q, want brands/<id>/locations/<id>", name)
	}
	if err := l.httpClient.deleteWithContext(ctx, "/v1/"+name, nil); err != nil {
		return fmt.Errorf("delete location %s: %w", name, err)
	}
	return nil
}
