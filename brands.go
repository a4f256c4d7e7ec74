package businesscomms

import (
	"context"
	"fmt"
)

// BrandsAPI manages brand resources.
type BrandsAPI struct {
	cfg        Config
	httpClient *httpClient
}

func newBrandsAPI(cfg Config, httpClient *httpClient) *BrandsAPI {
	return &BrandsAPI{cfg: cfg, httpClient: httpClient}
}

// Create registers a new brand. The service assigns the resource name; any
// name set on the payload is stripped before submission.
func (b *BrandsAPI) Create(brand *Brand) (Brand, error) {
	return b.CreateWithContext(context.Background(), brand)
}

// CreateWithContext registers a new brand with a caller-supplied context.
func (b *BrandsAPI) CreateWithContext(ctx context.Context, brand *Brand) (Brand, error) {
	if brand == nil {
		return Brand{}, fmt.Errorf("brand cannot be nil")
	}
	payload := *brand
	payload.Name = ""

	var resp Brand
	if err := b.httpClient.postJSONWithContext(ctx, "/v1/brands", payload, nil, &resp); err != nil {
		return Brand{}, err
	}
	return resp, nil
}

// Get fetches a brand by its brands/<id> name.
func (b *BrandsAPI) Get(name string) (Brand, error) {
	return b.GetWithContext(context.Background(), name)
}

// GetWithContext fetches a brand with a caller-supplied context.
func (b *BrandsAPI) GetWithContext(ctx context.Context, name string) (Brand, error) {
	if !IsBrandName(name) {
		return Brand{}, fmt.Errorf("invalid brand name %q, want brands/<id>", name)
	}
	var resp Brand
	if err := b.httpClient.getWithContext(ctx, "/v1/"+name, nil, &resp); err != nil {
		return Brand{}, fmt.Errorf("get brand %s: %w", name, err)
	}
	return resp, nil
}

// Patch persists the masked fields of an already-retrieved brand. The
// mask must name exactly the fields the caller mutated; unmasked fields in
// the payload are ignored by the service.
func (b *BrandsAPI) Patch(brand *Brand, mask FieldMask) (Brand, error) {
	return b.PatchWithContext(context.Background(), brand, mask)
}

// PatchWithContext persists the masked fields with a caller-supplied context.
func (b *BrandsAPI) PatchWithContext(ctx context.Context, brand *Brand, mask FieldMask) (Brand, error) {
	if brand == nil {
		return Brand{}, fmt.Errorf("brand cannot be nil")
	}
	if !IsBrandName(brand.Name) {
		return Brand{}, fmt.Errorf("invalid brand name %q, want brands/<id>", brand.Name)
	}
	if len(mask) == 0 {
		return Brand{}, fmt.Errorf("field mask cannot be empty")
	}
	var resp Brand
	if err := b.httpClient.patchJSONWithContext(ctx, "/v1/"+brand.Name, brand, mask, &resp); err != nil {
		return Brand{}, err
	}
	return resp, nil
}

// List returns the brands for the configured project. One page only;
// NextPageToken is surfaced but not followed.
func (b *BrandsAPI) List() (ListBrandsResponse, error) {
	return b.ListWithContext(context.Background())
}

// ListWithContext lists brands with a caller-supplied context.
func (b *BrandsAPI) ListWithContext(ctx context.Context) (ListBrandsResponse, error) {
	var resp ListBrandsResponse
	if err := b.httpClient.getWithContext(ctx, "/v1/brands", nil, &resp); err != nil {
		return ListBrandsResponse{}, err
	}
	return resp, nil
}

// Delete removes a brand unconditionally. The service rejects deletion of
// brands with verified agents; that error is surfaced, not interpreted.
func (b *BrandsAPI) Delete(name string) error {
	return b.DeleteWithContext(context.Background(), name)
}

// DeleteWithContext removes a brand with a caller-supplied context.
func (b *BrandsAPI) DeleteWithContext(ctx context.Context, name string) error {
	if !IsBrandName(name) {
		return fmt.Errorf("invalid brand name %q, want brands/<id>", name)
	}
	if err := b.httpClient.deleteWithContext(ctx, "/v1/"+name, nil); err != nil {
		return fmt.Errorf("delete brand %s: %w", name, err)
	}
	return nil
}
