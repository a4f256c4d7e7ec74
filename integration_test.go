//go:build integration

package businesscomms

import (
	"os"
	"testing"
)

// Integration tests hit the live API and need real service account
// credentials:
//
//	BC_CREDENTIALS_FILE=/path/to/key.json go test -tags=integration ./...
//
// They create and delete real resources under the configured project.

func integrationClient(t *testing.T) *Client {
	t.Helper()
	if os.Getenv("BC_CREDENTIALS_FILE") == "" {
		t.Skip("BC_CREDENTIALS_FILE not set")
	}
	client, err := NewClient("", "", 0, 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestIntegrationBrandLifecycle(t *testing.T) {
	client := integrationClient(t)

	brand, err := client.Brands.Create(&Brand{DisplayName: "Test Brand"})
	if err != nil {
		t.Fatalf("create brand: %v", err)
	}
	defer func() {
		if err := client.Brands.Delete(brand.Name); err != nil {
			t.Errorf("cleanup brand %s: %v", brand.Name, err)
		}
	}()

	got, err := client.Brands.Get(brand.Name)
	if err != nil {
		t.Fatalf("get brand: %v", err)
	}
	got.DisplayName = "New Test Brand Name"
	updated, err := client.Brands.Patch(&got, NewFieldMask("displayName"))
	if err != nil {
		t.Fatalf("patch brand: %v", err)
	}
	if updated.DisplayName != "New Test Brand Name" {
		t.Fatalf("unexpected display name: %s", updated.DisplayName)
	}
}

func TestIntegrationListSurveyQuestions(t *testing.T) {
	client := integrationClient(t)

	resp, err := client.SurveyQuestions.List()
	if err != nil {
		t.Fatalf("list survey questions: %v", err)
	}
	if len(resp.SurveyQuestions) == 0 {
		t.Fatalf("expected at least one template question")
	}
}
