package businesscomms

import (
	"errors"
	"testing"
)

func TestLocationsLifecycle(t *testing.T) {
	svc := newFakeService()
	server := newTestServer(t, svc)
	defer server.Close()
	client := newTestClient(t, server.URL)

	brand, err := client.Brands.Create(&Brand{DisplayName: "Test Brand"})
	if err != nil {
		t.Fatalf("create brand: %v", err)
	}
	agent, err := client.Agents.Create(brand.Name, &Agent{DisplayName: "Test Agent"})
	if err != nil {
		t.Fatalf("create agent: %v", err)
	}

	created, err := client.Locations.Create(brand.Name, &Location{
		Agent:   agent.Name,
		PlaceID: "ChIJj61dQgK6j4AR4GeTYWZsKWw",
		ConversationalSettings: LocaleMap[ConversationalSetting]{
			{Locale: "en", Value: ConversationalSetting{
				WelcomeMessage: &WelcomeMessage{Text: "Welcome to this location!"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	if !IsLocationName(created.Name) {
		t.Fatalf("expected a service-assigned location name, got %q", created.Name)
	}
	if created.PlaceID != "ChIJj61dQgK6j4AR4GeTYWZsKWw" {
		t.Fatalf("unexpected place id: %s", created.PlaceID)
	}

	got, err := client.Locations.Get(created.Name)
	if err != nil {
		t.Fatalf("get location: %v", err)
	}
	if got.Agent != agent.Name {
		t.Fatalf("unexpected agent association: %s", got.Agent)
	}

	got.Agent = agent.Name
	updated, err := client.Locations.Patch(&got, NewFieldMask("agent"))
	if err != nil {
		t.Fatalf("patch location: %v", err)
	}
	if updated.Agent != agent.Name {
		t.Fatalf("patch did not keep the agent association: %s", updated.Agent)
	}
	if updated.PlaceID != created.PlaceID {
		t.Fatalf("patch disturbed place id: %s", updated.PlaceID)
	}

	list, err := client.Locations.List(brand.Name)
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(list.Locations) != 1 || list.Locations[0].Name != created.Name {
		t.Fatalf("unexpected location list: %+v", list.Locations)
	}

	if err := client.Locations.Delete(created.Name); err != nil {
		t.Fatalf("delete location: %v", err)
	}
	_, err = client.Locations.Get(created.Name)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestLocationsValidation(t *testing.T) {
	svc := newFakeService()
	server := newTestServer(t, svc)
	defer server.Close()
	client := newTestClient(t, server.URL)

	if _, err := client.Locations.Create("bogus", &Location{}); err == nil {
		t.Fatalf("expected invalid parent error")
	}
	if _, err := client.Locations.Create("brands/b1", nil); err == nil {
		t.Fatalf("expected nil location error")
	}
	if _, err := client.Locations.Get("brands/b1/agents/a1"); err == nil {
		t.Fatalf("expected invalid location name error")
	}
	if _, err := client.Locations.Patch(&Location{Name: "brands/b1/locations/l1"}, nil); err == nil {
		t.Fatalf("expected empty mask error")
	}
	if err := client.Locations.Delete("locations/l1"); err == nil {
		t.Fatalf("expected invalid name error on delete")
	}
}
