package samples

import (
	"context"
	"fmt"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
)

// RunLocation walks a location through its lifecycle for the given agent:
// create, get, re-associate the agent via masked patch, list, delete.
// The parent brand is derived from the agent name.
func RunLocation(ctx context.Context, sc *Scenario, agentName string) error {
	brandName := businesscomms.BrandOfAgent(agentName)
	if brandName == "" {
		return fmt.Errorf("invalid agent name %q, want brands/<id>/agents/<id>", agentName)
	}

	sc.header("Location script for agent - " + agentName)

	sc.header("Create Location")
	location, err := sc.Client.Locations.CreateWithContext(ctx, brandName, SampleLocation(agentName))
	if err != nil {
		return err
	}
	sc.print(location)
	sc.pause()

	sc.header("Get Location Details")
	location, err = sc.Client.Locations.GetWithContext(ctx, location.Name)
	if err != nil {
		return err
	}
	sc.print(location)
	sc.pause()

	// Re-associating with the same agent keeps the patch valid; swap in a
	// different agent name to move the location.
	sc.header("Updating Location")
	location.Agent = agentName
	location, err = sc.Client.Locations.PatchWithContext(ctx, &location, businesscomms.NewFieldMask("agent"))
	if err != nil {
		return err
	}
	sc.print(location)
	sc.pause()

	sc.header("List Locations")
	locations, err := sc.Client.Locations.ListWithContext(ctx, brandName)
	if err != nil {
		return err
	}
	sc.print(locations)
	sc.pause()

	sc.header("Deleting Location")
	if err := sc.Client.Locations.DeleteWithContext(ctx, location.Name); err != nil {
		return err
	}
	sc.print(map[string]string{"deleted": location.Name})
	return nil
}
