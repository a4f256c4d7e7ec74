package samples

import (
	"context"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
)

// RunBrand walks a brand through its lifecycle: create, get, rename via
// masked patch, list, and (unless skipDelete) delete. The first error
// aborts the walkthrough; already-created resources are left in place.
func RunBrand(ctx context.Context, sc *Scenario, skipDelete bool) error {
	sc.header("Create Brand")
	brand, err := sc.Client.Brands.CreateWithContext(ctx, SampleBrand())
	if err != nil {
		return err
	}
	sc.print(brand)

	// A freshly created brand takes a little longer to propagate.
	sc.pauseFor(sc.Delay * 5 / 3)

	sc.header("Get Brand Details")
	brand, err = sc.Client.Brands.GetWithContext(ctx, brand.Name)
	if err != nil {
		return err
	}
	sc.print(brand)
	sc.pause()

	sc.header("Updating Brand")
	brand.DisplayName = updatedBrandDisplayName
	brand, err = sc.Client.Brands.PatchWithContext(ctx, &brand, businesscomms.NewFieldMask("displayName"))
	if err != nil {
		return err
	}
	sc.print(brand)
	sc.pause()

	sc.header("List Brands")
	brands, err := sc.Client.Brands.ListWithContext(ctx)
	if err != nil {
		return err
	}
	sc.print(brands)

	if skipDelete {
		return nil
	}
	sc.pause()

	sc.header("Deleting Brand")
	if err := sc.Client.Brands.DeleteWithContext(ctx, brand.Name); err != nil {
		return err
	}
	sc.print(map[string]string{"deleted": brand.Name})
	return nil
}
