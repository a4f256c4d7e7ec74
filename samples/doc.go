// Package samples contains the command-line walkthroughs for the
// Business Communications management API: brand, agent, and location
// lifecycles plus the template survey question listing.
//
// Each walkthrough is a plain function taking a Scenario, so tests can
// inject a fake service, capture the console trace, and drop the
// propagation delays.
package samples
