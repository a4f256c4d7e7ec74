// Package businesscomms is a Go client for the Business Communications
// management API: brands, agents, locations, and template survey
// questions for the Business Messages platform.
//
// # Installation
//
//	go get github.com/google-business-communications/businesscomms-golang
//
// # Quick Start
//
// Create a client from a service account key and walk a brand resource
// through its lifecycle:
//
//	package main
//
//	import (
//		"log"
//
//		businesscomms "github.com/google-business-communications/businesscomms-golang"
//	)
//
//	func main() {
//		client, err := businesscomms.NewClient(
//			"./resources/bc-agent-service-account-credentials.json",
//			"", // baseURL (optional)
//			0,  // timeout (0 = default 60s)
//			0,  // retries (0 = default 3)
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Close()
//
//		brand, err := client.Brands.Create(&businesscomms.Brand{DisplayName: "Test Brand"})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		brand.DisplayName = "New Test Brand Name"
//		brand, err = client.Brands.Patch(&brand, businesscomms.NewFieldMask("displayName"))
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("updated brand: %s (%s)", brand.DisplayName, brand.Name)
//	}
//
// # Partial updates
//
// Patch calls take a FieldMask naming the dotted paths of the fields the
// caller mutated; the service ignores everything outside the mask. The
// mask is an explicit caller contract: the client never derives it from
// the payload. DiffPaths can compute the changed paths for callers that
// want to double-check their masks.
//
// # Core Features
//
//   - Brand, agent, and location management (create, get, patch, list, delete)
//   - Field-mask scoped partial updates
//   - Locale-keyed conversational settings and custom survey configuration
//   - Service account authentication (golang.org/x/oauth2)
//   - Context-aware operations for cancellation support
//   - Automatic retry logic with exponential backoff
//   - Request/response hooks for monitoring
//
// # Environment Variables
//
//   - BC_CREDENTIALS_FILE: Path to a service account key file
//   - BC_BASE_URL: Optional API base URL (defaults to https://businesscommunications.googleapis.com)
//   - BC_TIMEOUT: Optional request timeout (defaults to 60s)
//   - BC_MAX_RETRIES: Optional max retries (defaults to 3)
//
// # Samples
//
// The samples package and the bcsamples command reproduce the classic
// command-line walkthroughs (brand, agent, location, template questions)
// on top of this client.
package businesscomms
