// Package businesscomms re-exports the module root for callers that want
// the package name spelled out in the import path.
//
// Most code should import the module root
// "github.com/google-business-communications/businesscomms-golang" directly.
package businesscomms
