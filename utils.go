package businesscomms

import (
	"regexp"
	"strings"
)

var (
	brandNamePattern    = regexp.MustCompile(`^brands/[^/\s]+$`)
	agentNamePattern    = regexp.MustCompile(`^brands/[^/\s]+/agents/[^/\s]+$`)
	locationNamePattern = regexp.MustCompile(`^brands/[^/\s]+/locations/[^/\s]+$`)
)

// IsBrandName reports whether s has the brands/<id> shape.
func IsBrandName(s string) bool {
	return brandNamePattern.MatchString(s)
}

// IsAgentName reports whether s has the brands/<id>/agents/<id> shape.
func IsAgentName(s string) bool {
	return agentNamePattern.MatchString(s)
}

// IsLocationName reports whether s has the brands/<id>/locations/<id> shape.
func IsLocationName(s string) bool {
	return locationNamePattern.MatchString(s)
}

// BrandOfAgent derives the parent brand name by truncating an agent name at
// the /agents/ segment. Returns "" when the name has no such segment.
func BrandOfAgent(agentName string) string {
	idx := strings.Index(agentName, "/agents/")
	if idx < 0 {
		return ""
	}
	return agentName[:idx]
}
