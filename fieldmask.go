package businesscomms

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// FieldMask is an ordered set of dotted field paths scoping a partial
// update. Paths use the wire schema's camelCase field names, e.g.
// "businessMessagesAgent.conversationalSettings.en".
//
// The mask is supplied by the caller and must name exactly the fields that
// were mutated in the submitted payload; the patch dispatcher never derives
// or verifies it. DiffPaths exists for callers that want to check
// consistency themselves.
type FieldMask []string

// NewFieldMask builds a mask from paths, dropping duplicates and empties
// while preserving first-seen order.
func NewFieldMask(paths ...string) FieldMask {
	var mask FieldMask
	for _, p := range paths {
		mask.Add(p)
	}
	return mask
}

// Add appends a path unless it is empty or already present.
func (m *FieldMask) Add(path string) {
	if path == "" || m.Contains(path) {
		return
	}
	*m = append(*m, path)
}

// Contains reports whether the exact path is in the mask.
func (m FieldMask) Contains(path string) bool {
	for _, p := range m {
		if p == path {
			return true
		}
	}
	return false
}

// Covers reports whether path equals a mask entry or sits beneath one.
func (m FieldMask) Covers(path string) bool {
	for _, p := range m {
		if path == p || strings.HasPrefix(path, p+".") {
			return true
		}
	}
	return false
}

// Paths returns a copy of the mask entries.
func (m FieldMask) Paths() []string {
	return append([]string(nil), m...)
}

// String renders the mask in the comma-separated form the API accepts.
func (m FieldMask) String() string {
	return strings.Join(m, ",")
}

// DiffPaths returns the sorted dotted paths of fields that differ between
// two representations of the same resource. The comparison happens at the
// JSON level, so locale map keys appear as path segments and repeated
// fields are treated as single leaves.
func DiffPaths(before, after any) ([]string, error) {
	b, err := toJSONValue(before)
	if err != nil {
		return nil, fmt.Errorf("encode before: %w", err)
	}
	a, err := toJSONValue(after)
	if err != nil {
		return nil, fmt.Errorf("encode after: %w", err)
	}
	var paths []string
	diffValue("", b, a, &paths)
	sort.Strings(paths)
	return paths, nil
}

func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func diffValue(prefix string, before, after any, paths *[]string) {
	beforeMap, beforeOK := before.(map[string]any)
	afterMap, afterOK := after.(map[string]any)
	if beforeOK && afterOK {
		keys := map[string]struct{}{}
		for k := range beforeMap {
			keys[k] = struct{}{}
		}
		for k := range afterMap {
			keys[k] = struct{}{}
		}
		for k := range keys {
			diffValue(joinPath(prefix, k), beforeMap[k], afterMap[k], paths)
		}
		return
	}
	if !reflect.DeepEqual(before, after) {
		*paths = append(*paths, prefix)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
