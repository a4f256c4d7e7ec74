package businesscomms

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// fakeService is an in-memory stand-in for the Business Communications API.
// Resources are stored as decoded JSON objects so masked patches can be
// applied at the wire level, nested locale keys included.
type fakeService struct {
	mu        sync.Mutex
	nextID    int
	resources map[string]map[string]any
	templates []TemplateSurveyQuestion
}

func newFakeService() *fakeService {
	return &fakeService{
		resources: map[string]map[string]any{},
		templates: []TemplateSurveyQuestion{
			{
				Name:            "surveyQuestions/template_question_id_1",
				QuestionContent: "Did your chat with the assistant resolve your issue?",
				QuestionType:    "GOOGLE_STANDARD_QUESTION",
			},
			{
				Name:            "surveyQuestions/template_question_id_2",
				QuestionContent: "How easy was it to get the help you needed?",
				QuestionType:    "GOOGLE_STANDARD_QUESTION",
			},
		},
	}
}

func (s *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeGoogleError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing bearer token")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/")
	s.mu.Lock()
	defer s.mu.Unlock()

	if path == "surveyQuestions" && r.Method == http.MethodGet {
		writeJSON(w, ListSurveyQuestionsResponse{SurveyQuestions: s.templates})
		return
	}

	parts := strings.Split(path, "/")
	switch {
	// Collection endpoints: brands, brands/<id>/agents, brands/<id>/locations.
	case len(parts) == 1 && parts[0] == "brands",
		len(parts) == 3 && parts[0] == "brands" && (parts[2] == "agents" || parts[2] == "locations"):
		s.handleCollection(w, r, path, parts)
	// Resource endpoints: brands/<id> and brands/<id>/{agents,locations}/<id>.
	case len(parts) == 2 && parts[0] == "brands",
		len(parts) == 4 && parts[0] == "brands" && (parts[2] == "agents" || parts[2] == "locations"):
		s.handleResource(w, r, path)
	default:
		writeGoogleError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("unknown path %s", r.URL.Path))
	}
}

func (s *fakeService) handleCollection(w http.ResponseWriter, r *http.Request, path string, parts []string) {
	switch r.Method {
	case http.MethodPost:
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeGoogleError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed body")
			return
		}
		if name, ok := payload["name"]; ok && name != "" {
			writeGoogleError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "name must not be set on create")
			return
		}
		s.nextID++
		var name string
		if len(parts) == 1 {
			name = fmt.Sprintf("brands/%d", s.nextID)
		} else {
			name = fmt.Sprintf("%s/%s/%d", parts[0]+"/"+parts[1], parts[2], s.nextID)
		}
		payload["name"] = name
		s.resources[name] = payload
		writeJSON(w, payload)
	case http.MethodGet:
		var items []map[string]any
		for name, res := range s.resources {
			if s.collectionOf(name) == path {
				items = append(items, res)
			}
		}
		key := parts[len(parts)-1] // brands, agents or locations
		writeJSON(w, map[string]any{key: items})
	default:
		writeGoogleError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "unsupported method")
	}
}

func (s *fakeService) handleResource(w http.ResponseWriter, r *http.Request, name string) {
	stored, ok := s.resources[name]
	if !ok {
		writeGoogleError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("%s not found", name))
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, stored)
	case http.MethodDelete:
		delete(s.resources, name)
		writeJSON(w, map[string]any{})
	case http.MethodPatch:
		mask := r.URL.Query().Get("updateMask")
		if mask == "" {
			writeGoogleError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "updateMask is required")
			return
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeGoogleError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed body")
			return
		}
		for _, path := range strings.Split(mask, ",") {
			if val, ok := getJSONPath(payload, path); ok {
				setJSONPath(stored, path, val)
			} else {
				deleteJSONPath(stored, path)
			}
		}
		writeJSON(w, stored)
	default:
		writeGoogleError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "unsupported method")
	}
}

// collectionOf maps brands/1 to brands, brands/1/agents/2 to brands/1/agents.
func (s *fakeService) collectionOf(name string) string {
	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return ""
	}
	return name[:idx]
}

// seed installs a resource directly, bypassing the create flow.
func (s *fakeService) seed(name string, resource any) {
	data, _ := json.Marshal(resource)
	var m map[string]any
	_ = json.Unmarshal(data, &m)
	m["name"] = name
	s.mu.Lock()
	s.resources[name] = m
	s.mu.Unlock()
}

// stored returns a deep copy of a stored resource decoded into out.
func (s *fakeService) stored(name string, out any) bool {
	s.mu.Lock()
	res, ok := s.resources[name]
	s.mu.Unlock()
	if !ok {
		return false
	}
	data, _ := json.Marshal(res)
	_ = json.Unmarshal(data, out)
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeGoogleError(w http.ResponseWriter, status int, canonical, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": message,
			"status":  canonical,
		},
	})
}

func getJSONPath(m map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	var current any = m
	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func setJSONPath(m map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

func deleteJSONPath(m map[string]any, path string) {
	segments := strings.Split(path, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			return
		}
		current = next
	}
	delete(current, segments[len(segments)-1])
}
