package businesscomms

import "context"

// SurveyQuestionsAPI lists the Google-defined template survey questions
// that agents can reference by identifier.
type SurveyQuestionsAPI struct {
	cfg        Config
	httpClient *httpClient
}

func newSurveyQuestionsAPI(cfg Config, httpClient *httpClient) *SurveyQuestionsAPI {
	return &SurveyQuestionsAPI{cfg: cfg, httpClient: httpClient}
}

// List returns the available template questions. One page only.
func (s *SurveyQuestionsAPI) List() (ListSurveyQuestionsResponse, error) {
	return s.ListWithContext(context.Background())
}

// ListWithContext lists template questions with a caller-supplied context.
func (s *SurveyQuestionsAPI) ListWithContext(ctx context.Context) (ListSurveyQuestionsResponse, error) {
	var resp ListSurveyQuestionsResponse
	if err := s.httpClient.getWithContext(ctx, "/v1/surveyQuestions", nil, &resp); err != nil {
		return ListSurveyQuestionsResponse{}, err
	}
	return resp, nil
}
