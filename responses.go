package businesscomms

// List responses carry one page of results. The client surfaces a single
// page per call; NextPageToken is reported but never followed.

type ListBrandsResponse struct {
	Brands        []Brand `json:"brands"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

type ListAgentsResponse struct {
	Agents        []Agent `json:"agents"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

type ListLocationsResponse struct {
	Locations     []Location `json:"locations"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

type ListSurveyQuestionsResponse struct {
	SurveyQuestions []TemplateSurveyQuestion `json:"surveyQuestions"`
	NextPageToken   string                   `json:"nextPageToken,omitempty"`
}
