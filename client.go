package businesscomms

// Client is the main entrypoint for the Business Communications management API.
type Client struct {
	Config Config
	auth   Auth
	http   *httpClient

	Brands          *BrandsAPI
	Agents          *AgentsAPI
	Locations       *LocationsAPI
	SurveyQuestions *SurveyQuestionsAPI
}

// NewClient constructs a Client using parameters or environment fallbacks.
func NewClient(credentialsFile, baseURL string, timeoutSeconds float64, maxRetries int) (*Client, error) {
	cfg, err := LoadConfig(credentialsFile, baseURL, timeoutSeconds, maxRetries)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithParams constructs a Client from structured configuration parameters.
func NewClientWithParams(params ConfigParams) (*Client, error) {
	cfg, err := LoadConfigWithParams(params)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig builds a Client from a fully parsed Config.
func NewClientWithConfig(cfg Config) (*Client, error) {
	auth, err := newAuth(cfg)
	if err != nil {
		return nil, err
	}
	httpClient := newHTTPClient(cfg, auth)

	return &Client{
		Config:          cfg,
		auth:            auth,
		http:            httpClient,
		Brands:          newBrandsAPI(cfg, httpClient),
		Agents:          newAgentsAPI(cfg, httpClient),
		Locations:       newLocationsAPI(cfg, httpClient),
		SurveyQuestions: newSurveyQuestionsAPI(cfg, httpClient),
	}, nil
}

// Close releases HTTP resources.
func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}
	c.http.close()
}
