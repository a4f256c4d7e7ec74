package businesscomms

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userAgent = "businesscomms-golang/0.1.0"

// Scope is the single OAuth scope the management API accepts.
const Scope = "https://www.googleapis.com/auth/businesscommunications"

// Auth exchanges service account credentials for bearer tokens and
// produces the default request headers.
type Auth struct {
	cfg    Config
	tokens oauth2.TokenSource
}

func newAuth(cfg Config) (Auth, error) {
	source := cfg.TokenSource
	if source == nil {
		keyData := cfg.CredentialsJSON
		if len(keyData) == 0 {
			if cfg.CredentialsFile == "" {
				return Auth{}, ErrMissingCredentials
			}
			data, err := os.ReadFile(cfg.CredentialsFile)
			if err != nil {
				return Auth{}, fmt.Errorf("read credentials file: %w", err)
			}
			keyData = data
		}
		jwtConfig, err := google.JWTConfigFromJSON(keyData, Scope)
		if err != nil {
			return Auth{}, fmt.Errorf("parse service account key: %w", err)
		}
		source = jwtConfig.TokenSource(context.Background())
	}
	return Auth{cfg: cfg, tokens: oauth2.ReuseTokenSource(nil, source)}, nil
}

// Headers returns default headers including a fresh bearer token.
func (a Auth) Headers() (http.Header, error) {
	token, err := a.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("fetch access token: %w", err)
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token.AccessToken)
	h.Set("User-Agent", userAgent)
	return h, nil
}
