package businesscomms

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func TestNewAuthRequiresCredentials(t *testing.T) {
	if _, err := newAuth(Config{}); err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestNewAuthMissingKeyFile(t *testing.T) {
	_, err := newAuth(Config{CredentialsFile: filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Fatalf("expected error for missing key file")
	}
}

func TestNewAuthRejectsMalformedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, []byte(`{"type":"authorized_user"}`), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	if _, err := newAuth(Config{CredentialsFile: path}); err == nil {
		t.Fatalf("expected error for a non service account key")
	}
}

func TestAuthHeaders(t *testing.T) {
	auth, err := newAuth(Config{
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok-1"}),
	})
	if err != nil {
		t.Fatalf("new auth: %v", err)
	}

	headers, err := auth.Headers()
	if err != nil {
		t.Fatalf("headers: %v", err)
	}
	if headers.Get("Authorization") != "Bearer tok-1" {
		t.Fatalf("unexpected authorization header: %s", headers.Get("Authorization"))
	}
	if headers.Get("User-Agent") != userAgent {
		t.Fatalf("unexpected user agent: %s", headers.Get("User-Agent"))
	}
}
