package samples

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
)

// DefaultCredentialsFile is where the walkthroughs expect the service
// account key when nothing else is configured.
const DefaultCredentialsFile = "./resources/bc-agent-service-account-credentials.json"

// Settings configures how the bcsamples command builds its client.
// Precedence: BC_* environment variables > YAML settings file > defaults.
// A .env file in the working directory is loaded into the environment
// first, if present.
type Settings struct {
	CredentialsFile string  `yaml:"credentials_file"`
	BaseURL         string  `yaml:"base_url"`
	DelaySeconds    float64 `yaml:"delay_seconds"`
	Debug           bool    `yaml:"debug"`
}

// LoadSettings reads the optional .env file, then the YAML settings file
// at path (missing file is fine), then applies environment overrides.
func LoadSettings(path string) (Settings, error) {
	_ = godotenv.Load()

	settings := Settings{
		CredentialsFile: DefaultCredentialsFile,
		DelaySeconds:    DefaultDelay.Seconds(),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("BC_CREDENTIALS_FILE"); v != "" {
		settings.CredentialsFile = v
	}
	if v := os.Getenv("BC_BASE_URL"); v != "" {
		settings.BaseURL = v
	}
	if v := os.Getenv("BC_SAMPLES_DELAY_SECONDS"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("parse BC_SAMPLES_DELAY_SECONDS: %w", err)
		}
		settings.DelaySeconds = parsed
	}
	if settings.DelaySeconds < 0 {
		return Settings{}, fmt.Errorf("delay must be non-negative")
	}

	return settings, nil
}

// Delay converts the configured delay to a duration.
func (s Settings) Delay() time.Duration {
	return time.Duration(s.DelaySeconds * float64(time.Second))
}

// NewClient builds a management API client from the settings.
func (s Settings) NewClient() (*businesscomms.Client, error) {
	params := businesscomms.ConfigParams{
		CredentialsFile: s.CredentialsFile,
		BaseURL:         s.BaseURL,
	}
	if s.Debug {
		debug := true
		params.Debug = &debug
	}
	return businesscomms.NewClientWithParams(params)
}
