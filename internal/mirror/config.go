package mirror

import (
	"os"
	"time"

	"google.golang.org/api/option"
)

// DefaultSpreadsheetName is the spreadsheet submissions are mirrored into
const DefaultSpreadsheetName = "Beta Tester Feedback"

// Config holds settings for the Google Sheets mirror
type Config struct {
	// SpreadsheetName is the name of the target spreadsheet
	SpreadsheetName string
	// CredentialsJSON is an environment-supplied service account payload.
	// Takes precedence over CredentialsFile when both are set.
	CredentialsJSON []byte
	// CredentialsFile is a path to a service account key file
	CredentialsFile string
	// Timeout bounds each append so a hanging remote cannot stall a
	// submission response
	Timeout time.Duration
}

// DefaultConfig returns default mirror configuration
func DefaultConfig() Config {
	return Config{
		SpreadsheetName: DefaultSpreadsheetName,
		CredentialsFile: "config/service_account.json",
		Timeout:         8 * time.Second,
	}
}

// resolveCredentials picks a credential source: environment payload first,
// key file second. Returns false if neither resolves.
func resolveCredentials(cfg Config) (option.ClientOption, bool) {
	if len(cfg.CredentialsJSON) > 0 {
		return option.WithCredentialsJSON(cfg.CredentialsJSON), true
	}
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err == nil {
			return option.WithCredentialsFile(cfg.CredentialsFile), true
		}
	}
	return nil, false
}
