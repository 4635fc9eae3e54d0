//go:build staging

package staging

import (
	"os"
	"testing"

	"github.com/osse101/CasinoBot_Go/internal/client"
)

var api *client.APIClient

func TestMain(m *testing.M) {
	stagingURL := os.Getenv("API_URL")
	if stagingURL == "" {
		stagingURL = "http://localhost:8080"
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		apiKey = "test-api-key" // Default for local testing if not specified
	}

	api = client.NewAPIClient(stagingURL, apiKey)
	os.Exit(m.Run())
}
