package console_test

import (
	"testing"

	"github.com/vyaapaarai/console/pkg/consolesdk"
)

// TestLivezEndpoint verifies the liveness check works before any login.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupConsoleContainer(t, nil)
	defer cleanup()

	client := consolesdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies readiness, which needs the seeded catalog.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupConsoleContainer(t, nil)
	defer cleanup()

	client := consolesdk.NewClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
}
