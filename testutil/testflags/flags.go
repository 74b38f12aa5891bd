package testflags

import (
	"os"
	"testing"
)

// IntegrationTest skips t unless a live node is configured. The node URL is
// read from NIMIQ_RPC_URL.
func IntegrationTest(t *testing.T) string {
	_, ok := os.LookupEnv("NIMIQ_ENABLE_INTEGRATION_TESTS")
	if !ok {
		t.SkipNow()
	}
	url := os.Getenv("NIMIQ_RPC_URL")
	if url == "" {
		url = "http://127.0.0.1:8648"
	}
	t.Parallel()
	return url
}
