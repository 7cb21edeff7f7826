package tutil

import (
	"os"
	"strings"
)

// IsIntegrationTest reports whether tests that need external services, such
// as a MySQL server, should run. Set HBNB_TEST=integration to enable them.
func IsIntegrationTest() bool {
	testType := os.Getenv("HBNB_TEST")
	return strings.ToLower(testType) == "integration"
}
