package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"portfolio_backend/test/helpers"
)

// Tests share one server. They are not parallel: each test that needs a
// clean slate calls ClearTables first.
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "integration-secret-1"
)

// GetTestServer returns the shared test server, creating it on first use.
// Integration tests need a Postgres instance; they skip without one.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set, skipping integration tests")
	}
	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("SESSION_SECRET") == "" {
			os.Setenv("SESSION_SECRET", "test_session_secret_0123456789")
		}
		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
