package chambers_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/chambers/pkg/chambersdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and assertions shared by the chambers end-to-end tests.
 */

const (
	testImageName = "chambers-test:latest"

	judgeUsername    = "judge1"
	judgePassword    = "e2e-password"
	judgeDisplayName = "Justice Sharma"
)

var seededCaseNumbers = []string{"CRL/2024/125", "CIVIL/2024/89", "BAIL/2024/45", "MAT/2024/67"}

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Chambers Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Chambers Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/chambers/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv is the container environment shared by every test.
func baseEnv() map[string]string {
	return map[string]string{
		"CHAMBERS_DATABASE_FILE": "/data/chambers.db",
		"CHAMBERS_PEPPER_FILE":   "/data/pepper",
		"CHAMBERS_ISSUER":        "chambers-e2e",
		"CHAMBERS_SEED_PASSWORD": judgePassword,
		"ENV":                    "test",
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
}

// relaxedRateLimits lifts the credential limits so tests can log in freely.
func relaxedRateLimits(env map[string]string) map[string]string {
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"
	return env
}

// setupContainer starts the server with relaxed rate limits and returns a
// client pointed at it.
func setupContainer(t *testing.T) *chambersdk.Client {
	t.Helper()
	return startContainer(t, relaxedRateLimits(baseEnv()))
}

// setupContainerWithDefaultRateLimits uses the production limits. Only the
// rate limit tests should need it.
func setupContainerWithDefaultRateLimits(t *testing.T) *chambersdk.Client {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) *chambersdk.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return chambersdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *chambersdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// loginBrowser logs the seeded judge in and returns the browser.
func loginBrowser(t *testing.T, client *chambersdk.Client) *chambersdk.Browser {
	t.Helper()

	b := client.NewBrowser()
	_, err := b.Login(t.Context(), judgeUsername, judgePassword)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, b.SessionCookie(), "Login should set a session cookie")
	return b
}
