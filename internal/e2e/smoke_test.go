package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runCCQuota(t, binaryPath, home, nil)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "Not authenticated\n", stdout)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("anthropic-beta") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"five_hour":{"utilization":95},"seven_day":{"utilization":"bad"}}`))
	}))
	t.Cleanup(server.Close)

	require.NoError(t, writeCredentialsFixture(home))

	env := []string{"CCQUOTA_API_BASE_URL=" + server.URL}
	stdout, stderr, err = runCCQuota(t, binaryPath, home, env, "--hide", "plan")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "5h: [██████████]95%\n", stdout)

	stdout, stderr, err = runCCQuota(t, binaryPath, home, env, "cache", "clear")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, ".usage-cache.json")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ccquota-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ccquota")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ccquota binary: %s", string(output))
	return binaryPath
}

func runCCQuota(t *testing.T, binaryPath, home string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "DEBUG=")
	cmd.Env = append(cmd.Env, env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeCredentialsFixture(home string) error {
	claudeDir := filepath.Join(home, ".claude")
	if err := os.MkdirAll(claudeDir, 0o700); err != nil {
		return err
	}

	credentials := `{"claudeAiOauth":{"accessToken":"e2e-token","subscriptionType":"max","expiresAt":0}}`

	return os.WriteFile(filepath.Join(claudeDir, ".credentials.json"), []byte(credentials), 0o600)
}
