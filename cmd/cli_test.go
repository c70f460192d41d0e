package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, newFakeAgent(t).URL, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestOnceJSONOutput(t *testing.T) {
	agent := newFakeAgent(t)

	stdout, _, err := executeCLI(t, agent.URL, "once", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"target_core\": 2")
	assert.Contains(t, stdout, "SGuard64.exe")
	assert.Contains(t, stdout, "\"restricted\": true")
}

func TestOnceRendersEnforcementResult(t *testing.T) {
	agent := newFakeAgent(t)

	stdout, _, err := executeCLI(t, agent.URL, "once")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Enforcement result")
	assert.Contains(t, stdout, "target core: 2")
	assert.Contains(t, stdout, "SGuard64.exe")
}

func TestOnceSendsAggressiveMode(t *testing.T) {
	agent := newFakeAgent(t)

	_, _, err := executeCLI(t, agent.URL, "once", "--aggressive", "--json")
	require.NoError(t, err)
	assert.True(t, agent.lastAggressive)
}

func TestOnceFailsWhenAgentUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, _, err := executeCLI(t, server.URL, "once", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restrict_processes")
}

func TestInfoJSONOutput(t *testing.T) {
	agent := newFakeAgent(t)

	stdout, _, err := executeCLI(t, agent.URL, "info", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"cpu_model\": \"AMD Ryzen 7 5800X\"")
	assert.Contains(t, stdout, "\"total_memory_gb\": 31.9")
}

func TestInfoRendersSystemInfo(t *testing.T) {
	agent := newFakeAgent(t)

	stdout, _, err := executeCLI(t, agent.URL, "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "AMD Ryzen 7 5800X")
	assert.Contains(t, stdout, "elevated")
}

func TestTopJSONOutput(t *testing.T) {
	agent := newFakeAgent(t)

	stdout, _, err := executeCLI(t, agent.URL, "top", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"cpu_usage\": 24.5")
	assert.Contains(t, stdout, "\"memory_mb\": 148.2")
}

func TestTopRendersPerformanceTable(t *testing.T) {
	agent := newFakeAgent(t)

	stdout, _, err := executeCLI(t, agent.URL, "top")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Process performance")
	assert.Contains(t, stdout, "SGuard64.exe")
}

func TestConfigInitWritesDefaultFile(t *testing.T) {
	agent := newFakeAgent(t)

	stdout, _, err := executeCLI(t, agent.URL, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config.toml")

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "guard-limiter", "config.toml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[gateway]")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"config", "init"})
	require.Error(t, root.Execute())
}

type fakeAgent struct {
	*httptest.Server

	lastAggressive bool
}

func newFakeAgent(t *testing.T) *fakeAgent {
	t.Helper()

	agent := &fakeAgent{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/restrict_processes", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			AggressiveMode bool `json:"aggressive_mode"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		agent.lastAggressive = body.AggressiveMode

		core := 2
		writeJSON(t, w, map[string]any{
			"target_core":            core,
			"sguard64_found":         true,
			"sguard64_restricted":    true,
			"sguardsvc64_found":      true,
			"sguardsvc64_restricted": true,
			"wechat_found":           false,
			"wechat_restricted":      false,
			"message":                "restricted 2 processes",
		})
	})
	mux.HandleFunc("GET /api/get_system_info", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{
			"cpu_model":         "AMD Ryzen 7 5800X",
			"cpu_cores":         8,
			"cpu_logical_cores": 16,
			"os_name":           "Windows",
			"os_version":        "10.0.19045",
			"is_admin":          true,
			"total_memory_gb":   31.9,
		})
	})
	mux.HandleFunc("GET /api/get_process_performance", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{
			{"pid": 4211, "name": "SGuard64.exe", "cpu_usage": 24.5, "memory_mb": 148.2},
			{"pid": 980, "name": "WeChat.exe", "cpu_usage": 1.1, "memory_mb": 512.0},
		})
	})

	agent.Server = httptest.NewServer(mux)
	t.Cleanup(agent.Server.Close)

	return agent
}

func writeJSON(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

func executeCLI(t *testing.T, gatewayURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GL_GATEWAY_URL", gatewayURL)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
