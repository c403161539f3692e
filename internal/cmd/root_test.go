package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with a scratch state directory.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// setupEnv isolates config and state for one test.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BUILDMASTER_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("BUILDMASTER_STATE_DIR", filepath.Join(dir, "state"))
	return dir
}

func TestBuildAdd_MockCatalog(t *testing.T) {
	dir := setupEnv(t)

	require.NoError(t, execute(t, "--mock", "build", "add", "cpu-1"))
	require.NoError(t, execute(t, "--mock", "build", "add", "gpu-1"))

	// The working build is mirrored to disk between invocations.
	data, err := os.ReadFile(filepath.Join(dir, "state", "build.json"))
	require.NoError(t, err)

	var mirror struct {
		Components map[string]struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
		} `json:"components"`
		TotalPrice float64 `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(data, &mirror))
	assert.Len(t, mirror.Components, 2)
	assert.Equal(t, 6498.0, mirror.TotalPrice)
}

func TestBuildAdd_ReplacesSlotOccupant(t *testing.T) {
	dir := setupEnv(t)

	require.NoError(t, execute(t, "--mock", "build", "add", "cpu-1"))
	require.NoError(t, execute(t, "--mock", "build", "add", "cpu-1"))

	data, err := os.ReadFile(filepath.Join(dir, "state", "build.json"))
	require.NoError(t, err)

	var mirror struct {
		Components map[string]any `json:"components"`
		TotalPrice float64        `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(data, &mirror))
	assert.Len(t, mirror.Components, 1)
	assert.Equal(t, 2499.0, mirror.TotalPrice)
}

func TestBuildRemoveAndClear(t *testing.T) {
	dir := setupEnv(t)

	require.NoError(t, execute(t, "--mock", "build", "add", "cpu-1"))
	require.NoError(t, execute(t, "--mock", "build", "remove", "cpu"))

	// Removing an empty slot is a no-op, not an error.
	require.NoError(t, execute(t, "--mock", "build", "remove", "gpu"))
	require.NoError(t, execute(t, "--mock", "build", "clear"))

	data, err := os.ReadFile(filepath.Join(dir, "state", "build.json"))
	require.NoError(t, err)
	var mirror struct {
		TotalPrice float64 `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(data, &mirror))
	assert.Equal(t, 0.0, mirror.TotalPrice)
}

func TestBuildAdd_UnknownComponent(t *testing.T) {
	setupEnv(t)

	err := execute(t, "--mock", "build", "add", "nope-999")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestBuildSave_RequiresLogin(t *testing.T) {
	setupEnv(t)

	require.NoError(t, execute(t, "--mock", "build", "add", "cpu-1"))
	err := execute(t, "--mock", "build", "save", "my build")

	require.Error(t, err)
	assert.Equal(t, ExitUnauthorized, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "/login?redirect=")
}

func TestLoginThenSave(t *testing.T) {
	setupEnv(t)

	var savedBuilds int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"id": 7, "username": "builder", "token": "tok-7",
				},
			})
		case "/api/builds/save":
			require.Equal(t, "Bearer tok-7", r.Header.Get("Authorization"))
			savedBuilds++
			var cfg map[string]any
			_ = json.NewDecoder(r.Body).Decode(&cfg)
			cfg["id"] = "srv-1"
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": cfg})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	t.Setenv("BUILDMASTER_SERVER_URL", srv.URL)

	require.NoError(t, execute(t, "login", "--username", "builder", "--password", "hunter22"))
	require.NoError(t, execute(t, "--mock", "build", "add", "gpu-1"))
	require.NoError(t, execute(t, "--mock", "build", "save", "gaming", "rig"))

	assert.Equal(t, 1, savedBuilds)
}

func TestLogout_ThenWhoamiFails(t *testing.T) {
	setupEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 7, "username": "builder", "token": "tok-7"},
		})
	}))
	defer srv.Close()
	t.Setenv("BUILDMASTER_SERVER_URL", srv.URL)

	require.NoError(t, execute(t, "login", "--username", "builder", "--password", "hunter22"))
	require.NoError(t, execute(t, "whoami"))
	require.NoError(t, execute(t, "logout"))

	err := execute(t, "whoami")
	require.Error(t, err)
	assert.Equal(t, ExitUnauthorized, ExitCodeFromError(err))
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	dir := setupEnv(t)
	cfgPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, execute(t, "config", "init"))
	_, err := os.Stat(cfgPath)
	require.NoError(t, err)

	err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, execute(t, "config", "init", "--force"))
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)
	require.NoError(t, execute(t, "version"))
}
