package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmaster/cli/internal/catalog"
)

func TestSaveBuild_ReturnsStoredRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/builds/save", r.URL.Path)
		var cfg BuildConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cfg))
		cfg.ID = "srv-1"
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": cfg})
	})

	saved, err := client.SaveBuild(context.Background(), BuildConfig{
		Name: "gaming rig",
		Components: map[catalog.SlotType]catalog.Component{
			catalog.SlotCPU: {ID: "cpu-1", Price: 2499},
		},
		TotalPrice: 2499,
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", saved.ID)
	assert.Equal(t, "gaming rig", saved.Name)
}

func TestSaveBuild_RemoteRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "quota exceeded"})
	})

	_, err := client.SaveBuild(context.Background(), BuildConfig{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.True(t, strings.Contains(err.Error(), "quota exceeded"))
}

func TestCheckCompatibility_SendsSelection(t *testing.T) {
	var got struct {
		Components map[string]string `json:"components"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"compatible": false,
				"issues":     []string{"psu wattage too low"},
			},
		})
	})

	result, err := client.CheckCompatibility(context.Background(), map[catalog.SlotType]string{
		catalog.SlotCPU: "cpu-1",
		catalog.SlotPSU: "psu-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "cpu-1", got.Components["cpu"])
	assert.False(t, result.Compatible)
	assert.Equal(t, []string{"psu wattage too low"}, result.Issues)
}

func TestListBuilds_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	})

	builds, err := client.ListBuilds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, builds)
}
