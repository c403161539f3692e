package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmaster/cli/internal/catalog"
)

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, ParseOutputFormat("yaml"))
	assert.Equal(t, FormatJSON, ParseOutputFormat("json"))
	assert.Equal(t, FormatTable, ParseOutputFormat("table"))
	assert.Equal(t, FormatTable, ParseOutputFormat("bogus"))
	assert.Equal(t, FormatTable, ParseOutputFormat(""))
}

func TestFormatPrice(t *testing.T) {
	assert.Contains(t, FormatPrice(2499), "¥2499.00")
	assert.Contains(t, FormatPrice(0), "¥0.00")
}

func TestFormatSlotLine_StatusAligned(t *testing.T) {
	filled := FormatSlotLine("cpu", "Core i7-13700K", StatusSelected)
	empty := FormatSlotLine("psu", "", StatusEmpty)

	assert.Contains(t, filled, "cpu/Core i7-13700K")
	assert.Contains(t, filled, StatusSelected)
	assert.Contains(t, empty, "psu")
	assert.Contains(t, empty, StatusEmpty)
}

func TestRenderRig_AllSlotsPresent(t *testing.T) {
	out := RenderRig("gaming rig", map[catalog.SlotType]catalog.Component{
		catalog.SlotCPU: {ID: "cpu-1", Name: "Core i7-13700K", Price: 2499},
		catalog.SlotGPU: {ID: "gpu-1", Name: "RTX 4070", Price: 3999},
	}, 6498)

	assert.Contains(t, out, "gaming rig")
	assert.Contains(t, out, "Core i7-13700K")
	for _, slot := range catalog.SlotTypes() {
		assert.Contains(t, out, string(slot))
	}
	assert.Contains(t, out, "¥6498.00")
}

func TestDiffBuilds_IdenticalIsEmpty(t *testing.T) {
	build := map[string]any{"cpu": "cpu-1", "total": 2499}

	out, err := DiffBuilds("current", build, "saved", build)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffBuilds_ReportsChange(t *testing.T) {
	current := map[string]any{"cpu": "cpu-1", "total": 2499.0}
	saved := map[string]any{"cpu": "cpu-2", "total": 1999.0}

	out, err := DiffBuilds("current", current, "saved", saved)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.Contains(out, "cpu-1") || strings.Contains(out, "cpu"))
}
