package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSpecs_StructuredMapping(t *testing.T) {
	attrs := map[string]any{"cores": 16.0, "socket": "LGA1700"}

	specs := DecodeSpecs(attrs)

	assert.False(t, specs.IsFallback())
	assert.Equal(t, attrs, specs.Attributes())
}

func TestDecodeSpecs_EncodedString(t *testing.T) {
	specs := DecodeSpecs(`{"capacity":"32GB","modules":2}`)

	require.False(t, specs.IsFallback())
	assert.Equal(t, "32GB", specs.Attributes()["capacity"])
	assert.Equal(t, 2.0, specs.Attributes()["modules"])
}

func TestDecodeSpecs_InvalidString_WrapsAsFallback(t *testing.T) {
	specs := DecodeSpecs("8 cores, boost up to 5.4 GHz")

	require.True(t, specs.IsFallback())
	assert.Equal(t, "8 cores, boost up to 5.4 GHz", specs.Raw())

	// The single fallback attribute keeps the collaborator's label.
	attrs := specs.Attributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, "8 cores, boost up to 5.4 GHz", attrs["规格"])
}

func TestDecodeSpecs_NilAndEmpty(t *testing.T) {
	assert.Empty(t, DecodeSpecs(nil).Attributes())
	assert.Empty(t, DecodeSpecs("").Attributes())
	assert.False(t, DecodeSpecs("").IsFallback())
}

func TestSpecifications_JSONRoundTrip(t *testing.T) {
	specs := NewStructuredSpecs(map[string]any{"socket": "AM5"})

	data, err := specs.MarshalJSON()
	require.NoError(t, err)

	var decoded Specifications
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, "AM5", decoded.Attributes()["socket"])
}

func TestSpecifications_UnmarshalQuotedBlob(t *testing.T) {
	var specs Specifications
	require.NoError(t, specs.UnmarshalJSON([]byte(`"not structured at all"`)))

	assert.True(t, specs.IsFallback())
	assert.Equal(t, "not structured at all", specs.Raw())
}
