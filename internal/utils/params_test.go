package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatParam(t *testing.T) {
	values := url.Values{"lat": {"19.0760"}, "bad": {"north"}}

	v, err := ParseFloatParam(values, "lat")
	require.NoError(t, err)
	assert.InDelta(t, 19.0760, v, 1e-9)

	_, err = ParseFloatParam(values, "lng")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required parameter "lng"`)

	_, err = ParseFloatParam(values, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `must be a number`)
}

func TestParseOptionalFloatParam(t *testing.T) {
	values := url.Values{"radius": {"2.5"}, "bad": {"far"}}

	v, err := ParseOptionalFloatParam(values, "radius", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-9)

	v, err = ParseOptionalFloatParam(values, "missing", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)

	_, err = ParseOptionalFloatParam(values, "bad", 1.0)
	assert.Error(t, err)
}

func TestParseOptionalIntParam(t *testing.T) {
	values := url.Values{"limit": {"25"}, "bad": {"many"}, "float": {"2.5"}}

	v, err := ParseOptionalIntParam(values, "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	v, err = ParseOptionalIntParam(values, "missing", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = ParseOptionalIntParam(values, "bad", 10)
	assert.Error(t, err)

	_, err = ParseOptionalIntParam(values, "float", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")
}
