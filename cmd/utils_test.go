package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValueSet(t *testing.T) {
	e := NewEnumValue("debug", map[string]string{"debug": "", "release": ""})
	require.NoError(t, e.Set("release"))
	assert.Equal(t, "release", e.Value())

	err := e.Set("fast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: debug, release")
	assert.Equal(t, "release", e.Value(), "rejected values must not stick")
}

func TestEnumValueEmptyDefaultMeansUnset(t *testing.T) {
	e := NewEnumValue("", map[string]string{"make": "", "meson": ""})
	assert.Equal(t, "", e.Value())
	require.NoError(t, e.Set("meson"))
	assert.Equal(t, "meson", e.Value())
}

func TestEnumValueBadDefaultPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewEnumValue("nope", map[string]string{"make": ""})
	})
}

func TestEnumValueHelpStringSorted(t *testing.T) {
	e := NewEnumValue("", map[string]string{"meson": "", "cmake": "", "make": ""})
	assert.Equal(t, "[cmake, make, meson]", e.HelpString())
}
