package buildsys

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplicitPrefixWinsRegardlessOfPrivilege(t *testing.T) {
	for _, euid := range []int{0, 1000} {
		got, err := resolveInstallPrefix("/opt/custom", euid)
		require.NoError(t, err)
		assert.Equal(t, "/opt/custom", got)
	}
}

func TestSuperuserGetsSystemPrefix(t *testing.T) {
	got, err := resolveInstallPrefix("", 0)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local", got)
}

func TestUserPrefixFromXDGBinHome(t *testing.T) {
	t.Setenv("XDG_BIN_HOME", "/custom/bin")
	got, err := resolveInstallPrefix("", 1000)
	require.NoError(t, err)
	assert.Equal(t, "/custom", got)
}

func TestUserPrefixDefaultsToDotLocal(t *testing.T) {
	t.Setenv("XDG_BIN_HOME", "")
	t.Setenv("HOME", "/home/somebody")
	got, err := resolveInstallPrefix("", 1000)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/somebody", ".local"), got)
}

func TestUserPrefixFailsWithoutHome(t *testing.T) {
	t.Setenv("XDG_BIN_HOME", "")
	t.Setenv("HOME", "")
	_, err := resolveInstallPrefix("", 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't determine the default install prefix")
}
