package buildsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, elem ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(elem...), nil, 0o644))
}

func mkdirs(t *testing.T, elem ...string) string {
	t.Helper()
	path := filepath.Join(elem...)
	require.NoError(t, os.MkdirAll(path, 0o755))
	return path
}

// markerFreeTempDir skips the test if any ancestor of the temp dir happens to
// carry a build-system marker, since detection would then never reach the
// filesystem root.
func markerFreeTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for anc := filepath.Dir(dir); ; anc = filepath.Dir(anc) {
		if _, ok, _ := detectInDir(anc); ok {
			t.Skipf("ancestor %s contains a build-system marker", anc)
		}
		if anc == filepath.Dir(anc) {
			return dir
		}
	}
}

func TestDetectNearestMatch(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Makefile")
	inner := mkdirs(t, root, "sub", "inner")
	touch(t, inner, "meson.build")

	kind, dir, err := Detect(inner)
	require.NoError(t, err)
	assert.Equal(t, Meson, kind)
	assert.Equal(t, inner, dir)
}

func TestDetectAscends(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Makefile")
	start := mkdirs(t, root, "src", "deep", "deeper")

	kind, dir, err := Detect(start)
	require.NoError(t, err)
	assert.Equal(t, Make, kind)
	assert.Equal(t, root, dir)
}

func TestDetectPrecedenceWithinDirectory(t *testing.T) {
	tests := []struct {
		name    string
		markers []string
		want    Kind
	}{
		{"cmake wins over make", []string{"CMakeLists.txt", "Makefile"}, CMake},
		{"cmake wins over meson", []string{"CMakeLists.txt", "meson.build"}, CMake},
		{"make wins over meson", []string{"Makefile", "meson.build"}, Make},
		{"lowercase makefile", []string{"makefile"}, Make},
		{"meson alone", []string{"meson.build"}, Meson},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, m := range tt.markers {
				touch(t, dir, m)
			}
			kind, root, err := Detect(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, dir, root)
		})
	}
}

func TestDetectNoMarkerAnywhere(t *testing.T) {
	dir := markerFreeTempDir(t)
	_, _, err := Detect(dir)
	require.ErrorIs(t, err, ErrNoBuildSystem)
}

func TestBuildDirNameIsPureAndModeSpecific(t *testing.T) {
	assert.Equal(t, BuildDirName(Release), BuildDirName(Release))
	assert.Equal(t, BuildDirName(Debug), BuildDirName(Debug))
	assert.NotEqual(t, BuildDirName(Debug), BuildDirName(Release))
}
