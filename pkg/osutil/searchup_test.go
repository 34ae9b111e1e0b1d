package osutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchUp(t *testing.T) {
	tests := []struct {
		name     string
		setupDir func(t *testing.T) (startDir string, wantPath string)
	}{
		{
			name: "FileInStartDirectory",
			setupDir: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				target := filepath.Join(dir, "global.json")
				err := os.WriteFile(target, []byte("{}"), PermissionFile)
				require.NoError(t, err)
				return dir, target
			},
		},
		{
			name: "FileInAncestorDirectory",
			setupDir: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				target := filepath.Join(dir, "global.json")
				err := os.WriteFile(target, []byte("{}"), PermissionFile)
				require.NoError(t, err)

				nested := filepath.Join(dir, "src", "app")
				err = os.MkdirAll(nested, PermissionDirectory)
				require.NoError(t, err)
				return nested, target
			},
		},
		{
			name: "NearestAncestorWins",
			setupDir: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				err := os.WriteFile(filepath.Join(dir, "global.json"), []byte("{}"), PermissionFile)
				require.NoError(t, err)

				nested := filepath.Join(dir, "src")
				err = os.MkdirAll(nested, PermissionDirectory)
				require.NoError(t, err)
				target := filepath.Join(nested, "global.json")
				err = os.WriteFile(target, []byte("{}"), PermissionFile)
				require.NoError(t, err)
				return nested, target
			},
		},
		{
			name: "DirectoryWithSameNameIsSkipped",
			setupDir: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				target := filepath.Join(dir, "global.json")
				err := os.WriteFile(target, []byte("{}"), PermissionFile)
				require.NoError(t, err)

				// A directory named global.json must not satisfy the search.
				nested := filepath.Join(dir, "src", "global.json")
				err = os.MkdirAll(nested, PermissionDirectory)
				require.NoError(t, err)
				return filepath.Join(dir, "src"), target
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startDir, wantPath := tt.setupDir(t)

			path, ok, err := SearchUp(startDir, "global.json")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, wantPath, path)
		})
	}

	t.Run("NotFound", func(t *testing.T) {
		// The walk escapes the temp tree, so probe for a name no ancestor
		// can plausibly contain.
		path, ok, err := SearchUp(t.TempDir(), "b2ff61c0-absent.probe")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, path)
	})
}
