package web

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssets_Embedded(t *testing.T) {
	for _, name := range []string{"index.html", "app.css", "logo.svg"} {
		_, err := fs.Stat(Assets(), name)
		require.NoError(t, err, name)
	}
}

func TestDir_ReadsThroughToDisk(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	css := filepath.Join(dir, "app.css")
	req.NoError(os.WriteFile(css, []byte(".App { color: red; }"), 0o600))

	fsys, err := Dir(dir)
	req.NoError(err)

	data, err := fs.ReadFile(fsys, "app.css")
	req.NoError(err)
	req.Equal(".App { color: red; }", string(data))

	req.NoError(os.WriteFile(css, []byte(".App { color: blue; }"), 0o600))
	data, err = fs.ReadFile(fsys, "app.css")
	req.NoError(err)
	req.Equal(".App { color: blue; }", string(data))
}

func TestDir_Rejects(t *testing.T) {
	_, err := Dir(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = Dir(file)
	require.Error(t, err)
}
