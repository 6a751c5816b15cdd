package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-greeter/vdom"
)

func TestLoader_Load(t *testing.T) {
	l := NewLoader(testFS())

	t.Run("should map / to index.html", func(t *testing.T) {
		f, err := l.Load("/")
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, testPage, string(data))
	})

	t.Run("should not escape the root", func(t *testing.T) {
		f, err := l.Load("/../../etc/passwd")
		require.ErrorIs(t, err, ErrAssetNotFound)
		require.Nil(t, f)
	})

	t.Run("should report directories as missing", func(t *testing.T) {
		_, err := l.Load("/nested")
		require.ErrorIs(t, err, ErrAssetNotFound)
	})

	t.Run("should open nested files", func(t *testing.T) {
		data, err := l.ReadFile("/nested/a.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(data))
	})
}

func TestLoader_List(t *testing.T) {
	req := require.New(t)
	l := NewLoader(testFS())

	assets, err := l.List()

	req.NoError(err)
	req.Len(assets, 5)
	paths := make([]string, 0, len(assets))
	for _, a := range assets {
		paths = append(paths, a.Path)
	}
	req.Equal([]string{"/app.css", "/big.js", "/blob", "/index.html", "/nested/a.json"}, paths)
	req.Equal("image/png", assets[2].ContentType)
	req.Equal(int64(len(pngHeader)), assets[2].Size)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer

	WriteTable(&buf, []Asset{{Path: "/index.html", Size: 42, ContentType: "text/html; charset=utf-8"}})

	out := buf.String()
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "/index.html")
	assert.Contains(t, out, "42")
}

func TestPrerender(t *testing.T) {
	t.Run("should place the markup inside the mount element", func(t *testing.T) {
		out, err := Prerender([]byte(testPage), "app", vdom.Paragraph("hi", map[string]any{"class": "x"}))
		require.NoError(t, err)
		assert.Contains(t, string(out), `<div id="app"><p class="x">hi</p></div>`)
	})

	t.Run("should fail without a mount element", func(t *testing.T) {
		_, err := Prerender([]byte(`<html><body></body></html>`), "app", vdom.Text("hi"))
		require.Error(t, err)
	})

	t.Run("should accept an empty tree", func(t *testing.T) {
		out, err := Prerender([]byte(testPage), "app", nil)
		require.NoError(t, err)
		assert.Contains(t, string(out), `<div id="app"></div>`)
	})
}

