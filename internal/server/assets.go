package server

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// IndexFile is served for "/".
const IndexFile = "index.html"

// sniffLen is how many leading bytes are read when the extension says nothing about the type.
const sniffLen = 3072

// ErrAssetNotFound is returned by Loader.Load for paths outside the asset set.
var ErrAssetNotFound = errors.New("asset not found")

// Asset describes one embedded file.
type Asset struct {
	Path        string
	Size        int64
	ContentType string
}

// Loader serves files out of an fs.FS, usually the embedded web assets.
type Loader struct {
	fsys fs.FS
}

// NewLoader wraps fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load opens the asset at urlPath. "/" maps to index.html. Directories and
// paths escaping the root are reported as ErrAssetNotFound.
func (l *Loader) Load(urlPath string) (fs.File, error) {
	name := assetName(urlPath)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, urlPath)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, urlPath)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, urlPath)
	}
	return f, nil
}

// ReadFile returns the whole content of the asset at urlPath.
func (l *Loader) ReadFile(urlPath string) ([]byte, error) {
	f, err := l.Load(urlPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// List walks the asset tree and describes every file, sorted by path.
func (l *Loader) List() ([]Asset, error) {
	var assets []Asset
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		head, err := l.head(p)
		if err != nil {
			return err
		}
		assets = append(assets, Asset{
			Path:        "/" + p,
			Size:        info.Size(),
			ContentType: ContentType(p, head),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk assets: %w", err)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Path < assets[j].Path })
	return assets, nil
}

func (l *Loader) head(name string) ([]byte, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

// ContentType picks the Content-Type of name from its extension, falling back
// to sniffing head.
func ContentType(name string, head []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return mimetype.Detect(head).String()
}

// WriteTable prints assets as a table.
func WriteTable(w io.Writer, assets []Asset) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Path", "Size", "Content Type"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(lo.Map(assets, func(a Asset, _ int) []string {
		return []string{a.Path, strconv.FormatInt(a.Size, 10), a.ContentType}
	}))
	table.Render()
}

func assetName(urlPath string) string {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return IndexFile
	}
	return name
}
