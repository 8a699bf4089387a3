// Package zip bundles drawing files into ZIP archives.
package zip

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/drawfind"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files read at once.
const DefaultConcurrency = 4

var _ drawfind.Packager = (*Packager)(nil)

// Packager writes ZIP archives of drawing files. Remote refs (http and
// https URLs) are read through Remote, everything else through Local.
// Files are read concurrently but written in the order given.
type Packager struct {
	Remote      drawfind.Opener
	Local       drawfind.Opener
	Concurrency int
}

// Package writes a ZIP archive with one entry per ref to w. Entries are
// named by the ref's base file name. Any unreadable ref aborts packaging
// before anything is written.
func (p *Packager) Package(ctx context.Context, w io.Writer, refs []string) error {
	if len(refs) == 0 {
		return drawfind.Errorf(drawfind.EINVALID, "no files to package")
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	contents := make([][]byte, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			data, err := p.read(gctx, ref)
			if err != nil {
				return err
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for i, ref := range refs {
		f, err := zw.Create(EntryName(ref))
		if err != nil {
			return err
		}
		if _, err := f.Write(contents[i]); err != nil {
			return err
		}
	}
	return zw.Close()
}

func (p *Packager) read(ctx context.Context, ref string) ([]byte, error) {
	opener := p.Local
	if isURL(ref) {
		opener = p.Remote
	}
	if opener == nil {
		return nil, drawfind.Errorf(drawfind.EINVALID, "no opener for %s", ref)
	}

	rc, err := opener.Open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, drawfind.Errorf(drawfind.EFETCH, "reading %s: %v", ref, err)
	}
	return buf.Bytes(), nil
}

// EntryName returns the archive entry name for ref: the unescaped last
// path element of a URL, or the base name of a filesystem path.
func EntryName(ref string) string {
	if isURL(ref) {
		if u, err := url.Parse(ref); err == nil {
			return path.Base(u.Path)
		}
	}
	return filepath.Base(ref)
}

func isURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
