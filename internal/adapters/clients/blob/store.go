// Package blob stores attachment bytes on a filesystem. Production uses a
// directory on disk; tests use an in-memory filesystem. Object names are
// "{taskID}/{token}_{file}" and are confined to the store root.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BlobStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// ErrTooLarge is returned by Put when the upload exceeds the size limit.
var ErrTooLarge = fmt.Errorf("%w: attachment exceeds size limit", domain.ErrValidation)

const dirPerm = 0o750

// Store is a filesystem-backed [ports.BlobStore].
type Store struct {
	fs       afero.Fs
	maxBytes int64
}

// New returns a Store over fsys. A maxBytes of zero or less disables the
// size limit.
func New(fsys afero.Fs, maxBytes int64) *Store {
	return &Store{fs: fsys, maxBytes: maxBytes}
}

// NewDir returns a Store rooted at dir on the local disk, creating dir if
// needed.
func NewDir(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating blob root %s: %w", dir, err)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), maxBytes), nil
}

// Put streams r into the named object. The bytes land in a temporary file
// first and are renamed into place only once complete, so a failed or
// oversized upload never leaves a partial object behind.
func (s *Store) Put(ctx context.Context, name, _ string, r io.Reader) (int64, error) {
	clean, err := cleanName(name)
	if err != nil {
		return 0, err
	}
	dir := path.Dir(clean)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp object: %w", err)
	}
	tmpName := tmp.Name()
	discard := func() { _ = s.fs.Remove(tmpName) }

	src := io.Reader(&ctxReader{ctx: ctx, r: r})
	if s.maxBytes > 0 {
		src = io.LimitReader(src, s.maxBytes+1)
	}
	n, copyErr := io.Copy(tmp, src)
	closeErr := tmp.Close()

	switch {
	case copyErr != nil:
		discard()
		return 0, fmt.Errorf("writing %s: %w", clean, copyErr)
	case closeErr != nil:
		discard()
		return 0, fmt.Errorf("closing %s: %w", clean, closeErr)
	case s.maxBytes > 0 && n > s.maxBytes:
		discard()
		return 0, ErrTooLarge
	}

	if err := s.fs.Rename(tmpName, clean); err != nil {
		discard()
		return 0, fmt.Errorf("publishing %s: %w", clean, err)
	}
	return n, nil
}

// Open returns a reader for the named object.
func (s *Store) Open(_ context.Context, name string) (io.ReadCloser, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("object %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", clean, err)
	}
	return f, nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string { return "blob-store" }

// HealthCheck verifies the store root is reachable. Only attachments need
// it, so a failure is reported as degraded.
func (s *Store) HealthCheck(context.Context) error {
	if _, err := s.fs.Stat("/"); err != nil {
		return fmt.Errorf("blob-store: %w: %w", ports.ErrDegraded, err)
	}
	return nil
}

// cleanName rejects names that are empty or would escape the root.
func cleanName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"object_name": domain.MsgRequired}}
	}
	clean := path.Clean("/" + name)
	if clean == "/" || strings.Contains(name, "..") {
		return "", &domain.ValidationError{Fields: map[string]string{"object_name": fmt.Sprintf("invalid: %q", name)}}
	}
	return clean, nil
}

// ctxReader stops a copy once the request context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
