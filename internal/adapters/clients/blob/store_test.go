package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

func TestStore_PutOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(afero.NewMemMapFs(), 0)

	n, err := s.Put(ctx, "7/abc_notes.txt", "text/plain", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if n != 5 {
		t.Errorf("Put() = %d bytes, want 5", n)
	}

	rc, err := s.Open(ctx, "7/abc_notes.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = rc.Close() }()
	got, _ := io.ReadAll(rc)
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
}

func TestStore_TooLargeLeavesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	s := New(fsys, 4)

	_, err := s.Put(ctx, "7/abc_big.bin", "", strings.NewReader("12345"))
	if !errors.Is(err, ErrTooLarge) || !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Put() = %v, want ErrTooLarge", err)
	}

	entries, _ := afero.ReadDir(fsys, "/7")
	if len(entries) != 0 {
		t.Errorf("directory has %d entries after rejected upload, want 0", len(entries))
	}
}

func TestStore_RejectsEscapingNames(t *testing.T) {
	t.Parallel()
	s := New(afero.NewMemMapFs(), 0)

	for _, name := range []string{"", "../etc/passwd", "7/../../x"} {
		if _, err := s.Put(context.Background(), name, "", strings.NewReader("x")); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Put(%q) = %v, want ErrValidation", name, err)
		}
	}
}

func TestStore_OpenMissing(t *testing.T) {
	t.Parallel()
	s := New(afero.NewMemMapFs(), 0)

	if _, err := s.Open(context.Background(), "7/missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Open() = %v, want ErrNotFound", err)
	}
}

func TestStore_PutStopsOnCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(afero.NewMemMapFs(), 0)

	if _, err := s.Put(ctx, "7/abc_x", "", strings.NewReader("data")); !errors.Is(err, context.Canceled) {
		t.Errorf("Put() = %v, want context.Canceled", err)
	}
}
