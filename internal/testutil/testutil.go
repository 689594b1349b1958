// Package testutil provides shared test helpers for setting up output
// directories and a deterministic post service.
package testutil

import (
	"testing"
	"time"

	"github.com/aviatorstc/bloggen/internal/compose"
	"github.com/aviatorstc/bloggen/internal/infer"
	"github.com/aviatorstc/bloggen/internal/postservice"
	"github.com/aviatorstc/bloggen/internal/storage"
)

// FixedNow is the clock used by test services.
func FixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

// TestStore creates a temporary output directory with a storage.Provider.
func TestStore(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// TestService builds a post service over a temporary output directory with a
// fixed clock and year, so generated records are deterministic.
func TestService(t *testing.T, overwrite bool) (*postservice.Service, string) {
	t.Helper()
	dir, store := TestStore(t)
	asm := compose.New(infer.New(infer.Options{Year: 2024}), FixedNow)
	return postservice.NewService(store, asm, overwrite), dir
}
