package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// makeTree creates the given entries below root. Entries ending in "/" are directories.
func makeTree(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, e := range entries {
		path := filepath.Join(root, filepath.FromSlash(e))
		if strings.HasSuffix(e, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(e), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func collectSorted(t *testing.T, root string, kind EntryKind, options ...CollectOption) []string {
	t.Helper()
	set, err := Collect(context.Background(), root, kind, options...)
	if err != nil {
		t.Fatalf("Collect(%s): %v", root, err)
	}
	return set.Sorted()
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "x.txt", "sub/y.txt", "sub/deep/z.txt", "empty/")

	t.Run("Files", func(t *testing.T) {
		got := collectSorted(t, root, FilesOnly)
		want := []string{"sub/deep/z.txt", "sub/y.txt", "x.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Dirs", func(t *testing.T) {
		got := collectSorted(t, root, DirsOnly)
		want := []string{"empty", "sub", "sub/deep"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("DepthZero", func(t *testing.T) {
		got := collectSorted(t, root, FilesOnly, WithMaxDepth(0))
		want := []string{"x.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		got = collectSorted(t, root, DirsOnly, WithMaxDepth(0))
		want = []string{"empty", "sub"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("dirs: got %v, want %v", got, want)
		}
	})

	t.Run("DepthOne", func(t *testing.T) {
		got := collectSorted(t, root, FilesOnly, WithMaxDepth(1))
		want := []string{"sub/y.txt", "x.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("NegativeDepthIsUnlimited", func(t *testing.T) {
		got := collectSorted(t, root, FilesOnly, WithMaxDepth(-1))
		if len(got) != 3 {
			t.Errorf("got %v, want all 3 files", got)
		}
	})

	t.Run("RootNeverIncluded", func(t *testing.T) {
		for _, p := range collectSorted(t, root, DirsOnly) {
			if p == "" || p == "." {
				t.Errorf("root reported as %q", p)
			}
		}
	})

	t.Run("TrailingSlashRoot", func(t *testing.T) {
		got := collectSorted(t, root+string(filepath.Separator), FilesOnly)
		want := []string{"sub/deep/z.txt", "sub/y.txt", "x.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestCollectRootErrors(t *testing.T) {
	tmp := t.TempDir()

	t.Run("Missing", func(t *testing.T) {
		set, err := Collect(context.Background(), filepath.Join(tmp, "nope"), FilesOnly)
		if err == nil {
			t.Fatal("expected error for missing root")
		}
		if set != nil {
			t.Errorf("expected no result, got %v", set)
		}
	})

	t.Run("NotADirectory", func(t *testing.T) {
		makeTree(t, tmp, "file.txt")
		if _, err := Collect(context.Background(), filepath.Join(tmp, "file.txt"), FilesOnly); err == nil {
			t.Fatal("expected error for file root")
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		makeTree(t, tmp, "a/b.txt")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := Collect(ctx, tmp, FilesOnly); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestCollectSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	makeTree(t, root, "real.txt")
	makeTree(t, outside, "hidden.txt", "dir/")

	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "hidden.txt"), filepath.Join(root, "file-link")); err != nil {
		t.Fatal(err)
	}

	files := collectSorted(t, root, FilesOnly)
	if !reflect.DeepEqual(files, []string{"real.txt"}) {
		t.Errorf("files: got %v", files)
	}
	dirs := collectSorted(t, root, DirsOnly)
	if len(dirs) != 0 {
		t.Errorf("dirs: got %v, want none", dirs)
	}
}

func TestCollectSkipsUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := t.TempDir()
	makeTree(t, root, "ok.txt", "locked/secret.txt")
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(locked, 0755)

	var skipped []string
	got := collectSorted(t, root, FilesOnly, WithSkipHandler(func(path string, err error) {
		skipped = append(skipped, path)
	}))
	if !reflect.DeepEqual(got, []string{"ok.txt"}) {
		t.Errorf("got %v, want [ok.txt]", got)
	}
	if !reflect.DeepEqual(skipped, []string{locked}) {
		t.Errorf("skipped %v, want [%s]", skipped, locked)
	}

	dirs := collectSorted(t, root, DirsOnly)
	if !reflect.DeepEqual(dirs, []string{"locked"}) {
		t.Errorf("dirs: got %v, want [locked]", dirs)
	}
}
