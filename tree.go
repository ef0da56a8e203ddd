package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// EntryKind selects which directory entries a walk retains.
type EntryKind int

const (
	FilesOnly EntryKind = iota
	DirsOnly
)

// PathSet holds slash-separated paths relative to the root they were collected from.
type PathSet map[string]struct{}

func (s PathSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the members in lexicographic order.
func (s PathSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// CollectOption configures Collect.
type CollectOption func(*collectOptions)

type collectOptions struct {
	maxDepth int
	onSkip   func(path string, err error)
}

func defaultCollectOptions() *collectOptions {
	return &collectOptions{
		maxDepth: -1, // No limit
	}
}

// WithMaxDepth bounds the walk. Entries directly below the root are at depth 0.
// A negative depth means no limit.
func WithMaxDepth(depth int) CollectOption {
	return func(opts *collectOptions) {
		opts.maxDepth = depth
	}
}

// WithSkipHandler registers fn to be told about entries the walk could not read.
// Collect may be running on several goroutines, so fn must be safe for concurrent use.
func WithSkipHandler(fn func(path string, err error)) CollectOption {
	return func(opts *collectOptions) {
		opts.onSkip = fn
	}
}

var errNotDirectory = errors.New("not a directory")

type collector struct {
	root  string
	kind  EntryKind
	opts  *collectOptions
	paths PathSet
}

// Collect walks root and returns the relative paths of all entries of the given kind.
// The root itself is never part of the result. Unreadable entries below the root are
// skipped; only a root that cannot be listed at all is an error.
func Collect(ctx context.Context, root string, kind EntryKind, options ...CollectOption) (PathSet, error) {
	opts := defaultCollectOptions()
	for _, opt := range options {
		opt(opts)
	}

	stat, err := os.Stat(root)
	if err != nil {
		return nil, newRootTraversalError(root, err)
	}
	if !stat.IsDir() {
		return nil, newRootTraversalError(root, errNotDirectory)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, newRootTraversalError(root, err)
	}

	c := &collector{
		root:  root,
		kind:  kind,
		opts:  opts,
		paths: PathSet{},
	}
	if err := c.walk(ctx, root, entries, 0); err != nil {
		return nil, err
	}
	return c.paths, nil
}

func (c *collector) walk(ctx context.Context, dir string, entries []os.DirEntry, level int) error {
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, entry.Name())
		if c.keep(entry) {
			if err := c.add(path); err != nil {
				return err
			}
		}

		// Symlinked directories report a symlink type here and are not descended.
		if !entry.IsDir() || c.atMaxDepth(level) {
			continue
		}
		sub, err := os.ReadDir(path)
		if err != nil {
			// ReadDir hands back whatever it managed to read before failing.
			c.skip(path, err)
		}
		if err := c.walk(ctx, path, sub, level+1); err != nil {
			return err
		}
	}
	return nil
}

func (c *collector) keep(entry os.DirEntry) bool {
	if c.kind == DirsOnly {
		return entry.IsDir()
	}
	return entry.Type().IsRegular()
}

func (c *collector) atMaxDepth(level int) bool {
	return c.opts.maxDepth >= 0 && level >= c.opts.maxDepth
}

func (c *collector) add(path string) error {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return newNormalizePathError(c.root, path, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return newNormalizePathError(c.root, path, errors.New("path is not below root"))
	}
	c.paths[filepath.ToSlash(rel)] = struct{}{}
	return nil
}

func (c *collector) skip(path string, err error) {
	if c.opts.onSkip != nil {
		c.opts.onSkip(path, err)
	}
}
