package main

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

type Summary struct {
	UniqueInA int `json:"unique_in_a"`
	UniqueInB int `json:"unique_in_b"`
}

// DiffResult lists the paths that exist under only one of the two roots.
type DiffResult struct {
	OnlyInA []string `json:"only_in_a"`
	OnlyInB []string `json:"only_in_b"`
	Summary Summary  `json:"summary"`
}

// DiffDirs collects both roots concurrently and diffs the results.
// If either root cannot be walked the other walk is cancelled and no result is returned.
func DiffDirs(ctx context.Context, dirA, dirB string, kind EntryKind, options ...CollectOption) (*DiffResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	var a, b PathSet
	g.Go(func() error {
		var err error
		a, err = Collect(ctx, dirA, kind, options...)
		if err != nil {
			return fmt.Errorf("%s: %w", dirA, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		b, err = Collect(ctx, dirB, kind, options...)
		if err != nil {
			return fmt.Errorf("%s: %w", dirB, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Diff(a, b), nil
}

// Diff returns the members exclusive to each side, sorted.
func Diff(a, b PathSet) *DiffResult {
	onlyA := difference(a, b)
	onlyB := difference(b, a)
	return &DiffResult{
		OnlyInA: onlyA,
		OnlyInB: onlyB,
		Summary: Summary{
			UniqueInA: len(onlyA),
			UniqueInB: len(onlyB),
		},
	}
}

func difference(a, b PathSet) []string {
	res := []string{}
	for p := range a {
		if !b.Has(p) {
			res = append(res, p)
		}
	}
	slices.Sort(res)
	return res
}
