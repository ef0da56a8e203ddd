package main

import (
	"github.com/boostgo/errorx"
)

var (
	ErrRootTraversal = errorx.New("diffdirs.collect.root")
	ErrNormalizePath = errorx.New("diffdirs.collect.normalize")
	ErrInvalidDepth  = errorx.New("diffdirs.options.depth")
	ErrEncodeReport  = errorx.New("diffdirs.report.encode")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

type normalizeErrorContext struct {
	Root  string `json:"root"`
	Path  string `json:"path"`
	Error error  `json:"error"`
}

type depthErrorContext struct {
	Depth int `json:"depth"`
}

func newRootTraversalError(path string, err error) error {
	return ErrRootTraversal.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newNormalizePathError(root, path string, err error) error {
	return ErrNormalizePath.
		SetError(err).
		SetData(normalizeErrorContext{
			Root:  root,
			Path:  path,
			Error: err,
		})
}

func newInvalidDepthError(depth int) error {
	return ErrInvalidDepth.SetData(depthErrorContext{Depth: depth})
}

func newEncodeReportError(err error) error {
	return ErrEncodeReport.SetError(err)
}
