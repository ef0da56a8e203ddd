package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Format int

const (
	FormatHuman Format = iota
	FormatJSON
)

// Reporter renders a DiffResult for the two roots labelA and labelB.
type Reporter struct {
	w      io.Writer
	format Format
	colors palette
	labelA string
	labelB string
}

// NewReporter returns a Reporter writing to w. Color only applies to FormatHuman.
func NewReporter(w io.Writer, format Format, color bool, labelA, labelB string) *Reporter {
	return &Reporter{
		w:      w,
		format: format,
		colors: palette{enabled: color && format == FormatHuman},
		labelA: labelA,
		labelB: labelB,
	}
}

func (r *Reporter) Render(res *DiffResult) error {
	if r.format == FormatJSON {
		return r.renderJSON(res)
	}
	_, err := io.WriteString(r.w, r.human(res))
	return err
}

func (r *Reporter) renderJSON(res *DiffResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return newEncodeReportError(err)
	}
	b = append(b, '\n')
	_, err = r.w.Write(b)
	return err
}

func (r *Reporter) human(res *DiffResult) string {
	var sb strings.Builder
	for _, p := range res.OnlyInA {
		sb.WriteString(r.colors.sideA(fmt.Sprintf("Only in %s: %s", r.labelA, p)))
		sb.WriteString("\n")
	}
	for _, p := range res.OnlyInB {
		sb.WriteString(r.colors.sideB(fmt.Sprintf("Only in %s: %s", r.labelB, p)))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nSummary: %s unique in %s, %s unique in %s\n",
		r.colors.count(strconv.Itoa(res.Summary.UniqueInA), true), r.labelA,
		r.colors.count(strconv.Itoa(res.Summary.UniqueInB), false), r.labelB))
	return sb.String()
}
