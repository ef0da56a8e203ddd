package main

import (
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	modeFont       = 3
	modeBrightFont = 9
)

const (
	colorRed  = 1
	colorBlue = 4
)

const (
	styleNormal = 0
	styleBold   = 1
)

func colored(str string, color, mode, style int) string {
	var sb strings.Builder
	if style > 0 {
		sb.WriteString("\033[")
		sb.WriteString(strconv.Itoa(style))
		sb.WriteString("m")
	}
	sb.WriteString("\033[")
	sb.WriteString(strconv.Itoa(mode))
	sb.WriteString(strconv.Itoa(color))
	sb.WriteString("m")
	sb.WriteString(str)
	sb.WriteString("\033[0m") // reset
	return sb.String()
}

// palette colors text per side, or leaves it alone when disabled.
type palette struct {
	enabled bool
}

func (p palette) sideA(str string) string {
	if !p.enabled {
		return str
	}
	return colored(str, colorBlue, modeFont, styleNormal)
}

func (p palette) sideB(str string) string {
	if !p.enabled {
		return str
	}
	return colored(str, colorRed, modeFont, styleNormal)
}

func (p palette) count(str string, sideA bool) string {
	if !p.enabled {
		return str
	}
	if sideA {
		return colored(str, colorBlue, modeBrightFont, styleBold)
	}
	return colored(str, colorRed, modeBrightFont, styleBold)
}

// isTerminal reports whether w is a character device such as an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
