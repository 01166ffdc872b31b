// Package ui holds the console styling shared by colman commands.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor     = lipgloss.Color("#6c6c6c")
	AccentColor  = lipgloss.Color("#7aa2f7")
	ErrorColor   = lipgloss.Color("#f7768e")
	SuccessColor = lipgloss.Color("#9ece6a")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Headerf writes a bold accent-styled heading line.
func Headerf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf(format, args...)))
}

// Successf writes a success-styled line.
func Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf writes an error-styled line.
func Errorf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Dimf writes a dim, secondary-information line.
func Dimf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, DimStyle.Render(fmt.Sprintf(format, args...)))
}
