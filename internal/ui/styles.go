// Package ui holds the terminal styles used for the setup banner and summary.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

const (
	checkMark = "[OK]"
	skipMark  = "[--]"
)

// Banner renders the title block shown before the first prompt.
func Banner(title, subtitle string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if subtitle != "" {
		b.WriteString(subtitleStyle.Render(subtitle))
		b.WriteString("\n")
	}
	return b.String()
}

// Section renders a section heading with an underline.
func Section(title string) string {
	return sectionStyle.Render(title) + "\n" + dimStyle.Render(strings.Repeat("-", len(title)))
}

// Row renders a summary row with a status mark.
func Row(done bool, label, detail string) string {
	mark := successStyle.Render(checkMark)
	if !done {
		mark = dimStyle.Render(skipMark)
	}
	if detail == "" {
		return fmt.Sprintf("  %s %s", mark, label)
	}
	return fmt.Sprintf("  %s %-28s %s", mark, label, dimStyle.Render(detail))
}

// Success renders a completion message.
func Success(msg string) string {
	return successStyle.Render(msg)
}

// Warning renders a warning message.
func Warning(msg string) string {
	return warningStyle.Render(msg)
}

// Dim renders secondary text.
func Dim(msg string) string {
	return dimStyle.Render(msg)
}
