package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/passgen/internal/generator"
)

var (
	classStyles = map[string]lipgloss.Style{
		"upper":         lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		"lower":         lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8")),
		"digits":        lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFD7")),
		"basic-symbols": lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		"extra-symbols": lipgloss.NewStyle().Foreground(lipgloss.Color("#D75F87")),
	}
	plainStyle    = lipgloss.NewStyle()
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

func classStyle(name string) lipgloss.Style {
	if style, ok := classStyles[name]; ok {
		return style
	}
	return plainStyle
}

// RenderPassword renders p with one colour per character class.
func RenderPassword(set generator.ClassSet, p generator.Password) string {
	var b strings.Builder
	for _, item := range buildStyledRunes(set, []generator.Password{p}) {
		b.WriteString(item.s)
	}
	return b.String()
}
