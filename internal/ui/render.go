package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/nmorgan/tasktrack/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	todoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	inProgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// RenderDescription renders a task description as markdown.
func RenderDescription(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering description: %w", err)
	}
	return out, nil
}

func StatusStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusDone:
		return doneStyle
	case model.StatusInProgress:
		return inProgStyle
	default:
		return todoStyle
	}
}

func RenderStatus(status model.Status) string {
	return StatusStyle(status).Render(string(status))
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func RenderTaskHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}
