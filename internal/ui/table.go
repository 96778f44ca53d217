package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nmorgan/tasktrack/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderTaskTable(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{strconv.Itoa(t.ID), t.Title, RenderStatus(t.Status)}
	}
	return renderTable([]string{"ID", "Title", "Status"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
