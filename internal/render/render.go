// Package render turns grids and sewers into terminal text. Everything here
// reads the grid through its public surface only.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/zombicity/internal/style"
)

// Page renders page with title at the top, content block and footer at the bottom.
// Style of content is left intact.
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Content is centered in what is left between title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Panel renders label/value rows inside a bordered box.
func Panel(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(style.InspectHeader.Render(title))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(style.PanelLabel.Render(r[0] + ": "))
		b.WriteString(style.PanelValue.Render(r[1]))
	}
	return style.PanelBox.Render(b.String())
}
