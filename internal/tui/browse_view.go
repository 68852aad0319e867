package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/atlasd/internal/directory"
)

// printer formats areas and populations with locale-aware separators.
//
//nolint:gochecknoglobals // Shared formatter, safe for concurrent use.
var printer = message.NewPrinter(language.English)

// borderPadding accounts for the box border when sizing content.
const borderPadding = 2

// View renders the current screen (Bubble Tea interface).
func (m BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			SubtleStyle.Render("Press q to quit.")
	case ViewStateLoading:
		return fmt.Sprintf("\n %s Loading countries...\n", m.loading.View())
	case ViewStateList:
		return m.renderListView()
	case ViewStateDetail:
		return m.renderDetailView()
	default:
		return ""
	}
}

// renderListView renders the country table with a help footer.
func (m BrowseModel) renderListView() string {
	help := SubtleStyle.Render("enter: detail  •  up/down: move  •  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), help)
}

// renderDetailView renders the detail screen for the current country.
//
// The record itself is only rendered once a successful fetch has completed:
// before that the screen shows a spinner or a failure line, never a field of
// a record that is not there. The first detail render always happens before
// any fetch can resolve, so the nil branch is live, not dead code.
func (m BrowseModel) renderDetailView() string {
	if m.current == nil {
		switch {
		case m.detailErr != nil:
			return ErrorStyle.Render(fmt.Sprintf("Could not load country: %v", m.detailErr)) + "\n" +
				SubtleStyle.Render("esc: back  •  q: quit")
		case m.detailLoading:
			return fmt.Sprintf("\n %s Loading country...\n", m.loading.View())
		default:
			return ""
		}
	}

	var content strings.Builder

	content.WriteString(HeaderStyle.Render(m.current.Name))
	content.WriteString("\n\n")

	writeField(&content, "Official name", m.current.OfficialName)
	writeField(&content, "Code", m.current.CCA3)
	writeField(&content, "Capital", m.current.Capital)
	writeField(&content, "Region", m.current.Region)
	writeField(&content, "Area", printer.Sprintf("%.0f km²", m.current.Area))
	if m.current.Population > 0 {
		writeField(&content, "Population", printer.Sprintf("%d", m.current.Population))
	}

	content.WriteString("\n")
	content.WriteString(m.renderBorders())

	if m.detailLoading {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(m.loading.View() + " fetching..."))
	}
	if m.detailErr != nil {
		content.WriteString("\n")
		content.WriteString(ErrorStyle.Render(fmt.Sprintf("fetch failed: %v", m.detailErr)))
	}

	box := BoxStyle.Width(m.width - borderPadding).Render(content.String())
	help := SubtleStyle.Render("enter: follow border  •  left/right: select border  •  esc: back  •  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, box, help)
}

// renderBorders renders the border-country links with the focused one
// highlighted.
func (m BrowseModel) renderBorders() string {
	if len(m.current.BorderCountries) == 0 {
		return SubtleStyle.Render("No bordering countries.")
	}

	var chips []string
	for i, border := range m.current.BorderCountries {
		label := fmt.Sprintf("%s (%s)", border.Name, border.CCA3)
		if i == m.borderCursor {
			chips = append(chips, BorderChipSelectedStyle.Render(label))
		} else {
			chips = append(chips, BorderChipStyle.Render(label))
		}
	}

	return HeaderStyle.Render("BORDERS") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// writeField writes one aligned label/value line into the detail view.
func writeField(content *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	content.WriteString(LabelStyle.Render(fmt.Sprintf("%-15s", label+":")))
	content.WriteString(ValueStyle.Render(value))
	content.WriteString("\n")
}

// buildCountryTable creates the list table over the loaded records.
func (m *BrowseModel) buildCountryTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 28},       //nolint:mnd // Column width.
		{Title: "Code", Width: 6},        //nolint:mnd // Column width.
		{Title: "Capital", Width: 20},    //nolint:mnd // Column width.
		{Title: "Region", Width: 12},     //nolint:mnd // Column width.
		{Title: "Area (km²)", Width: 14}, //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(m.records))
	for i, rec := range m.records {
		rows[i] = table.Row{
			rec.Name,
			rec.CCA3,
			rec.Capital,
			rec.Region,
			printer.Sprintf("%.0f", rec.Area),
		}
	}

	height := m.height - 4
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// RecordSummary is a plain-text one-liner for a record, used by the
// non-interactive countries list output.
func RecordSummary(rec directory.CountryRecord) string {
	return printer.Sprintf("%-6s %-30s %-20s %12.0f km²", rec.CCA3, rec.Name, rec.Capital, rec.Area)
}
