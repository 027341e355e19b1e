package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column widths for the entry grid and the log tail.
const (
	partWidth     = 40
	qtyWidth      = 6
	locationWidth = 24
	maxPickerRows = 12
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	cellStyle     = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickerStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Stock Transfer Tracker"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	switch m.mode {
	case modePicker:
		b.WriteString(m.renderPicker())
		b.WriteString("\n")
	case modeQty:
		b.WriteString(pickerStyle.Render("Quantity: " + m.qtyInput.View()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderTail())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ rows · ←/→ fields · enter edit · d delete · ctrl+s submit · q quit"))
	return b.String()
}

// renderGrid renders the draft rows as a fixed-width table with the cursor
// cell highlighted.
func (m Model) renderGrid() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(
		pad("Item", partWidth) + pad("Qty", qtyWidth) + pad("From", locationWidth) + pad("To", locationWidth),
	))
	b.WriteString("\n")

	for i, row := range m.state.Rows() {
		part := row.PartLabel
		if part == "" {
			part = "(select item)"
		}

		cells := []struct {
			col   column
			text  string
			width int
			empty bool
		}{
			{colPart, part, partWidth, row.PartLabel == ""},
			{colQty, strconv.Itoa(row.Quantity), qtyWidth, false},
			{colFrom, row.FromLocation, locationWidth, false},
			{colTo, row.ToLocation, locationWidth, false},
		}

		for _, c := range cells {
			style := cellStyle
			if c.empty {
				style = emptyStyle
			}
			if i == m.row && c.col == m.col && m.mode == modeGrid {
				style = selectedStyle
			}
			b.WriteString(style.Render(pad(c.text, c.width)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderPicker renders the filterable choice list for the active cell.
func (m Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	shown := 0
	for i, idx := range m.filtered {
		if shown >= maxPickerRows {
			b.WriteString(emptyStyle.Render(fmt.Sprintf("… %d more", len(m.filtered)-shown)))
			break
		}
		line := m.choices[idx]
		if i == m.pickerIdx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
		shown++
	}
	if len(m.filtered) == 0 {
		b.WriteString(emptyStyle.Render("no matches"))
	}

	return pickerStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderTail renders the recent-transfers panel beneath the form.
func (m Model) renderTail() string {
	if len(m.tail) == 0 {
		return emptyStyle.Render("No transfers have been submitted yet.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Last %d transfers", len(m.tail))))
	b.WriteString("\n")
	for _, rec := range m.tail {
		b.WriteString(fmt.Sprintf("%s %s  %-18s %-28s %5d  %s → %s\n",
			rec.Date, rec.Time, rec.ItemNo, truncate(rec.ItemDescription, 28),
			rec.Quantity, rec.FromLocation, rec.ToLocation))
	}
	return strings.TrimRight(b.String(), "\n")
}

// pad right-pads (or truncates) text to a fixed cell width plus a separator
// space.
func pad(text string, width int) string {
	return fmt.Sprintf("%-*s ", width, truncate(text, width))
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
