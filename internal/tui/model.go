// =============================================================================
// Stock Transfer Tracker - Entry Form TUI
// =============================================================================
//
// Bubble Tea model for the interactive transfer entry form. The model renders
// the draft rows as a grid (Part | Qty | From | To) plus the tail of the
// transfer log, and routes every mutation through form.State; no editing rule
// lives in the UI.
//
// Key bindings:
//   ↑/↓, k/j       Move between rows
//   ←/→, h/l, Tab  Move between columns
//   Enter          Edit the selected cell (picker or quantity input)
//   d              Delete the selected row
//   ctrl+s         Submit all valid rows
//   q, ctrl+c      Quit
//
// =============================================================================

package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/brianbrainbrian/TransferTracker/internal/catalog"
	"github.com/brianbrainbrian/TransferTracker/internal/form"
	"github.com/brianbrainbrian/TransferTracker/internal/transferlog"
	"github.com/brianbrainbrian/TransferTracker/internal/types"
)

// column identifies a grid column.
type column int

const (
	colPart column = iota
	colQty
	colFrom
	colTo
)

// mode identifies what the keyboard is currently driving.
type mode int

const (
	modeGrid   mode = iota // navigating the row grid
	modePicker             // choosing a part or location from a filtered list
	modeQty                // typing a quantity
)

// submitDoneMsg carries the outcome of a submit attempt.
type submitDoneMsg struct {
	result *transferlog.SubmitResult
	err    error
}

// tailLoadedMsg carries a refreshed log tail.
type tailLoadedMsg struct {
	records []types.Record
	err     error
}

// Model is the Bubble Tea model for the entry form.
type Model struct {
	state   *form.State
	catalog *catalog.Catalog
	writer  *transferlog.Writer
	logPath string
	tailLen int
	logger  *zap.Logger

	// Window dimensions
	width  int
	height int

	// Grid cursor
	row int
	col column

	// Picker state (modePicker)
	mode       mode
	pickerCol  column // which column the picker feeds
	choices    []string
	filtered   []int // indices into choices
	pickerIdx  int
	filter     textinput.Model
	qtyInput   textinput.Model

	// Log tail and status line
	tail   []types.Record
	status string
	err    error
}

// NewModel creates the entry form model. The log tail is loaded via Init.
func NewModel(state *form.State, cat *catalog.Catalog, writer *transferlog.Writer, logPath string, tailLen int, logger *zap.Logger) Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "/ "

	qty := textinput.New()
	qty.Placeholder = "qty"
	qty.CharLimit = 6

	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		state:    state,
		catalog:  cat,
		writer:   writer,
		logPath:  logPath,
		tailLen:  tailLen,
		logger:   logger,
		filter:   filter,
		qtyInput: qty,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadTail()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tailLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tail = msg.records
		return m, nil

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modePicker:
			return m.handlePickerKey(msg)
		case modeQty:
			return m.handleQtyKey(msg)
		default:
			return m.handleGridKey(msg)
		}
	}
	return m, nil
}

// =============================================================================
// GRID MODE
// =============================================================================

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.row > 0 {
			m.row--
		}

	case "down", "j":
		if m.row < m.state.Len()-1 {
			m.row++
		}

	case "left", "h", "shift+tab":
		if m.col > colPart {
			m.col--
		}

	case "right", "l", "tab":
		if m.col < colTo {
			m.col++
		}

	case "d":
		m.state.DeleteRows(m.row)
		if m.row >= m.state.Len() {
			m.row = m.state.Len() - 1
		}
		m.status = "row deleted"

	case "enter", " ":
		return m.beginEdit()

	case "ctrl+s":
		m.status = "submitting..."
		return m, m.submit()
	}
	return m, nil
}

// beginEdit switches into the picker or quantity input for the current cell.
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	row, err := m.state.Row(m.row)
	if err != nil {
		m.err = err
		return m, nil
	}

	switch m.col {
	case colQty:
		m.mode = modeQty
		m.qtyInput.SetValue(strconv.Itoa(row.Quantity))
		m.qtyInput.CursorEnd()
		m.qtyInput.Focus()
		return m, textinput.Blink

	case colPart:
		m.openPicker(colPart, m.catalog.Labels)
	case colFrom:
		m.openPicker(colFrom, m.catalog.Locations)
	case colTo:
		m.openPicker(colTo, m.catalog.Locations)
	}
	return m, textinput.Blink
}

// =============================================================================
// PICKER MODE
// =============================================================================

func (m *Model) openPicker(col column, choices []string) {
	m.mode = modePicker
	m.pickerCol = col
	m.choices = choices
	m.filter.SetValue("")
	m.filter.Focus()
	m.applyFilter()
}

// applyFilter recomputes the filtered choice indices from the filter text.
// Matching is a case-insensitive substring test.
func (m *Model) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.filtered = m.filtered[:0]
	for i, choice := range m.choices {
		if needle == "" || strings.Contains(strings.ToLower(choice), needle) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.pickerIdx >= len(m.filtered) {
		m.pickerIdx = 0
	}
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		m.filter.Blur()
		return m, nil

	case "up":
		if m.pickerIdx > 0 {
			m.pickerIdx--
		}
		return m, nil

	case "down":
		if m.pickerIdx < len(m.filtered)-1 {
			m.pickerIdx++
		}
		return m, nil

	case "enter":
		return m.commitPick()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) commitPick() (tea.Model, tea.Cmd) {
	if len(m.filtered) == 0 {
		return m, nil
	}
	choice := m.choices[m.filtered[m.pickerIdx]]

	var err error
	switch m.pickerCol {
	case colPart:
		err = m.state.SetPart(m.row, choice)
	case colFrom:
		err = m.state.SetFrom(m.row, choice)
	case colTo:
		err = m.state.SetTo(m.row, choice)
	}
	if err != nil {
		m.err = err
	}

	m.mode = modeGrid
	m.filter.Blur()
	return m, nil
}

// =============================================================================
// QUANTITY MODE
// =============================================================================

func (m Model) handleQtyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		m.qtyInput.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.qtyInput.Value())
		quantity, err := strconv.Atoi(value)
		if err != nil {
			m.status = "quantity must be a whole number"
			return m, nil
		}
		if err := m.state.SetQuantity(m.row, quantity); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeGrid
		m.qtyInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMIT AND TAIL COMMANDS
// =============================================================================

// submit runs the log writer off the update loop.
func (m Model) submit() tea.Cmd {
	rows := m.state.Rows()
	writer := m.writer
	return func() tea.Msg {
		result, err := writer.Submit(rows)
		return submitDoneMsg{result: result, err: err}
	}
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, transferlog.ErrNoValidRows):
		m.status = "nothing to submit: no rows with a part and a positive quantity"
		return m, nil
	case msg.err != nil:
		m.err = msg.err
		m.status = "submit failed"
		return m, nil
	}

	m.state.Reset()
	m.row = 0
	m.col = colPart
	m.status = "submitted " + strconv.Itoa(msg.result.Written) + " transfer(s)"
	m.logger.Debug("submit finished", zap.String("batch_id", msg.result.BatchID))
	return m, m.loadTail()
}

// loadTail refreshes the recent-transfers panel.
func (m Model) loadTail() tea.Cmd {
	path, n := m.logPath, m.tailLen
	return func() tea.Msg {
		records, err := transferlog.Tail(path, n)
		return tailLoadedMsg{records: records, err: err}
	}
}
