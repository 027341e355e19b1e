package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianbrainbrian/TransferTracker/internal/catalog"
	"github.com/brianbrainbrian/TransferTracker/internal/form"
	"github.com/brianbrainbrian/TransferTracker/internal/transferlog"
	"github.com/brianbrainbrian/TransferTracker/internal/types"
)

func testModel(t *testing.T) (Model, *form.State) {
	t.Helper()
	cat := catalog.New(
		[]string{"Bin A1", "Bin B2"},
		[]types.Part{{Code: "ABC123", Name: "Widget"}, {Code: "XYZ789", Name: "Gadget"}},
	)
	state := form.New(cat, 1)
	path := filepath.Join(t.TempDir(), "stock_transfers.xlsx")
	writer := transferlog.NewWriter(path, time.UTC, nil)
	return NewModel(state, cat, writer, path, 10, nil), state
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestPickerCommitSelectsPartAndGrowsForm(t *testing.T) {
	m, state := testModel(t)

	// Enter on the part cell opens the picker.
	m, _ = update(t, m, key("enter"))
	require.Equal(t, modePicker, m.mode)
	require.Len(t, m.filtered, 2)

	// Filtering narrows the choices.
	m, _ = update(t, m, key("gad"))
	require.Len(t, m.filtered, 1)

	m, _ = update(t, m, key("enter"))
	assert.Equal(t, modeGrid, m.mode)

	rows := state.Rows()
	require.Len(t, rows, 2) // auto-grow added the next blank row
	assert.Equal(t, "XYZ789 - Gadget", rows[0].PartLabel)
}

func TestPickerEscCancels(t *testing.T) {
	m, state := testModel(t)

	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, key("esc"))

	assert.Equal(t, modeGrid, m.mode)
	assert.Equal(t, "", state.Rows()[0].PartLabel)
}

func TestQuantityEditing(t *testing.T) {
	m, _ := testModel(t)

	// Move to the quantity column and open the input.
	m, _ = update(t, m, key("l"))
	require.Equal(t, colQty, m.col)
	m, _ = update(t, m, key("enter"))
	require.Equal(t, modeQty, m.mode)

	m.qtyInput.SetValue("7")
	m, _ = update(t, m, key("enter"))

	assert.Equal(t, modeGrid, m.mode)
	assert.Equal(t, 7, m.state.Rows()[0].Quantity)
}

func TestQuantityRejectsNonNumeric(t *testing.T) {
	m, _ := testModel(t)

	m, _ = update(t, m, key("l"))
	m, _ = update(t, m, key("enter"))
	m.qtyInput.SetValue("lots")
	m, _ = update(t, m, key("enter"))

	// Still editing; the bad value never reached the form state.
	assert.Equal(t, modeQty, m.mode)
	assert.Equal(t, 1, m.state.Rows()[0].Quantity)
}

func TestSubmitWithOnlyBlankRowsWarns(t *testing.T) {
	m, _ := testModel(t)

	m, cmd := update(t, m, key("ctrl+s"))
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	require.ErrorIs(t, done.err, transferlog.ErrNoValidRows)

	m, _ = update(t, m, done)
	assert.Contains(t, m.status, "nothing to submit")
}

func TestSubmitResetsFormAndReloadsTail(t *testing.T) {
	m, state := testModel(t)
	require.NoError(t, state.SetPart(0, "ABC123 - Widget"))
	require.NoError(t, state.SetQuantity(0, 2))

	m, cmd := update(t, m, key("ctrl+s"))
	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	require.Equal(t, 1, done.result.Written)

	m, tailCmd := update(t, m, done)
	assert.Contains(t, m.status, "submitted 1")
	require.Equal(t, 1, state.Len()) // reset to a single blank row

	require.NotNil(t, tailCmd)
	tail, ok := tailCmd().(tailLoadedMsg)
	require.True(t, ok)
	require.NoError(t, tail.err)
	require.Len(t, tail.records, 1)
	assert.Equal(t, "ABC123", tail.records[0].ItemNo)
}

func TestGridNavigationBounds(t *testing.T) {
	m, _ := testModel(t)

	m, _ = update(t, m, key("k"))
	assert.Equal(t, 0, m.row)
	m, _ = update(t, m, key("h"))
	assert.Equal(t, colPart, m.col)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, key("l"))
	}
	assert.Equal(t, colTo, m.col)
}
