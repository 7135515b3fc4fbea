package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/hooke/internal/worksheet"
)

func newModel(t *testing.T) model {
	t.Helper()
	ws, err := worksheet.New(100, 4)
	require.NoError(t, err)
	return NewForm(ws, Options{}).(model)
}

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestForm_TypingFiltersAndReplots(t *testing.T) {
	m := newModel(t)
	m = send(m, runes("1x0"), tea.KeyMsg{Type: tea.KeyTab}, runes("0.5"))

	assert.Equal(t, "10", m.ws.Text(worksheet.Force))
	assert.Equal(t, "0.5", m.ws.Text(worksheet.Displacement))
	// Only x is known, so the live curve uses k = 1
	assert.InDelta(t, 1.0, m.ws.Curve().K, 1e-12)
	assert.InDelta(t, 0.5, m.ws.Curve().XMax, 1e-12)
}

func TestForm_CalculateK(t *testing.T) {
	m := newModel(t)
	m = send(m, runes("10"), tea.KeyMsg{Type: tea.KeyTab}, runes("0.5"), tea.KeyMsg{Type: tea.KeyCtrlK})

	assert.False(t, m.kErr)
	assert.Equal(t, "Spring Constant k = 20.0000 N/m", m.ws.KLabel())
	assert.Equal(t, "20.0000", m.ws.Text(worksheet.SpringConstant))
	assert.Contains(t, m.View(), "Spring Constant k = 20.0000 N/m")
}

func TestForm_CalculateWorkError(t *testing.T) {
	m := newModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlW})

	assert.True(t, m.workErr)
	assert.Contains(t, m.View(), "Error: Enter valid numbers for k, x1, and x2.")
}

func TestForm_FocusWraps(t *testing.T) {
	m := newModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, worksheet.FinalDisplacement, m.focused())

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, worksheet.Force, m.focused())
}

func TestForm_Editing(t *testing.T) {
	m := newModel(t)
	m = send(m, runes("123"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.ws.Text(worksheet.Force))

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, m.ws.Text(worksheet.Force))
}

func TestForm_Quit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
