package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexiusacademia/hooke/internal/diagram"
	"github.com/alexiusacademia/hooke/internal/input"
	"github.com/alexiusacademia/hooke/internal/worksheet"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)

// Options size the form's chart
type Options struct {
	PlotWidth  int
	PlotHeight int
}

type model struct {
	ws      *worksheet.Worksheet
	focus   int
	opts    Options
	kErr    bool
	workErr bool

	width  int
	height int
}

// NewForm builds the calculator form around a worksheet
func NewForm(ws *worksheet.Worksheet, opts Options) tea.Model {
	if opts.PlotWidth <= 0 {
		opts.PlotWidth = 60
	}
	if opts.PlotHeight <= 0 {
		opts.PlotHeight = 12
	}
	return model{ws: ws, opts: opts, width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) focused() worksheet.Field {
	return worksheet.Fields[m.focus]
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "tab", "down", "enter":
		m.focus = (m.focus + 1) % len(worksheet.Fields)
	case "shift+tab", "up":
		m.focus = (m.focus + len(worksheet.Fields) - 1) % len(worksheet.Fields)
	case "ctrl+k":
		_, err := m.ws.CalculateSpringConstant()
		m.kErr = err != nil
	case "ctrl+w":
		_, err := m.ws.CalculateWorkDone()
		m.workErr = err != nil
	case "backspace":
		f := m.focused()
		if text := m.ws.Text(f); len(text) > 0 {
			m.ws.Set(f, text[:len(text)-1])
		}
	case "ctrl+u":
		m.ws.Set(m.focused(), "")
	default:
		if msg.Type != tea.KeyRunes {
			return m, nil
		}
		text := m.ws.Text(m.focused())
		for _, r := range msg.Runes {
			if input.IsNumericRune(r) {
				text += string(r)
			}
		}
		m.ws.Set(m.focused(), text)
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(title.Render("HOOKE'S LAW CALCULATOR") + dim.Render("  F = kx") + "\n\n")

	s.WriteString(cyan.Render("SPRING CONSTANT") + "\n")
	s.WriteString(m.viewField(worksheet.Force))
	s.WriteString(m.viewField(worksheet.Displacement))
	s.WriteString("  " + m.viewResult(m.ws.KLabel(), m.kErr) + "\n\n")

	s.WriteString(cyan.Render("WORK DONE") + dim.Render("  W = ½k(x2² − x1²)") + "\n")
	s.WriteString(m.viewField(worksheet.SpringConstant))
	s.WriteString(m.viewField(worksheet.InitialDisplacement))
	s.WriteString(m.viewField(worksheet.FinalDisplacement))
	s.WriteString("  " + m.viewResult(m.ws.WorkLabel(), m.workErr) + "\n\n")

	width := m.opts.PlotWidth
	if m.width > 0 && width > m.width-14 {
		width = m.width - 14
	}
	s.WriteString(panel.Render(diagram.DrawASCIIForceCurve(m.ws.Curve(), width, m.opts.PlotHeight)) + "\n")

	s.WriteString(dim.Render("tab/↑↓ move · ctrl+k calculate k · ctrl+w calculate work · ctrl+u clear · esc quit"))
	return s.String()
}

func (m model) viewField(f worksheet.Field) string {
	cursor := "  "
	label := dim.Render(f.Label())
	if m.focused() == f {
		cursor = yellow.Render("▸ ")
		label = white.Render(f.Label())
	}

	text := m.ws.Text(f)
	value := white.Render(text)
	if text != "" {
		if _, err := m.ws.Value(f); err != nil {
			value = red.Render(text)
		}
	}
	if m.focused() == f {
		value += yellow.Render("▏")
	}
	return cursor + lipgloss.NewStyle().Width(30).Render(label) + value + "\n"
}

func (m model) viewResult(label string, failed bool) string {
	switch {
	case label == "":
		return dim.Render("—")
	case failed:
		return red.Render(label)
	}
	return green.Render(label)
}

// Run starts the interactive form and blocks until the user quits
func Run(points, precision int, opts Options) error {
	ws, err := worksheet.New(points, precision)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(NewForm(ws, opts), tea.WithAltScreen()).Run()
	return err
}
