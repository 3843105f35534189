package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
)

const (
	fieldLength = iota
	fieldUpper
	fieldLower
	fieldDigits
	fieldBasicSymbols
	fieldExtraSymbols
	fieldAvoidRepetition
	fieldCount
)

const terminalWidthBackup = 80

type toggle struct {
	label string
	flag  func(*model.Config) *bool
}

var toggles = map[int]toggle{
	fieldUpper:           {label: "Uppercase (A-Z)", flag: func(c *model.Config) *bool { return &c.Upper }},
	fieldLower:           {label: "Lowercase (a-z)", flag: func(c *model.Config) *bool { return &c.Lower }},
	fieldDigits:          {label: "Digits (0-9)", flag: func(c *model.Config) *bool { return &c.Digits }},
	fieldBasicSymbols:    {label: "Math symbols (-+=*/><[]{}())", flag: func(c *model.Config) *bool { return &c.BasicSymbols }},
	fieldExtraSymbols:    {label: "Extra symbols (?!@#$%&_|;:)", flag: func(c *model.Config) *bool { return &c.ExtraSymbols }},
	fieldAvoidRepetition: {label: "Avoid class repetition", flag: func(c *model.Config) *bool { return &c.AvoidRepetition }},
}

// Model implements the Bubble Tea generator UI.
type Model struct {
	gen   *generator.Generator
	cfg   model.Config
	count int

	length    textinput.Model
	cursor    int
	set       generator.ClassSet
	passwords []generator.Password
	errMsg    string

	width  int
	height int
}

// NewModel constructs a generator TUI model and generates the first batch.
func NewModel(gen *generator.Generator, cfg model.Config, count int) *Model {
	if count < 1 {
		count = 1
	}
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 5
	input.Width = 6
	input.SetValue(strconv.Itoa(cfg.Length))
	input.Focus()

	m := &Model{
		gen:    gen,
		cfg:    cfg,
		count:  count,
		length: input,
	}
	m.regenerate()
	return m
}

// Config returns the settings currently selected in the UI.
func (m *Model) Config() model.Config {
	return m.cfg
}

// Passwords returns the current batch.
func (m *Model) Passwords() []string {
	out := make([]string, 0, len(m.passwords))
	for _, p := range m.passwords {
		out = append(out, p.Value)
	}
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "shift+tab":
			m.moveCursor(-1)
			return m, nil
		case "down", "tab":
			m.moveCursor(1)
			return m, nil
		case "enter", "ctrl+r":
			m.regenerate()
			return m, nil
		case " ":
			if t, ok := toggles[m.cursor]; ok {
				cfg := m.cfg
				flag := t.flag(&cfg)
				*flag = !*flag
				m.regenerateWith(cfg)
				return m, nil
			}
		}
		if m.cursor == fieldLength {
			var cmd tea.Cmd
			m.length, cmd = m.length.Update(msg)
			return m, cmd
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.length, cmd = m.length.Update(msg)
		return m, cmd
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor = (m.cursor + delta + fieldCount) % fieldCount
	if m.cursor == fieldLength {
		m.length.Focus()
	} else {
		m.length.Blur()
	}
}

func (m *Model) regenerate() {
	m.regenerateWith(m.cfg)
}

// regenerateWith commits cfg only when a new batch was generated from it.
func (m *Model) regenerateWith(cfg model.Config) {
	length, err := strconv.Atoi(strings.TrimSpace(m.length.Value()))
	if err != nil {
		m.errMsg = "length must be a number"
		return
	}
	if length < 0 {
		m.errMsg = "length must be >= 0"
		return
	}
	cfg.Length = length

	passwords := make([]generator.Password, 0, m.count)
	for i := 0; i < m.count; i++ {
		p, err := m.gen.Trace(cfg)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		passwords = append(passwords, p)
	}
	m.cfg = cfg
	m.set = generator.NewClassSet(cfg)
	m.passwords = passwords
	m.errMsg = ""
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = terminalWidth()
	}
	contentWidth := max(int(float64(width)*0.8), 1)

	lines := []string{titleStyle.Render("passgen"), ""}
	lines = append(lines, m.fieldLine(fieldLength, "Length: "+m.length.View()))
	for field := fieldUpper; field < fieldCount; field++ {
		t := toggles[field]
		box := "[ ]"
		if *t.flag(&m.cfg) {
			box = "[x]"
		}
		lines = append(lines, m.fieldLine(field, box+" "+t.label))
	}
	if !m.cfg.HasClass() {
		lines = append(lines, mutedStyle.Render("No class selected: using upper, lower and digits."))
	}
	lines = append(lines, "")
	lines = append(lines, wrapStyledRunes(buildStyledRunes(m.set, m.passwords), contentWidth))
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}
	lines = append(lines, "", m.renderFooter())

	content := lipgloss.NewStyle().Width(contentWidth).Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) fieldLine(field int, text string) string {
	if field == m.cursor {
		return selectedStyle.Render("> " + text)
	}
	return mutedStyle.Render("  " + text)
}

func (m *Model) renderFooter() string {
	segments := []string{
		"↑/↓ move",
		"space toggle",
		"enter regenerate",
		"esc quit",
		fmt.Sprintf("%d chars", m.cfg.Length),
	}
	return footerStyle.Render(strings.Join(segments, " · "))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
