package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
)

func newTestModel(cfg model.Config, count int) *Model {
	gen := generator.NewWithSource(generator.NewSeededSource(11))
	return NewModel(gen, cfg, count)
}

func press(m *Model, msg tea.KeyMsg) *Model {
	next, _ := m.Update(msg)
	return next.(*Model)
}

func TestNewModelGeneratesBatch(t *testing.T) {
	m := newTestModel(model.Config{Length: 12, Digits: true}, 3)
	passwords := m.Passwords()
	require.Len(t, passwords, 3)
	for _, p := range passwords {
		assert.Len(t, p, 12)
		assert.Regexp(t, `^[0-9]+$`, p)
	}
	assert.Empty(t, m.errMsg)
}

func TestNewModelClampsCount(t *testing.T) {
	m := newTestModel(model.Config{Length: 4}, 0)
	assert.Len(t, m.Passwords(), 1)
}

func TestToggleClassRegenerates(t *testing.T) {
	m := newTestModel(model.Config{Length: 30, Digits: true}, 1)
	assert.Equal(t, fieldLength, m.cursor)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, fieldUpper, m.cursor)
	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.Config().Upper)
	assert.Regexp(t, `^[A-Z0-9]{30}$`, m.Passwords()[0])

	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, m.Config().Upper)
	assert.Regexp(t, `^[0-9]{30}$`, m.Passwords()[0])
}

func TestCursorWraps(t *testing.T) {
	m := newTestModel(model.Config{Length: 4}, 1)
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, fieldAvoidRepetition, m.cursor)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldLength, m.cursor)
}

func TestLengthInput(t *testing.T) {
	m := newTestModel(model.Config{Length: 1, Lower: true}, 1)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Empty(t, m.errMsg)
	assert.Equal(t, 15, m.Config().Length)
	assert.Len(t, m.Passwords()[0], 15)
}

func TestInvalidLengthKeepsPreviousBatch(t *testing.T) {
	m := newTestModel(model.Config{Length: 6, Lower: true}, 1)
	before := m.Passwords()
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "length must be a number", m.errMsg)
	assert.Equal(t, before, m.Passwords())
	assert.Contains(t, m.View(), "length must be a number")
}

func TestToggleWithInvalidLengthIsNotApplied(t *testing.T) {
	m := newTestModel(model.Config{Length: 6, Digits: true}, 1)
	before := m.Passwords()
	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, fieldUpper, m.cursor)
	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, "length must be a number", m.errMsg)
	assert.False(t, m.Config().Upper)
	assert.Equal(t, before, m.Passwords())
	assert.Contains(t, m.View(), "[ ] Uppercase (A-Z)")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(model.Config{Length: 4}, 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewListsOptions(t *testing.T) {
	m := newTestModel(model.Config{Length: 8}, 1)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(*Model)
	view := m.View()
	for _, want := range []string{"passgen", "Length:", "[ ] Uppercase (A-Z)", "Avoid class repetition", "using upper, lower and digits", "enter regenerate"} {
		assert.Contains(t, view, want)
	}
}
