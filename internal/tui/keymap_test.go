package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableKeyMap(t *testing.T) {
	k := DefaultKeyMap()
	tk := k.TableKeyMap()

	assert.Equal(t, k.Up.Keys(), tk.LineUp.Keys())
	assert.Equal(t, k.Down.Keys(), tk.LineDown.Keys())
	assert.Equal(t, k.PageUp.Keys(), tk.PageUp.Keys())
	assert.Equal(t, k.PageDown.Keys(), tk.PageDown.Keys())
	assert.Equal(t, k.Top.Keys(), tk.GotoTop.Keys())
	assert.Equal(t, k.Bottom.Keys(), tk.GotoBottom.Keys())
	assert.False(t, tk.HalfPageUp.Enabled())
	assert.False(t, tk.HalfPageDown.Enabled())
}

func TestFullHelpListsTableNavigation(t *testing.T) {
	k := DefaultKeyMap()

	var listed []key.Binding
	for _, row := range k.FullHelp() {
		listed = append(listed, row...)
	}
	for _, b := range []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom} {
		assert.Contains(t, listed, b, "help should list %v", b.Keys())
	}
}

func TestSampleNavigation(t *testing.T) {
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{name: "down", keys: []tea.KeyMsg{{Type: tea.KeyDown}}, want: "Essential hypertension"},
		{name: "end", keys: []tea.KeyMsg{{Type: tea.KeyEnd}}, want: "Low back pain"},
		{name: "page down", keys: []tea.KeyMsg{{Type: tea.KeyPgDown}}, want: "Low back pain"},
		{name: "end then home", keys: []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}}, want: "Type 2 diabetes mellitus"},
		{name: "end then up", keys: []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyUp}}, want: "Asthma"},
		// Bindings not shown in help leave the cursor alone.
		{name: "vim down", keys: []tea.KeyMsg{runes("j")}, want: "Type 2 diabetes mellitus"},
		{name: "half page down", keys: []tea.KeyMsg{runes("d")}, want: "Type 2 diabetes mellitus"},
		{name: "goto bottom letter", keys: []tea.KeyMsg{runes("G")}, want: "Type 2 diabetes mellitus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, newTestModel(), tea.KeyShiftTab)
			require.Equal(t, FocusSamples, m.Focused())

			for _, msg := range tt.keys {
				m, _ = update(t, m, msg)
			}
			m, _ = press(t, m, tea.KeyEnter)

			assert.Equal(t, tt.want, m.Diagnosis())
		})
	}
}
