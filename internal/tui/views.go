package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the form.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderButton(),
	}

	if m.result != nil {
		sections = append(sections, m.renderResult())
	}

	sections = append(sections,
		m.renderSamples(),
		m.renderToast(),
		m.help.View(m.keymap),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("🧠 ICD-10 Code Predictor"),
		m.theme.Subtitle.Render("Describe the diagnosis in plain words. Suggestions are keyword based, not medical advice."),
	)
}

func (m Model) boxStyle(f Focus) lipgloss.Style {
	if m.focus == f {
		return m.theme.FocusedBox
	}
	return m.theme.Box
}

func (m Model) renderInput() string {
	label := m.theme.Bold.Render("Diagnosis")
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		label,
		m.boxStyle(FocusInput).Render(m.input.View()),
	)
}

func (m Model) renderButton() string {
	if m.predicting {
		return m.spinner.View() + " " + m.theme.Subtitle.Render("Analyzing diagnosis...")
	}

	const label = "Predict ICD-10 code"
	switch {
	case !m.CanSubmit():
		return m.theme.ButtonDisable.Render(label)
	case m.focus == FocusButton:
		return m.theme.ButtonFocused.Render("▶ " + label)
	default:
		return m.theme.Button.Render(label)
	}
}

func (m Model) renderResult() string {
	r := *m.result

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", m.theme.Code.Render(r.Code), m.theme.Bold.Render(r.Label))
	fmt.Fprintf(&b, "%s\n", lipgloss.NewStyle().Foreground(m.theme.Muted).Render("For: "+m.diagnosis))
	fmt.Fprintf(&b, "Confidence %s", m.confidence.ViewAs(r.Confidence))
	if r.IsFallback() {
		fmt.Fprintf(&b, "\n%s", m.theme.StatusWarning.Render("No reference diagnosis matched closely."))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		m.theme.Bold.Render("Prediction"),
		m.theme.Box.Render(b.String()),
	)
}

func (m Model) renderSamples() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		m.theme.Bold.Render("Sample reference data"),
		m.boxStyle(FocusSamples).Render(m.samples.View()),
	)
}

func (m Model) renderToast() string {
	if m.toast == nil {
		return ""
	}

	switch m.toast.level {
	case toastSuccess:
		return m.theme.StatusSuccess.Render("✓ " + m.toast.text)
	case toastWarning:
		return m.theme.StatusWarning.Render("⚠ " + m.toast.text)
	default:
		return m.theme.StatusInfo.Render("ℹ " + m.toast.text)
	}
}
