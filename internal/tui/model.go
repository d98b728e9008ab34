package tui

import (
	"log/slog"
	"strings"

	"github.com/Veraticus/icd-suggest/internal/matcher"
	"github.com/Veraticus/icd-suggest/internal/model"
	"github.com/Veraticus/icd-suggest/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus identifies the form element receiving key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusButton
	FocusSamples
	focusCount
)

// Model holds the diagnosis form state.
type Model struct {
	suggester  matcher.Suggester
	result     *model.MatchResult
	toast      *toast
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	input      textinput.Model
	spinner    spinner.Model
	confidence progress.Model
	samples    table.Model
	config     Config
	diagnosis  string
	focus      Focus
	requestID  int
	toastID    int
	predicting bool
}

// New creates the diagnosis form model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

func newModel(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "e.g. patient presents with type 2 diabetes"
	input.CharLimit = 200
	input.Width = 50
	input.Focus()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(cfg.Theme.Primary)),
	)

	bar := progress.New(
		progress.WithGradient(cfg.Theme.ProgressStart, cfg.Theme.ProgressEnd),
		progress.WithWidth(40),
	)

	keymap := DefaultKeyMap()

	return Model{
		suggester:  cfg.Matcher,
		theme:      cfg.Theme,
		keymap:     keymap,
		help:       help.New(),
		input:      input,
		spinner:    s,
		confidence: bar,
		samples:    newSampleTable(cfg.Matcher.References(), cfg.Theme, keymap),
		config:     cfg,
		focus:      FocusInput,
	}
}

func newSampleTable(refs []model.ReferenceEntry, theme themes.Theme, keymap KeyMap) table.Model {
	rows := make([]table.Row, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, table.Row{ref.Label, ref.Code})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Diagnosis", Width: 36},
			{Title: "ICD-10", Width: 9},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithKeyMap(keymap.TableKeyMap()),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.Foreground).
		Background(theme.Primary)
	t.SetStyles(styles)

	return t
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.confidence.Width = max(10, min(msg.Width-20, 40))
		return m, nil

	case predictionMsg:
		return m.handlePrediction(msg)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.predicting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		return m.clear(), nil

	case key.Matches(msg, m.keymap.NextFocus):
		return m.setFocus((m.focus + 1) % focusCount)

	case key.Matches(msg, m.keymap.PrevFocus):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)

	case key.Matches(msg, m.keymap.Submit):
		if m.focus == FocusSamples {
			return m.useSelectedSample()
		}
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusInput:
		m.input, cmd = m.input.Update(msg)
	case FocusSamples:
		m.samples, cmd = m.samples.Update(msg)
	}
	return m, cmd
}

// CanSubmit reports whether the predict button is enabled.
func (m Model) CanSubmit() bool {
	return !m.predicting && strings.TrimSpace(m.input.Value()) != ""
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.predicting {
		return m, nil
	}

	diagnosis := strings.TrimSpace(m.input.Value())
	if diagnosis == "" {
		return m.notify(toastWarning, "Please enter a diagnosis")
	}

	m.predicting = true
	m.requestID++
	m.diagnosis = diagnosis

	return m, tea.Batch(
		m.spinner.Tick,
		predict(m.suggester, diagnosis, m.requestID, m.config.Latency),
	)
}

func (m Model) handlePrediction(msg predictionMsg) (tea.Model, tea.Cmd) {
	if !m.predicting || msg.id != m.requestID {
		return m, nil
	}

	m.predicting = false
	result := msg.result
	m.result = &result

	slog.Debug("Predicted ICD-10 code",
		"diagnosis", msg.diagnosis,
		"code", result.Code,
		"confidence", result.Confidence)

	if result.IsFallback() {
		return m.notify(toastInfo, "No close match, suggesting "+result.Code)
	}
	return m.notify(toastSuccess, "Predicted code "+result.Code)
}

func (m Model) useSelectedSample() (tea.Model, tea.Cmd) {
	row := m.samples.SelectedRow()
	if len(row) == 0 {
		return m, nil
	}
	m.input.SetValue(row[0])
	m.input.CursorEnd()
	return m.setFocus(FocusInput)
}

func (m Model) clear() Model {
	m.input.Reset()
	m.result = nil
	m.toast = nil
	m.diagnosis = ""
	m.predicting = false
	// Invalidate any prediction still waiting on its tick.
	m.requestID++
	return m
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.input.Blur()
	m.samples.Blur()

	switch f {
	case FocusInput:
		return m, m.input.Focus()
	case FocusSamples:
		m.samples.Focus()
	}
	return m, nil
}

func (m Model) notify(level toastLevel, text string) (tea.Model, tea.Cmd) {
	m.toastID++
	m.toast = &toast{text: text, level: level, id: m.toastID}
	return m, expireToast(m.toastID, m.config.ToastDuration)
}

// Result returns the latest prediction, if any.
func (m Model) Result() (model.MatchResult, bool) {
	if m.result == nil {
		return model.MatchResult{}, false
	}
	return *m.result, true
}

// Predicting reports whether a prediction is in flight.
func (m Model) Predicting() bool {
	return m.predicting
}

// Focused returns the focused form element.
func (m Model) Focused() Focus {
	return m.focus
}

// Diagnosis returns the current contents of the diagnosis field.
func (m Model) Diagnosis() string {
	return m.input.Value()
}

// Notification returns the visible notification text, if any.
func (m Model) Notification() string {
	if m.toast == nil {
		return ""
	}
	return m.toast.text
}
